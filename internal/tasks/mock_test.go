package tasks

import (
	"context"
	"fmt"

	awsStd "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecsTypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

type mockECSClient struct {
	listTasksFunc func(
		context.Context, *ecs.ListTasksInput, ...func(*ecs.Options),
	) (*ecs.ListTasksOutput, error)
	describeTasksFunc func(
		context.Context, *ecs.DescribeTasksInput, ...func(*ecs.Options),
	) (*ecs.DescribeTasksOutput, error)

	listCalls     []*ecs.ListTasksInput
	describeCalls []*ecs.DescribeTasksInput
}

func (m *mockECSClient) ListTasks(
	ctx context.Context,
	params *ecs.ListTasksInput,
	optFns ...func(*ecs.Options),
) (*ecs.ListTasksOutput, error) {
	m.listCalls = append(m.listCalls, params)
	if m.listTasksFunc != nil {
		return m.listTasksFunc(ctx, params, optFns...)
	}
	return &ecs.ListTasksOutput{}, nil
}

func (m *mockECSClient) DescribeTasks(
	ctx context.Context,
	params *ecs.DescribeTasksInput,
	optFns ...func(*ecs.Options),
) (*ecs.DescribeTasksOutput, error) {
	m.describeCalls = append(m.describeCalls, params)
	if m.describeTasksFunc != nil {
		return m.describeTasksFunc(ctx, params, optFns...)
	}
	return &ecs.DescribeTasksOutput{}, nil
}

// pagedLister serves pages keyed by the incoming NextToken ("" for the first call).
func pagedLister(pages map[string]*ecs.ListTasksOutput) func(
	context.Context, *ecs.ListTasksInput, ...func(*ecs.Options),
) (*ecs.ListTasksOutput, error) {
	return func(_ context.Context, params *ecs.ListTasksInput, _ ...func(*ecs.Options)) (*ecs.ListTasksOutput, error) {
		page, ok := pages[awsStd.ToString(params.NextToken)]
		if !ok {
			return nil, fmt.Errorf("unexpected token %q", awsStd.ToString(params.NextToken))
		}
		return page, nil
	}
}

// taggedDescriber answers DescribeTasks with the given tags per ARN, in request order.
func taggedDescriber(tags map[string][]ecsTypes.Tag) func(
	context.Context, *ecs.DescribeTasksInput, ...func(*ecs.Options),
) (*ecs.DescribeTasksOutput, error) {
	return func(_ context.Context, params *ecs.DescribeTasksInput, _ ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error) {
		out := &ecs.DescribeTasksOutput{}
		for _, arn := range params.Tasks {
			out.Tasks = append(out.Tasks, ecsTypes.Task{
				TaskArn: awsStd.String(arn),
				Tags:    tags[arn],
			})
		}
		return out, nil
	}
}
