// Package client wraps the AWS SDK clients used by ecs-find-tasks behind narrow interfaces.
package client

import (
	"context"
	"fmt"

	awsConstants "github.com/runvoy/ecs-find-tasks/internal/providers/aws/constants"

	awsMiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
)

// ECSClient defines the ECS operations needed to discover tasks.
// This interface makes the code easier to test by allowing mock implementations.
type ECSClient interface {
	ListTasks(
		ctx context.Context,
		params *ecs.ListTasksInput,
		optFns ...func(*ecs.Options),
	) (*ecs.ListTasksOutput, error)
	DescribeTasks(
		ctx context.Context,
		params *ecs.DescribeTasksInput,
		optFns ...func(*ecs.Options),
	) (*ecs.DescribeTasksOutput, error)
}

// ECSClientAdapter wraps the AWS SDK ECS client to implement ECSClient interface.
// This allows us to use the real AWS client in production while maintaining testability.
type ECSClientAdapter struct {
	client *ecs.Client
}

// NewECSClientAdapter creates a new adapter wrapping the AWS SDK ECS client.
func NewECSClientAdapter(client *ecs.Client) *ECSClientAdapter {
	return &ECSClientAdapter{client: client}
}

// NewECSClient loads the default AWS configuration and returns an adapter around a new ECS client.
// Region is optional; when empty the SDK default chain (AWS_REGION, shared config) decides.
func NewECSClient(ctx context.Context, region string) (*ECSClientAdapter, error) {
	var cfgOpts []func(*awsConfig.LoadOptions) error
	if region != "" {
		cfgOpts = append(cfgOpts, awsConfig.WithRegion(region))
	}

	cfg, err := awsConfig.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := ecs.NewFromConfig(cfg, WithUserAgent(awsConstants.UserAgentKey))
	return NewECSClientAdapter(client), nil
}

// WithUserAgent returns an ECS option that appends key to the request user agent.
func WithUserAgent(key string) func(*ecs.Options) {
	return func(o *ecs.Options) {
		o.APIOptions = append(o.APIOptions, awsMiddleware.AddUserAgentKey(key))
	}
}

// ListTasks wraps the AWS SDK ListTasks operation.
func (a *ECSClientAdapter) ListTasks(
	ctx context.Context,
	params *ecs.ListTasksInput,
	optFns ...func(*ecs.Options),
) (*ecs.ListTasksOutput, error) {
	return a.client.ListTasks(ctx, params, optFns...)
}

// DescribeTasks wraps the AWS SDK DescribeTasks operation.
func (a *ECSClientAdapter) DescribeTasks(
	ctx context.Context,
	params *ecs.DescribeTasksInput,
	optFns ...func(*ecs.Options),
) (*ecs.DescribeTasksOutput, error) {
	return a.client.DescribeTasks(ctx, params, optFns...)
}
