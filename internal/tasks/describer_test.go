package tasks

import (
	"context"
	"errors"
	"slices"
	"testing"

	appErrors "github.com/runvoy/ecs-find-tasks/internal/errors"
	awsConstants "github.com/runvoy/ecs-find-tasks/internal/providers/aws/constants"
	"github.com/runvoy/ecs-find-tasks/internal/testutil"

	awsStd "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecsTypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	sizes := []int{1, 98, 99, 100, 197, 198, 199, 250}

	for _, n := range sizes {
		items := testutil.TaskARNs("default", n)
		chunks := Chunk(items, awsConstants.DescribeTasksBatchSize)

		assert.Len(t, chunks, (n+98)/99, "ceil(%d/99) chunks", n)
		for i, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk), 99)
			assert.NotEmpty(t, chunk)
			if i < len(chunks)-1 {
				assert.Len(t, chunk, 99, "only the last chunk may be short")
			}
		}
		assert.Equal(t, items, slices.Concat(chunks...), "concatenation restores the input for n=%d", n)
	}
}

func TestChunk_Empty(t *testing.T) {
	assert.Empty(t, Chunk([]string{}, awsConstants.DescribeTasksBatchSize))
	assert.Empty(t, Chunk[string](nil, awsConstants.DescribeTasksBatchSize))
}

func TestChunk_DoesNotAliasFollowingChunk(t *testing.T) {
	items := []int{1, 2, 3, 4}
	chunks := Chunk(items, 2)

	chunks[0] = append(chunks[0], 99)

	assert.Equal(t, []int{3, 4}, chunks[1])
	assert.Equal(t, []int{1, 2, 3, 4}, items)
}

func TestChunk_PanicsOnInvalidSize(t *testing.T) {
	assert.Panics(t, func() { Chunk([]string{"a"}, 0) })
}

func TestDescribeTasks_Batches(t *testing.T) {
	input := testutil.TaskARNs("prod", 250)
	mock := &mockECSClient{describeTasksFunc: taggedDescriber(nil)}

	described, err := DescribeTasks(context.Background(), mock, "prod", input, nil)

	require.NoError(t, err)
	require.Len(t, mock.describeCalls, 3)
	assert.Len(t, mock.describeCalls[0].Tasks, 99)
	assert.Len(t, mock.describeCalls[1].Tasks, 99)
	assert.Len(t, mock.describeCalls[2].Tasks, 52)

	for _, call := range mock.describeCalls {
		assert.Equal(t, "prod", awsStd.ToString(call.Cluster))
		assert.Equal(t, []ecsTypes.TaskField{ecsTypes.TaskFieldTags}, call.Include)
	}

	got := make([]string, len(described))
	for i, task := range described {
		got[i] = task.ARN
	}
	assert.Equal(t, input, got, "results keep batch order")
}

func TestDescribeTasks_EmptyInput(t *testing.T) {
	mock := &mockECSClient{}

	described, err := DescribeTasks(context.Background(), mock, "default", nil, nil)

	require.NoError(t, err)
	assert.NotNil(t, described)
	assert.Empty(t, described)
	assert.Empty(t, mock.describeCalls, "no call is made for an empty input")
}

func TestDescribeTasks_MissingTags(t *testing.T) {
	mock := &mockECSClient{
		describeTasksFunc: func(context.Context, *ecs.DescribeTasksInput, ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error) {
			return &ecs.DescribeTasksOutput{Tasks: []ecsTypes.Task{testutil.NewTaskBuilder("t1").Build()}}, nil
		},
	}

	described, err := DescribeTasks(context.Background(), mock, "default", []string{"t1"}, nil)

	require.NoError(t, err)
	require.Len(t, described, 1)
	assert.Equal(t, "t1", described[0].ARN)
	assert.Empty(t, described[0].Tags)
}

func TestDescribeTasks_FailureOnSecondBatch(t *testing.T) {
	apiErr := errors.New("access denied")
	calls := 0
	mock := &mockECSClient{
		describeTasksFunc: func(ctx context.Context, params *ecs.DescribeTasksInput, optFns ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error) {
			calls++
			if calls == 2 {
				return nil, apiErr
			}
			return taggedDescriber(nil)(ctx, params, optFns...)
		},
	}

	described, err := DescribeTasks(context.Background(), mock, "default", testutil.TaskARNs("default", 250), nil)

	require.Error(t, err)
	assert.Nil(t, described, "no partial result on failure")
	assert.ErrorIs(t, err, apiErr)
	testutil.AssertAppErrorCode(t, err, appErrors.ErrCodeAPIError)
	assert.Len(t, mock.describeCalls, 2, "the third batch is never requested")
}

func TestTaskFromECS_NilValue(t *testing.T) {
	ecsTask := testutil.NewTaskBuilder("t1").WithValuelessTag("flag").Build()
	task := taskFromECS(&ecsTask)

	require.Len(t, task.Tags, 1)
	assert.Equal(t, "flag", task.Tags[0].Key)
	assert.Nil(t, task.Tags[0].Value)
}
