package tasks

import (
	"context"
	"log/slog"

	appErrors "github.com/runvoy/ecs-find-tasks/internal/errors"
	"github.com/runvoy/ecs-find-tasks/internal/logger"
	"github.com/runvoy/ecs-find-tasks/internal/providers/aws/client"
	awsConstants "github.com/runvoy/ecs-find-tasks/internal/providers/aws/constants"

	awsStd "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecsTypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// Chunk splits items into consecutive slices of at most size elements.
// Concatenating the chunks yields items unchanged; an empty input yields no chunks.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		panic("tasks: chunk size must be positive")
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end:end])
	}
	return chunks
}

// DescribeTasks fetches the task records, tags included, for taskARNs.
// ARNs are sent in batches of DescribeTasksBatchSize, one call at a time, and the
// returned tasks are concatenated in batch order. The first failing batch aborts
// the whole describe and nothing fetched so far is returned.
func DescribeTasks(
	ctx context.Context, ecsClient client.ECSClient, cluster string, taskARNs []string, log *slog.Logger,
) ([]Task, error) {
	reqLogger := logger.DeriveRunLogger(ctx, log)

	batches := Chunk(taskARNs, awsConstants.DescribeTasksBatchSize)
	tasks := make([]Task, 0, len(taskARNs))

	for i, batch := range batches {
		logArgs := []any{
			"operation", awsConstants.OperationDescribeTasks,
			"cluster", cluster,
			"batch", i + 1,
			"batches", len(batches),
			"batch_size", len(batch),
		}
		logArgs = append(logArgs, logger.GetDeadlineInfo(ctx)...)
		reqLogger.Debug("calling external service", "context", logger.SliceToMap(logArgs))

		describeOutput, err := ecsClient.DescribeTasks(ctx, &ecs.DescribeTasksInput{
			Cluster: awsStd.String(cluster),
			Tasks:   batch,
			Include: []ecsTypes.TaskField{ecsTypes.TaskFieldTags},
		})
		if err != nil {
			reqLogger.Debug("failed to describe tasks", "error", err, "cluster", cluster, "batch", i+1)
			return nil, appErrors.ErrAPI(awsConstants.OperationDescribeTasks, err)
		}

		for j := range describeOutput.Tasks {
			tasks = append(tasks, taskFromECS(&describeOutput.Tasks[j]))
		}
	}

	return tasks, nil
}
