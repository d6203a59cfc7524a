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
)

// ListAllTasks returns every task ARN in cluster, following ListTasks pagination until
// ECS stops returning a NextToken. Follow-up pages are requested with the token alone,
// which already identifies the cluster. ARNs keep the order ECS returned them in.
func ListAllTasks(
	ctx context.Context, ecsClient client.ECSClient, cluster string, log *slog.Logger,
) ([]string, error) {
	reqLogger := logger.DeriveRunLogger(ctx, log)

	params := &ecs.ListTasksInput{Cluster: awsStd.String(cluster)}
	taskARNs := []string{}

	for page := 1; ; page++ {
		logArgs := []any{
			"operation", awsConstants.OperationListTasks,
			"cluster", cluster,
			"page", page,
		}
		logArgs = append(logArgs, logger.GetDeadlineInfo(ctx)...)
		reqLogger.Debug("calling external service", "context", logger.SliceToMap(logArgs))

		listOutput, err := ecsClient.ListTasks(ctx, params)
		if err != nil {
			reqLogger.Debug("failed to list tasks", "error", err, "cluster", cluster, "page", page)
			return nil, appErrors.ErrAPI(awsConstants.OperationListTasks, err)
		}

		taskARNs = append(taskARNs, listOutput.TaskArns...)

		if listOutput.NextToken == nil {
			break
		}
		params = &ecs.ListTasksInput{NextToken: listOutput.NextToken}
	}

	return taskARNs, nil
}
