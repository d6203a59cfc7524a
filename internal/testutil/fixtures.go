// Package testutil provides shared testing utilities and helpers.
package testutil

import (
	"fmt"

	awsStd "github.com/aws/aws-sdk-go-v2/aws"
	ecsTypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// TaskARN returns a task ARN in cluster with the given id.
func TaskARN(cluster, id string) string {
	return fmt.Sprintf("arn:aws:ecs:us-east-1:123456789012:task/%s/%s", cluster, id)
}

// TaskARNs returns n distinct task ARNs in cluster, in increasing order.
func TaskARNs(cluster string, n int) []string {
	arns := make([]string, n)
	for i := range arns {
		arns[i] = TaskARN(cluster, fmt.Sprintf("%032d", i))
	}
	return arns
}

// TaskBuilder provides a fluent interface for building ECS task records.
type TaskBuilder struct {
	task ecsTypes.Task
}

// NewTaskBuilder creates a TaskBuilder for a running task with the given ARN.
func NewTaskBuilder(arn string) *TaskBuilder {
	return &TaskBuilder{
		task: ecsTypes.Task{
			TaskArn:    awsStd.String(arn),
			LastStatus: awsStd.String("RUNNING"),
		},
	}
}

// WithTag adds a key/value tag.
func (b *TaskBuilder) WithTag(key, value string) *TaskBuilder {
	b.task.Tags = append(b.task.Tags, ecsTypes.Tag{Key: awsStd.String(key), Value: awsStd.String(value)})
	return b
}

// WithValuelessTag adds a tag whose value is not set.
func (b *TaskBuilder) WithValuelessTag(key string) *TaskBuilder {
	b.task.Tags = append(b.task.Tags, ecsTypes.Tag{Key: awsStd.String(key)})
	return b
}

// Build returns the task.
func (b *TaskBuilder) Build() ecsTypes.Task {
	return b.task
}
