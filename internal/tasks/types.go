// Package tasks discovers ECS tasks and filters them by tag.
// It enumerates every task ARN in a cluster, describes them in bounded batches
// and keeps the tasks carrying at least one of the requested tags.
package tasks

import (
	awsStd "github.com/aws/aws-sdk-go-v2/aws"
	ecsTypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// Tag is a key/value pair attached to a task.
// Value is nil when ECS reports a tag without a value.
type Tag struct {
	Key   string
	Value *string
}

// Task is the subset of an ECS task record needed for tag matching.
type Task struct {
	ARN  string
	Tags []Tag
}

// Query describes one lookup.
type Query struct {
	Cluster string
	Filter  TagFilter
}

// Result is the outcome of a successful lookup.
type Result struct {
	Cluster string `json:"cluster" yaml:"cluster"`
	// TaskARNs holds the matching task ARNs, in describe order.
	TaskARNs []string `json:"taskArns" yaml:"taskArns"`
	// Scanned is the number of task ARNs enumerated in the cluster.
	Scanned int `json:"scanned" yaml:"scanned"`
}

// taskFromECS converts an ECS task record. Missing tags yield an empty tag set.
func taskFromECS(t *ecsTypes.Task) Task {
	task := Task{
		ARN:  awsStd.ToString(t.TaskArn),
		Tags: make([]Tag, 0, len(t.Tags)),
	}
	for _, tag := range t.Tags {
		task.Tags = append(task.Tags, Tag{
			Key:   awsStd.ToString(tag.Key),
			Value: tag.Value,
		})
	}
	return task
}
