// Package constants provides AWS-specific constants for ECS task discovery.
package constants

// DescribeTasksBatchSize is the maximum number of task ARNs sent in one ECS DescribeTasks call.
// ECS rejects requests above 100 tasks; batches stay one below that limit.
const DescribeTasksBatchSize = 99

// UserAgentKey is appended to the user agent of every ECS request.
const UserAgentKey = "amazon-ecs-find-tasks-with-tags-for-github-actions"

// Operation names used in "calling external service" log lines.
const (
	OperationListTasks     = "ECS.ListTasks"
	OperationDescribeTasks = "ECS.DescribeTasks"
)
