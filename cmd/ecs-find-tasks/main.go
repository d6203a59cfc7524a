// Package main implements the ecs-find-tasks CLI and GitHub Action entrypoint.
// It finds the running ECS tasks of a cluster that carry given tags.
package main

import "github.com/runvoy/ecs-find-tasks/cmd/ecs-find-tasks/cmd"

func main() {
	cmd.Execute()
}
