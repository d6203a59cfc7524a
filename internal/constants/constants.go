// Package constants defines global constants used throughout ecs-find-tasks.
// It includes version information, defaults, and the names of pipeline inputs and outputs.
package constants

var version = "0.0.0-development" // Updated by CI/CD pipeline at build time

// GetVersion returns the current version of ecs-find-tasks.
func GetVersion() *string {
	return &version
}

// ProjectName is the name of the CLI tool and GitHub Action
const ProjectName = "ecs-find-tasks"

// EnvPrefix is the prefix of environment variables read by the configuration layer
const EnvPrefix = "ECS_FIND_TASKS"

// Environment represents the execution environment (e.g., CLI, GitHub Action).
type Environment string

// Environment types for logger configuration
const (
	CLI    Environment = "cli"
	Action Environment = "action"
)

// GitHubActionsEnvVar is set to "true" by the GitHub Actions runner.
const GitHubActionsEnvVar = "GITHUB_ACTIONS"

// DefaultCluster is the cluster queried when no cluster input is given.
// It matches the name ECS assigns to the implicit default cluster.
const DefaultCluster = "default"

// Pipeline input names, read as INPUT_<NAME> by the GitHub Actions runner.
const (
	InputCluster = "cluster"
	InputTags    = "tags"
	InputRegion  = "region"
)

// OutputTaskARNs is the name of the output holding the comma-separated matching task ARNs.
const OutputTaskARNs = "task-arns"

// TagSpecSeparator separates tag specs in the tags input.
const TagSpecSeparator = ","

// TagKeyValueSeparator separates the key from the value inside one tag spec.
const TagKeyValueSeparator = ":"

// TaskARNSeparator joins matching task ARNs in the task-arns output.
const TaskARNSeparator = ","

// FindFailurePrefix prefixes the failure message reported when querying ECS fails.
const FindFailurePrefix = "failed to find tasks in ECS: "

// Output formats supported by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// HeaderSeparatorLength is the width of the separator printed under CLI headers
const HeaderSeparatorLength = 40
