package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/runvoy/ecs-find-tasks/internal/action"
	"github.com/runvoy/ecs-find-tasks/internal/config"
	"github.com/runvoy/ecs-find-tasks/internal/constants"
	"github.com/runvoy/ecs-find-tasks/internal/logger"
	"github.com/runvoy/ecs-find-tasks/internal/output"
	"github.com/runvoy/ecs-find-tasks/internal/providers/aws/client"
	"github.com/runvoy/ecs-find-tasks/internal/tasks"

	"github.com/spf13/cobra"
)

var (
	debug   bool
	verbose bool

	// newECSClient is replaced in tests.
	newECSClient = func(ctx context.Context, region string) (client.ECSClient, error) {
		return client.NewECSClient(ctx, region)
	}
	// newHost is replaced in tests.
	newHost = defaultHost
)

var rootCmd = &cobra.Command{
	Use:   constants.ProjectName,
	Short: "Find running ECS tasks by tag",
	Long: fmt.Sprintf(`%s - %s
Lists every task of an ECS cluster and prints the ARNs of those carrying
at least one of the given key:value tags.

Inside GitHub Actions the cluster and tags inputs are read from the
workflow and the matching ARNs are written to the task-arns output.`,
		constants.ProjectName, *constants.GetVersion()),
	Example: fmt.Sprintf(`  %[1]s --cluster prod --tags env:prod,team:core
  %[1]s --tags owner:deploy --format json`, constants.ProjectName),
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runFind(cmd)
	},
}

// Execute runs the root command and exits non-zero when the run failed.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.String("cluster", constants.DefaultCluster, "ECS cluster name or ARN")
	flags.String("tags", "", "Comma-separated key:value tags; a task matches if it carries any of them")
	flags.String("region", "", "AWS region (defaults to the AWS SDK configuration)")
	flags.String("format", constants.FormatText, "Output format: text, json or yaml")
	flags.String("log-level", "INFO", "Log level: DEBUG, INFO, WARN or ERROR")
	flags.Duration("timeout", 0, "Timeout for the whole lookup (e.g. 30s, 5m); 0 disables it")

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debugging logs")
}

func environment() constants.Environment {
	if os.Getenv(constants.GitHubActionsEnvVar) == "true" {
		return constants.Action
	}
	return constants.CLI
}

func defaultHost(env constants.Environment, format string, log *slog.Logger) action.Host {
	if env == constants.Action {
		return action.NewActionsHost(nil)
	}
	return action.NewConsoleHost(output.Stdout, format, log)
}

func runFind(cmd *cobra.Command) error {
	startTime := time.Now().UTC()
	env := environment()

	cfg, cfgErr := config.Load(cmd.Flags())

	logLevel := slog.LevelInfo
	format := constants.FormatText
	if cfgErr == nil {
		logLevel = cfg.GetLogLevel()
		format = cfg.Format
	}
	if debug {
		logLevel = slog.LevelDebug
	}
	log := logger.Initialize(env, logLevel)

	host := newHost(env, format, log)

	if cfgErr != nil {
		return action.NewRunner(nil, host, log).Fail(cfgErr).Err
	}

	ctx := cmd.Context()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if verbose {
		output.Header("🔎 " + constants.ProjectName + " " + *constants.GetVersion())
		output.KeyValue("Cluster", output.Bold(cfg.Cluster))
		output.KeyValue("Tags", cfg.Tags)
		if cfg.Region != "" {
			output.KeyValue("Region", cfg.Region)
		}
		if cfg.Timeout > 0 {
			output.KeyValue("Timeout", cfg.Timeout.String())
		}
	}

	ecsClient, err := newECSClient(ctx, cfg.Region)
	if err != nil {
		return action.NewRunner(nil, host, log).Fail(err).Err
	}

	if verbose {
		output.Infof("Listing tasks in cluster %s...", cfg.Cluster)
	}

	finder := tasks.NewFinder(ecsClient, log, tasks.WithTrace(host.Debugf))
	outcome := action.NewRunner(finder, host, log).Run(ctx, cfg)
	if outcome.Failed() {
		return outcome.Err
	}

	if verbose {
		output.Successf("%d of %d tasks matched in %s",
			len(outcome.Result.TaskARNs), outcome.Result.Scanned, time.Since(startTime).Round(time.Millisecond))
	}

	return nil
}

// RootCmd returns the root command for use by tools like doc generators.
func RootCmd() *cobra.Command {
	return rootCmd
}
