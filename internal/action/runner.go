package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/runvoy/ecs-find-tasks/internal/config"
	"github.com/runvoy/ecs-find-tasks/internal/constants"
	appErrors "github.com/runvoy/ecs-find-tasks/internal/errors"
	"github.com/runvoy/ecs-find-tasks/internal/logger"
	"github.com/runvoy/ecs-find-tasks/internal/tasks"
)

// Finder is the lookup a Runner drives.
type Finder interface {
	Find(ctx context.Context, q tasks.Query) (*tasks.Result, error)
}

// Outcome is the result of one run.
type Outcome struct {
	Result *tasks.Result
	// Err is nil on success. Its message has already been reported to the host.
	Err error
}

// Failed reports whether the run failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Runner executes one lookup and reports it to a Host.
type Runner struct {
	finder Finder
	host   Host
	logger *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(finder Finder, host Host, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{finder: finder, host: host, logger: log}
}

// Run looks up the tasks of cfg.Cluster tagged with any of cfg.Tags and publishes
// the matching ARNs. Every failure is reported to the host exactly once; failures
// while querying ECS carry the FindFailurePrefix.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) Outcome {
	if cfg == nil {
		return r.fail(appErrors.ErrInvalidInput("missing configuration", nil), "")
	}

	ctx = logger.WithRunID(ctx, cfg.RunID)
	reqLogger := logger.DeriveRunLogger(ctx, r.logger)

	query := tasks.Query{
		Cluster: cfg.Cluster,
		Filter:  tasks.ParseTagFilter(cfg.Tags),
	}
	if len(query.Filter) == 0 {
		r.host.Warningf("no tags given, no task in cluster %s can match", query.Cluster)
	}

	result, err := r.finder.Find(ctx, query)
	if err != nil {
		return r.fail(err, constants.FindFailurePrefix)
	}

	if err = r.host.SetOutput(result); err != nil {
		return r.fail(appErrors.ErrInternalError("failed to write output", err), "")
	}

	reqLogger.Info("lookup complete", "context", map[string]any{
		"cluster": result.Cluster,
		"scanned": result.Scanned,
		"matched": len(result.TaskARNs),
	})

	return Outcome{Result: result}
}

// Fail reports an error raised before Run could start, such as invalid configuration.
func (r *Runner) Fail(err error) Outcome {
	return r.fail(err, "")
}

func (r *Runner) fail(err error, prefix string) Outcome {
	r.host.Fail(prefix + err.Error())
	r.host.Debugf("%s", errorChain(err))
	r.logger.Debug("run failed",
		"error", appErrors.GetErrorMessage(err),
		"details", appErrors.GetErrorDetails(err),
		"code", appErrors.GetErrorCode(err))
	return Outcome{Err: err}
}

func joinARNs(result *tasks.Result) string {
	if result == nil {
		return ""
	}
	return strings.Join(result.TaskARNs, constants.TaskARNSeparator)
}

// errorChain renders every wrapped error on its own line, outermost first.
func errorChain(err error) string {
	var lines []string
	for i := 0; err != nil; i++ {
		lines = append(lines, fmt.Sprintf("%d: %T: %v", i, err, err))
		err = errors.Unwrap(err)
	}
	return strings.Join(lines, "\n")
}
