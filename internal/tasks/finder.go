package tasks

import (
	"context"
	"log/slog"
	"strings"

	appErrors "github.com/runvoy/ecs-find-tasks/internal/errors"
	"github.com/runvoy/ecs-find-tasks/internal/logger"
	"github.com/runvoy/ecs-find-tasks/internal/providers/aws/client"
)

// TraceFunc receives the debug trace lines of a lookup.
type TraceFunc func(format string, args ...any)

// Finder looks up the tasks of a cluster that carry given tags.
type Finder struct {
	ecsClient client.ECSClient
	logger    *slog.Logger
	trace     TraceFunc
}

// Option configures a Finder.
type Option func(*Finder)

// WithTrace sends the enumerated and the matching ARN lists to fn.
func WithTrace(fn TraceFunc) Option {
	return func(f *Finder) {
		if fn != nil {
			f.trace = fn
		}
	}
}

// NewFinder creates a Finder backed by ecsClient.
func NewFinder(ecsClient client.ECSClient, log *slog.Logger, opts ...Option) *Finder {
	if log == nil {
		log = slog.Default()
	}

	f := &Finder{
		ecsClient: ecsClient,
		logger:    log,
		trace:     func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find enumerates every task of q.Cluster, describes them and returns the ARNs of
// those with at least one tag in q.Filter. ECS calls are made one at a time and the
// first failure aborts the lookup.
func (f *Finder) Find(ctx context.Context, q Query) (*Result, error) {
	if f.ecsClient == nil {
		return nil, appErrors.ErrInternalError("ECS client not configured", nil)
	}

	reqLogger := logger.DeriveRunLogger(ctx, f.logger)

	taskARNs, err := ListAllTasks(ctx, f.ecsClient, q.Cluster, reqLogger)
	if err != nil {
		return nil, err
	}
	f.trace("Found tasks: %s", strings.Join(taskARNs, ","))
	reqLogger.Debug("tasks enumerated", "cluster", q.Cluster, "count", len(taskARNs))

	described, err := DescribeTasks(ctx, f.ecsClient, q.Cluster, taskARNs, reqLogger)
	if err != nil {
		return nil, err
	}

	matched := MatchTasks(described, q.Filter)
	f.trace("Tasks with matching tags %s", strings.Join(matched, ","))
	reqLogger.Debug("tasks matched", "context", map[string]any{
		"cluster": q.Cluster,
		"filter":  q.Filter.String(),
		"scanned": len(taskARNs),
		"matched": len(matched),
	})

	return &Result{
		Cluster:  q.Cluster,
		TaskARNs: matched,
		Scanned:  len(taskARNs),
	}, nil
}
