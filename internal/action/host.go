// Package action connects a task lookup to the pipeline that invoked it.
// A Host receives the debug trace, the task-arns output and the failure report,
// either as GitHub Actions workflow commands or as CLI output.
package action

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/runvoy/ecs-find-tasks/internal/constants"
	"github.com/runvoy/ecs-find-tasks/internal/output"
	"github.com/runvoy/ecs-find-tasks/internal/tasks"

	"github.com/sethvargo/go-githubactions"
)

// Host is the pipeline side of a run.
type Host interface {
	// Debugf emits a debug-level trace line.
	Debugf(format string, args ...any)
	// Warningf reports a condition worth the user's attention that does not fail the run.
	Warningf(format string, args ...any)
	// SetOutput publishes the lookup result.
	SetOutput(result *tasks.Result) error
	// Fail marks the run as failed with a human-readable message.
	Fail(message string)
}

// ActionsHost reports through GitHub Actions workflow commands.
type ActionsHost struct {
	action *githubactions.Action
}

// NewActionsHost wraps a. A nil a uses the process environment and stdout.
func NewActionsHost(a *githubactions.Action) *ActionsHost {
	if a == nil {
		a = githubactions.New()
	}
	return &ActionsHost{action: a}
}

// Debugf implements Host.
func (h *ActionsHost) Debugf(format string, args ...any) {
	h.action.Debugf(format, args...)
}

// Warningf implements Host.
func (h *ActionsHost) Warningf(format string, args ...any) {
	h.action.Warningf(format, args...)
}

// SetOutput sets the task-arns output to the matching ARNs joined by commas.
func (h *ActionsHost) SetOutput(result *tasks.Result) error {
	h.action.SetOutput(constants.OutputTaskARNs, joinARNs(result))
	return nil
}

// Fail implements Host. The process exit status is left to the caller.
func (h *ActionsHost) Fail(message string) {
	h.action.Errorf("%s", message)
}

// ConsoleHost prints results for interactive use.
type ConsoleHost struct {
	w      io.Writer
	format string
	logger *slog.Logger
}

// NewConsoleHost returns a host rendering results to w in format.
func NewConsoleHost(w io.Writer, format string, log *slog.Logger) *ConsoleHost {
	if log == nil {
		log = slog.Default()
	}
	return &ConsoleHost{w: w, format: format, logger: log}
}

// Debugf implements Host.
func (h *ConsoleHost) Debugf(format string, args ...any) {
	h.logger.Debug("trace", "message", fmt.Sprintf(format, args...))
}

// Warningf implements Host.
func (h *ConsoleHost) Warningf(format string, args ...any) {
	output.Warningf(format, args...)
}

// SetOutput renders the result in the configured format.
func (h *ConsoleHost) SetOutput(result *tasks.Result) error {
	return output.Render(h.w, h.format, result.TaskARNs, constants.TaskARNSeparator, result)
}

// Fail implements Host.
func (h *ConsoleHost) Fail(message string) {
	output.Errorf("%s", message)
}
