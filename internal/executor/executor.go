package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/tray-bright/traymake/internal/config"
	"github.com/tray-bright/traymake/internal/ctxlog"
)

// ActionError reports an action that exited non-zero. ExitCode is the
// action's own exit status and becomes the invocation's exit status.
type ActionError struct {
	Recipe   string
	Action   string
	ExitCode int
	Err      error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("recipe %q: action %q failed with exit status %d", e.Recipe, e.Action, e.ExitCode)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// Executor runs recipe actions as shell processes rooted at the project
// directory.
type Executor struct {
	// Dir is the working directory for every action.
	Dir string

	// Stdout and Stderr are handed to each action verbatim.
	Stdout io.Writer
	Stderr io.Writer

	// DryRun prints the resolved actions to Stdout instead of running them.
	DryRun bool
}

// New creates an executor rooted at dir, streaming action output to the
// given writers.
func New(dir string, stdout, stderr io.Writer) *Executor {
	return &Executor{Dir: dir, Stdout: stdout, Stderr: stderr}
}

// Run executes the resolved order sequentially. Execution halts at the
// first failing action: no later action in the same recipe and no later
// recipe runs. Context cancellation is checked between actions and also
// terminates the action in flight.
func (e *Executor) Run(ctx context.Context, order []*config.Recipe) error {
	logger := ctxlog.FromContext(ctx)

	for _, recipe := range order {
		if len(recipe.Actions) == 0 {
			logger.Debug("Recipe has no actions, skipping.", "recipe", recipe.Name)
			continue
		}
		logger.Debug("Running recipe.", "recipe", recipe.Name, "actions", len(recipe.Actions))

		for _, action := range recipe.Actions {
			if err := ctx.Err(); err != nil {
				return err
			}
			if e.DryRun {
				fmt.Fprintf(e.Stdout, "%s: %s\n", recipe.Name, action)
				continue
			}
			if err := e.runAction(ctx, recipe.Name, action); err != nil {
				return err
			}
		}
	}
	return nil
}

// runAction spawns one shell process for a single action line and waits
// for it to complete.
func (e *Executor) runAction(ctx context.Context, recipeName, action string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", action)
	cmd.Dir = e.Dir
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ActionError{
			Recipe:   recipeName,
			Action:   action,
			ExitCode: exitErr.ExitCode(),
			Err:      err,
		}
	}
	// The process could not be started at all (missing shell, bad dir).
	return &ActionError{
		Recipe:   recipeName,
		Action:   action,
		ExitCode: 1,
		Err:      err,
	}
}
