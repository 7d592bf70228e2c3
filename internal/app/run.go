package app

import (
	"context"

	"github.com/tray-bright/traymake/internal/ctxlog"
	"github.com/tray-bright/traymake/internal/executor"
	"github.com/tray-bright/traymake/internal/listing"
)

// defaultRecipe is the recipe whose effect is rendering the listing. It
// carries no actions of its own in the book.
const defaultRecipe = "default"

// Run executes the invocation: the recipe listing for an empty or default
// target, otherwise the target's resolved prerequisite chain.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	target := a.config.Target
	if target == "" || target == defaultRecipe {
		listing.Render(a.outW, a.Book())
		return nil
	}

	order, err := a.graph.Resolve(ctx, target)
	if err != nil {
		return err
	}

	exec := executor.New(a.root, a.outW, a.errW)
	exec.DryRun = a.config.DryRun
	if err := exec.Run(ctx, order); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
