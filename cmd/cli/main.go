package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tray-bright/traymake/internal/app"
	"github.com/tray-bright/traymake/internal/cli"
	"github.com/tray-bright/traymake/internal/executor"
	"github.com/tray-bright/traymake/internal/hclbook"
)

// main is the entrypoint for the traymake application.
func main() {
	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		// A failing action's own exit status becomes ours; its output has
		// already been streamed through.
		var actionErr *executor.ActionError
		if errors.As(err, &actionErr) {
			fmt.Fprintln(os.Stderr, actionErr.Error())
			os.Exit(actionErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hclbook.NewLoader()
	traymakeApp, err := app.NewApp(outW, errW, appConfig, loader)
	if err != nil {
		return err
	}

	return traymakeApp.Run(context.Background())
}
