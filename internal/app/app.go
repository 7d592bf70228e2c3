package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tray-bright/traymake/internal/builtin"
	"github.com/tray-bright/traymake/internal/config"
	"github.com/tray-bright/traymake/internal/ctxlog"
	"github.com/tray-bright/traymake/internal/dag"
	"github.com/tray-bright/traymake/internal/fsutil"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	graph  *dag.Graph
	root   string
}

// NewApp is the constructor for the main application. It loads the recipe
// book, builds the validated dependency graph, and returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW, errW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	book, root, err := loadBook(ctx, appConfig, loader)
	if err != nil {
		return nil, err
	}
	logger.Debug("Recipe book loaded.", "recipes", book.Len(), "root", root)

	graph, err := dag.Build(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("invalid recipe book: %w", err)
	}

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: appConfig,
		graph:  graph,
		root:   root,
	}, nil
}

// Book returns the loaded recipe book. This is primarily for testing.
func (a *App) Book() *config.Book {
	return a.graph.Book()
}

// Root returns the resolved project root. This is primarily for testing.
func (a *App) Root() string {
	return a.root
}

// loadBook locates and parses the recipe book, returning it together with
// the project root every action will run in.
func loadBook(ctx context.Context, appConfig *Config, loader config.Loader) (*config.Book, string, error) {
	logger := ctxlog.FromContext(ctx)

	if appConfig.BookPath != "" {
		book, err := loader.Load(ctx, appConfig.BookPath)
		if err != nil {
			return nil, "", err
		}
		root := appConfig.ProjectRoot
		if root == "" {
			root = filepath.Dir(appConfig.BookPath)
		}
		return book, root, nil
	}

	startDir := appConfig.ProjectRoot
	if startDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		startDir = cwd
	}

	found, err := fsutil.FindUpward(startDir, BookFilename)
	if err != nil {
		return nil, "", err
	}
	if found != "" {
		logger.Debug("Found recipe book.", "path", found)
		book, err := loader.Load(ctx, found)
		if err != nil {
			return nil, "", err
		}
		root := appConfig.ProjectRoot
		if root == "" {
			root = filepath.Dir(found)
		}
		return book, root, nil
	}

	logger.Debug("No recipe book on disk, using the builtin book.")
	book, err := loader.LoadBytes(ctx, builtin.Filename, builtin.Source)
	if err != nil {
		return nil, "", err
	}
	return book, startDir, nil
}
