package builtin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tray-bright/traymake/internal/builtin"
	"github.com/tray-bright/traymake/internal/config"
	"github.com/tray-bright/traymake/internal/dag"
	"github.com/tray-bright/traymake/internal/hclbook"
)

func loadBuiltin(t *testing.T) *config.Book {
	t.Helper()
	book, err := hclbook.NewLoader().LoadBytes(context.Background(), builtin.Filename, builtin.Source)
	require.NoError(t, err)
	return book
}

func TestBuiltinBook(t *testing.T) {
	book := loadBuiltin(t)

	var names []string
	for _, r := range book.Recipes() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"default",
		"run",
		"build",
		"release",
		"package-windows",
		"package-mac",
		"package-linux",
		"package",
		"lint",
		"fmt",
		"fmt-check",
		"clean",
	}, names)

	for _, r := range book.Recipes() {
		assert.NotEmpty(t, r.Description, "recipe %q must carry a description for the listing", r.Name)
	}
}

func TestBuiltinPackagingNeedsRelease(t *testing.T) {
	book := loadBuiltin(t)

	for _, name := range []string{"package-windows", "package-mac", "package-linux", "package"} {
		r, ok := book.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, []string{"release"}, r.Needs, name)
	}
}

func TestBuiltinBookIsAcyclic(t *testing.T) {
	book := loadBuiltin(t)
	ctx := context.Background()

	graph, err := dag.Build(ctx, book)
	require.NoError(t, err)

	// Every recipe must be resolvable without ever reaching itself through
	// its own prerequisites.
	for _, r := range book.Recipes() {
		order, err := graph.Resolve(ctx, r.Name)
		require.NoError(t, err, r.Name)
		for i, step := range order[:len(order)-1] {
			assert.NotEqual(t, r.Name, step.Name, "recipe %q reachable at position %d of its own chain", r.Name, i)
		}
	}
}

func TestBuiltinResolvedOrders(t *testing.T) {
	book := loadBuiltin(t)
	graph, err := dag.Build(context.Background(), book)
	require.NoError(t, err)

	order, err := graph.Resolve(context.Background(), "package-windows")
	require.NoError(t, err)

	var names []string
	for _, r := range order {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"release", "package-windows"}, names)
}

func TestBuiltinCleanUsesDistDir(t *testing.T) {
	book := loadBuiltin(t)

	clean, ok := book.Lookup("clean")
	require.True(t, ok)
	assert.Equal(t, []string{"cargo clean", "rm -rf dist"}, clean.Actions)
}
