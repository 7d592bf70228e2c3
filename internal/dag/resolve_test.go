package dag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tray-bright/traymake/internal/config"
)

func names(order []*config.Recipe) []string {
	out := make([]string, 0, len(order))
	for _, r := range order {
		out = append(out, r.Name)
	}
	return out
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown recipe", func(t *testing.T) {
		g, err := Build(ctx, mustBook(t, &config.Recipe{Name: "build"}))
		require.NoError(t, err)

		_, err = g.Resolve(ctx, "deploy")
		var unknownErr *UnknownRecipeError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, "deploy", unknownErr.Name)
	})

	t.Run("recipe without prerequisites resolves to itself", func(t *testing.T) {
		g, err := Build(ctx, mustBook(t, &config.Recipe{Name: "clean"}))
		require.NoError(t, err)

		order, err := g.Resolve(ctx, "clean")
		require.NoError(t, err)
		assert.Equal(t, []string{"clean"}, names(order))
	})

	t.Run("prerequisite comes strictly before dependent", func(t *testing.T) {
		g, err := Build(ctx, mustBook(t,
			&config.Recipe{Name: "release"},
			&config.Recipe{Name: "package-windows", Needs: []string{"release"}},
		))
		require.NoError(t, err)

		order, err := g.Resolve(ctx, "package-windows")
		require.NoError(t, err)
		assert.Equal(t, []string{"release", "package-windows"}, names(order))
	})

	t.Run("shared prerequisite appears exactly once", func(t *testing.T) {
		g, err := Build(ctx, mustBook(t,
			&config.Recipe{Name: "release"},
			&config.Recipe{Name: "win", Needs: []string{"release"}},
			&config.Recipe{Name: "mac", Needs: []string{"release"}},
			&config.Recipe{Name: "all", Needs: []string{"win", "mac"}},
		))
		require.NoError(t, err)

		order, err := g.Resolve(ctx, "all")
		require.NoError(t, err)
		assert.Equal(t, []string{"release", "win", "mac", "all"}, names(order))
	})

	t.Run("resolution is idempotent", func(t *testing.T) {
		g, err := Build(ctx, mustBook(t,
			&config.Recipe{Name: "release"},
			&config.Recipe{Name: "win", Needs: []string{"release"}},
			&config.Recipe{Name: "mac", Needs: []string{"release"}},
			&config.Recipe{Name: "all", Needs: []string{"win", "mac"}},
		))
		require.NoError(t, err)

		first, err := g.Resolve(ctx, "all")
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := g.Resolve(ctx, "all")
			require.NoError(t, err)
			assert.Equal(t, names(first), names(again))
		}
	})

	t.Run("unrelated recipes are not included", func(t *testing.T) {
		g, err := Build(ctx, mustBook(t,
			&config.Recipe{Name: "lint"},
			&config.Recipe{Name: "release"},
			&config.Recipe{Name: "package", Needs: []string{"release"}},
		))
		require.NoError(t, err)

		order, err := g.Resolve(ctx, "package")
		require.NoError(t, err)
		assert.NotContains(t, names(order), "lint")
	})
}
