package dag

import (
	"context"

	"github.com/tray-bright/traymake/internal/config"
	"github.com/tray-bright/traymake/internal/ctxlog"
)

// Resolve linearizes the prerequisite closure of the named recipe. Every
// prerequisite appears strictly before its dependent, each recipe appears
// at most once (the first topological position wins), and the order is
// deterministic: prerequisites are walked in declaration order, so
// resolving the same graph for the same target always yields the same
// sequence.
func (g *Graph) Resolve(ctx context.Context, name string) ([]*config.Recipe, error) {
	target, ok := g.nodes[name]
	if !ok {
		return nil, &UnknownRecipeError{Name: name}
	}

	var order []*config.Recipe
	visited := make(map[string]bool)

	// Cycles were rejected at build time, so this walk terminates.
	var visit func(n *node)
	visit = func(n *node) {
		if visited[n.recipe.Name] {
			return
		}
		visited[n.recipe.Name] = true
		for _, dep := range n.needs {
			visit(dep)
		}
		order = append(order, n.recipe)
	}
	visit(target)

	ctxlog.FromContext(ctx).Debug("Resolved execution order.", "target", name, "length", len(order))
	return order, nil
}
