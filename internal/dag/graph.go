package dag

import (
	"context"
	"fmt"

	"github.com/tray-bright/traymake/internal/config"
	"github.com/tray-bright/traymake/internal/ctxlog"
)

// node is one recipe in the graph, with its prerequisite edges resolved
// to node references in declaration order.
type node struct {
	recipe *config.Recipe
	needs  []*node
}

// Graph is the validated prerequisite graph over a recipe book. It is
// immutable once built.
type Graph struct {
	book  *config.Book
	nodes map[string]*node
}

// Build constructs a complete, validated dependency graph from a recipe
// book. The book is parsed fresh per invocation, so the returned graph is
// immutable for the lifetime of the run.
func Build(ctx context.Context, book *config.Book) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.")

	graph := &Graph{
		book:  book,
		nodes: make(map[string]*node, book.Len()),
	}

	// First pass: create all nodes.
	for _, recipe := range book.Recipes() {
		graph.nodes[recipe.Name] = &node{recipe: recipe}
	}

	// Second pass: link prerequisite edges in declaration order.
	for _, recipe := range book.Recipes() {
		n := graph.nodes[recipe.Name]
		for _, need := range recipe.Needs {
			if need == recipe.Name {
				return nil, fmt.Errorf("recipe %q depends on itself", recipe.Name)
			}
			dep, ok := graph.nodes[need]
			if !ok {
				// NewBook rejects this already; kept as a guard for
				// graphs built from hand-assembled books.
				return nil, fmt.Errorf("recipe %q needs unknown recipe %q", recipe.Name, need)
			}
			n.needs = append(n.needs, dep)
		}
	}
	logger.Debug("Build: Node linking complete.", "node_count", len(graph.nodes))

	if err := graph.detectCycles(); err != nil {
		return nil, err
	}
	logger.Debug("Build: Cycle detection passed.")

	return graph, nil
}

// Book returns the recipe book this graph was built from.
func (g *Graph) Book() *config.Book {
	return g.book
}

// detectCycles checks for circular dependencies in the graph using DFS.
func (g *Graph) detectCycles() error {
	visiting := make(map[string]bool)
	visited := make(map[string]bool)
	var stack []string

	var visit func(n *node) error
	visit = func(n *node) error {
		visiting[n.recipe.Name] = true
		stack = append(stack, n.recipe.Name)
		for _, dep := range n.needs {
			if visiting[dep.recipe.Name] {
				return &CycleError{Path: append(cyclePath(stack, dep.recipe.Name), dep.recipe.Name)}
			}
			if !visited[dep.recipe.Name] {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		stack = stack[:len(stack)-1]
		delete(visiting, n.recipe.Name)
		visited[n.recipe.Name] = true
		return nil
	}

	for _, recipe := range g.book.Recipes() {
		if !visited[recipe.Name] {
			if err := visit(g.nodes[recipe.Name]); err != nil {
				return err
			}
		}
	}
	return nil
}

// cyclePath trims the DFS stack down to the segment that forms the cycle.
func cyclePath(stack []string, start string) []string {
	for i, name := range stack {
		if name == start {
			return append([]string(nil), stack[i:]...)
		}
	}
	return append([]string(nil), stack...)
}
