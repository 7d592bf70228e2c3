// Package app is the composition root. It wires the recipe book loader,
// the dependency graph, and the executor together, and dispatches an
// invocation to the listing, dry-run, or execution path.
package app
