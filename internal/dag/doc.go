// Package dag builds and validates the prerequisite graph over a recipe
// book, and resolves a target recipe into a deduplicated, dependency
// respecting linear execution order.
package dag
