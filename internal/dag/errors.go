package dag

import (
	"fmt"
	"strings"
)

// UnknownRecipeError reports a request for a recipe name that is not
// declared in the book.
type UnknownRecipeError struct {
	Name string
}

func (e *UnknownRecipeError) Error() string {
	return fmt.Sprintf("unknown recipe %q", e.Name)
}

// CycleError reports a circular prerequisite chain. Path holds the cycle
// in declaration order, ending with the recipe that closes it.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Path, " -> "))
}
