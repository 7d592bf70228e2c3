package config

import "fmt"

// Recipe is a single named unit of work: zero or more prerequisite recipe
// names and an ordered list of shell action lines.
type Recipe struct {
	Name        string
	Description string
	Needs       []string
	Actions     []string
}

// Book is the complete, immutable set of recipes for one invocation.
// Declaration order is preserved for listings and deterministic resolution.
type Book struct {
	recipes []*Recipe
	byName  map[string]*Recipe
}

// NewBook builds a Book from recipes in declaration order. Duplicate names
// and prerequisite references to undeclared recipes are rejected here so
// that every Book handed to the rest of the application is well formed.
func NewBook(recipes []*Recipe) (*Book, error) {
	byName := make(map[string]*Recipe, len(recipes))
	for _, r := range recipes {
		if r.Name == "" {
			return nil, fmt.Errorf("recipe with empty name")
		}
		if _, dup := byName[r.Name]; dup {
			return nil, fmt.Errorf("duplicate recipe %q", r.Name)
		}
		byName[r.Name] = r
	}
	for _, r := range recipes {
		for _, need := range r.Needs {
			if _, ok := byName[need]; !ok {
				return nil, fmt.Errorf("recipe %q needs unknown recipe %q", r.Name, need)
			}
		}
	}
	return &Book{recipes: recipes, byName: byName}, nil
}

// Recipes returns all recipes in declaration order. The returned slice must
// not be mutated.
func (b *Book) Recipes() []*Recipe {
	return b.recipes
}

// Lookup returns the recipe with the given name, if declared.
func (b *Book) Lookup(name string) (*Recipe, bool) {
	r, ok := b.byName[name]
	return r, ok
}

// Len returns the number of declared recipes.
func (b *Book) Len() int {
	return len(b.recipes)
}
