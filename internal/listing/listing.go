// Package listing renders the default recipe listing: every recipe in
// declaration order with its description.
package listing

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/tray-bright/traymake/internal/config"
)

// Render writes the recipe listing to w. Styling degrades to plain text
// when w is not a terminal, so the output stays grep-friendly in scripts.
func Render(w io.Writer, book *config.Book) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w, "Available recipes:")

	width := 0
	for _, recipe := range book.Recipes() {
		if len(recipe.Name) > width {
			width = len(recipe.Name)
		}
	}

	for _, recipe := range book.Recipes() {
		name := out.String(recipe.Name).Bold()
		if recipe.Description == "" {
			fmt.Fprintf(w, "  %s\n", name)
			continue
		}
		padding := width - len(recipe.Name)
		desc := out.String(recipe.Description).Faint()
		fmt.Fprintf(w, "  %s%*s  %s\n", name, padding, "", desc)
	}
}
