package hclbook

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/tray-bright/traymake/internal/config"
	"github.com/tray-bright/traymake/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL recipe book loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is a struct used to decode the top-level blocks of a recipe book.
type fileRoot struct {
	Locals  []*localsBlock `hcl:"locals,block"`
	Recipes []*recipeBlock `hcl:"recipe,block"`
}

// localsBlock holds the raw body of a `locals` block; its attributes are
// evaluated in source order so later locals may reference earlier ones.
type localsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// recipeBlock represents a `recipe` block from a user's book file.
// Description and run lines stay unevaluated here so they can be
// interpolated against the locals.
type recipeBlock struct {
	Name        string         `hcl:"name,label"`
	Description hcl.Expression `hcl:"description,optional"`
	Needs       []string       `hcl:"needs,optional"`
	Run         hcl.Expression `hcl:"run,optional"`
}

// Load reads a recipe book from disk and translates it into the
// format-agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Book, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading recipe book %s: %w", path, err)
	}
	return l.LoadBytes(ctx, path, src)
}

// LoadBytes translates an in-memory recipe book. The filename is used only
// for diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, filename string, src []byte) (*config.Book, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file", filename)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse recipe book %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode recipe book %s: %w", filename, diags)
	}

	evalCtx, err := l.buildEvalContext(root.Locals)
	if err != nil {
		return nil, err
	}

	recipes := make([]*config.Recipe, 0, len(root.Recipes))
	for _, block := range root.Recipes {
		recipe, err := l.translateRecipe(block, evalCtx)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}

	book, err := config.NewBook(recipes)
	if err != nil {
		return nil, fmt.Errorf("invalid recipe book %s: %w", filename, err)
	}
	logger.Debug("HCL loading complete.", "recipes", book.Len())
	return book, nil
}

// buildEvalContext evaluates all locals blocks and exposes their values
// under the `local.*` namespace.
func (l *Loader) buildEvalContext(blocks []*localsBlock) (*hcl.EvalContext, error) {
	locals := make(map[string]cty.Value)
	for _, block := range blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to read locals: %w", diags)
		}

		// JustAttributes returns a map; restore source order so that a
		// local may reference one declared above it.
		ordered := make([]*hcl.Attribute, 0, len(attrs))
		for _, attr := range attrs {
			ordered = append(ordered, attr)
		}
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
		})

		for _, attr := range ordered {
			val, diags := attr.Expr.Value(&hcl.EvalContext{
				Variables: map[string]cty.Value{"local": localNamespace(locals)},
			})
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to evaluate local %q: %w", attr.Name, diags)
			}
			locals[attr.Name] = val
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": localNamespace(locals)},
	}, nil
}

func localNamespace(locals map[string]cty.Value) cty.Value {
	if len(locals) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(locals)
}

// translateRecipe evaluates a recipe block's expressions into the model.
func (l *Loader) translateRecipe(block *recipeBlock, evalCtx *hcl.EvalContext) (*config.Recipe, error) {
	recipe := &config.Recipe{
		Name:  block.Name,
		Needs: block.Needs,
	}

	if block.Description != nil {
		desc, err := evaluateString(block.Description, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: invalid description: %w", block.Name, err)
		}
		recipe.Description = desc
	}

	if block.Run != nil {
		actions, err := evaluateStringList(block.Run, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("recipe %q: invalid run list: %w", block.Name, err)
		}
		recipe.Actions = actions
	}

	return recipe, nil
}

// evaluateString evaluates an expression to a single string.
func evaluateString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", nil
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", err
	}
	return val.AsString(), nil
}

// evaluateStringList evaluates an expression to an ordered list of strings.
func evaluateStringList(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	val, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, err
	}

	var lines []string
	for it := val.ElementIterator(); it.Next(); {
		_, item := it.Element()
		if item.IsNull() {
			return nil, fmt.Errorf("run list contains a null entry")
		}
		lines = append(lines, item.AsString())
	}
	return lines, nil
}
