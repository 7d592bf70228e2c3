// Package hclbook is the HCL-specific implementation of the config.Loader
// interface. It parses a recipe book written as `recipe` blocks, with an
// optional `locals` block whose values may be interpolated into action
// lines and descriptions.
package hclbook
