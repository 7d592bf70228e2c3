// Package config defines the format-agnostic recipe model for the
// application, along with the Loader interface for reading a recipe book
// from a concrete syntax. The `config.Book` is the single source of truth
// for the `dag` and `executor` packages. Concrete implementations of the
// Loader, such as for HCL, are provided in separate packages.
package config
