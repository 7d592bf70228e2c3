package config

import "context"

// Loader is the interface for a format-specific recipe book loader.
type Loader interface {
	// Load reads a recipe book from a file on disk and translates it into
	// the format-agnostic model.
	Load(ctx context.Context, path string) (*Book, error)

	// LoadBytes translates an in-memory recipe book. The filename is used
	// only for diagnostics.
	LoadBytes(ctx context.Context, filename string, src []byte) (*Book, error)
}
