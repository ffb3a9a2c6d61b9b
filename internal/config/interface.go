package config

import "context"

// Loader is the interface for a format-specific mission loader.
type Loader interface {
	// Load reads a mission from the given path, which may be a single file or
	// a directory of mission files, and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}
