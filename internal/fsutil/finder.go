// Package fsutil provides file system helpers for mission discovery.
package fsutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files
// ending with the specified extension. Paths come back in lexical order so
// callers merge configuration deterministically.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if !strings.HasPrefix(extension, ".") {
		return nil, fmt.Errorf("extension must start with a dot, got %q", extension)
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
