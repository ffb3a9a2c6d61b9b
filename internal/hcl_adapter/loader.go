// Package hcl_adapter implements config.Loader for HCL mission files.
package hcl_adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/stargridgo/internal/config"
	"github.com/vk/stargridgo/internal/ctxlog"
	"github.com/vk/stargridgo/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL mission loader.
func NewLoader() *Loader {
	return &Loader{}
}

// missionRoot decodes the top-level blocks of a mission file.
type missionRoot struct {
	Megaverse *megaverseBlock `hcl:"megaverse,block"`
	Runs      []*runBlock     `hcl:"run,block"`
}

// Load parses every mission file under path, merges the blocks into the
// format-agnostic model, and validates the result. Expressions are evaluated
// against the process environment, exposed as the `env` object.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := missionFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl mission files found at %s", path)
	}
	logger.Debug("Discovered mission files.", "count", len(files))

	evalCtx := envEvalContext(os.Environ())
	parser := hclparse.NewParser()

	model := &config.Model{Runs: make(map[string]*config.Run)}
	megaverseSeen := false

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root missionRoot
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if root.Megaverse != nil {
			if megaverseSeen {
				return nil, fmt.Errorf("duplicate megaverse block in %s", file)
			}
			megaverseSeen = true
			megaverse, err := translateMegaverse(root.Megaverse)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Megaverse = megaverse
		}

		for _, block := range root.Runs {
			if _, exists := model.Runs[block.Name]; exists {
				return nil, fmt.Errorf("duplicate run %q in %s", block.Name, file)
			}
			model.Runs[block.Name] = translateRun(block)
		}
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Mission loading complete.", "runs", len(model.Runs))
	return model, nil
}

// missionFiles resolves path to a list of mission files. A directory is
// searched recursively for .hcl files, in lexical order.
func missionFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing mission path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return fsutil.FindFilesByExtension(path, ".hcl")
}
