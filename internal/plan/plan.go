// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package plan

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/xrdcollect/internal/ctxlog"
	"github.com/specialistvlad/xrdcollect/internal/fsutil"
	"github.com/specialistvlad/xrdcollect/internal/model"
)

// Extension is the file suffix of plan files.
const Extension = ".hcl"

// Plan is the decoded content of one or more plan files, in file order.
type Plan struct {
	Setups []*SetupSpec
	Points []*PointSpec
}

// SetupSpec is a declared experiment setup.
type SetupSpec struct {
	Name          string
	Params        model.SetupParams
	FSInformation *FSInfo
}

// PointSpec is a declared sample point. StepScan and WideScan hold setup
// references, either names or identifiers such as `setup[0]`.
type PointSpec struct {
	Name          string
	X             float64
	Y             float64
	Z             float64
	StepScan      []string
	WideScan      []string
	FSInformation *FSInfo
}

// parsedFile pairs a parsed HCL file with the path it was read from.
type parsedFile struct {
	path string
	file *hcl.File
}

// LoadRecursively finds every plan file under the given paths and decodes
// them into a single Plan.
func LoadRecursively(ctx context.Context, paths ...string) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	var files []parsedFile
	seen := make(map[string]bool)
	for _, root := range paths {
		logger.Debug("Loading plan from path", "path", root)

		found, err := fsutil.FindFilesByExtension(root, Extension)
		if err != nil {
			return nil, fmt.Errorf("failed to find plan files in %s: %w", root, err)
		}
		if len(found) == 0 {
			logger.Warn("No plan files found in path", "path", root)
			continue
		}

		for _, path := range found {
			key := path
			if abs, err := filepath.Abs(path); err == nil {
				key = abs
			}
			if seen[key] {
				logger.Debug("Skipping plan file already loaded", "path", path)
				continue
			}
			seen[key] = true

			hclFile, diags := parser.ParseHCLFile(path)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse plan file %s: %w", path, diags)
			}
			files = append(files, parsedFile{path: path, file: hclFile})
		}
	}

	p, err := decodeFiles(files)
	if err != nil {
		return nil, err
	}

	logger.Info("Plan loaded.", "files", len(files), "setups", len(p.Setups), "points", len(p.Points))
	return p, nil
}

// Parse decodes a single plan from source. filename is only used in
// diagnostics.
func Parse(filename string, src []byte) (*Plan, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", filename, diags)
	}
	return decodeFiles([]parsedFile{{path: filename, file: hclFile}})
}
