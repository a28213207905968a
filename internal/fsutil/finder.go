// Package fsutil provides file system helpers for locating plan files.
package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtension returns every file under root whose name ends with
// extension, sorted by path. root may also name a single file, which is
// returned as-is when it matches. Directories starting with a dot are
// skipped.
func FindFilesByExtension(root, extension string) ([]string, error) {
	if extension == "" {
		return nil, errors.New("fsutil: extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), extension) {
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
