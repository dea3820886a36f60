// Package files locates attendance export files for a pipeline run.
package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "rollcall/internal/errors"
)

// sessionExtensions are the supported attendance export extensions.
var sessionExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// IsSessionFile reports whether the path has a supported attendance
// export extension.
func IsSessionFile(path string) bool {
	return sessionExtensions[strings.ToLower(filepath.Ext(path))]
}

// Discover resolves the input path into the ordered list of session
// files to process. A single supported file yields a one-session run; a
// directory yields every supported file in it, sorted lexicographically
// by full path so that cross-session aggregation is deterministic.
func Discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, apperrors.NewSourceError("please select a valid directory or attendance file", err)
	}

	if !info.IsDir() {
		if !IsSessionFile(path) {
			return nil, apperrors.Newf(apperrors.KindSource,
				"selected file %s is not a supported CSV/XLSX attendance export", filepath.Base(path))
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, apperrors.NewSourceError("failed to read directory", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsSessionFile(entry.Name()) {
			paths = append(paths, filepath.Join(path, entry.Name()))
		}
	}

	if len(paths) == 0 {
		return nil, apperrors.Newf(apperrors.KindSource,
			"no attendance CSV/XLSX files found in %s", path)
	}

	sort.Strings(paths)
	return paths, nil
}
