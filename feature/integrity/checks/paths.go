package checks

import (
	"fmt"
	"os"
	"path/filepath"

	"mom-toolkit/feature/manifest"
)

// LookupEnv reads an environment variable, reporting whether it is set.
type LookupEnv func(key string) (string, bool)

// CheckEnvironment reports whether each variable is set. Values are never modified.
func CheckEnvironment(entries []manifest.Entry, lookup LookupEnv) []CheckResult {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	results := make([]CheckResult, 0, len(entries))
	for _, e := range entries {
		value, ok := lookup(e.Name)
		detail := value
		if !ok {
			detail = "NOT SET"
		}
		results = append(results, CheckResult{
			Name:     e.Name,
			Category: CategoryEnvironment,
			Status:   ok,
			Critical: e.Critical,
			Detail:   detail,
		})
	}
	return results
}

// CheckDirectories reports whether each entry is a directory below root.
func CheckDirectories(root string, entries []manifest.Entry) []CheckResult {
	return checkPaths(root, entries, CategoryDirectory, true)
}

// CheckFiles reports whether each entry is a regular file below root.
func CheckFiles(root string, entries []manifest.Entry) []CheckResult {
	return checkPaths(root, entries, CategoryFile, false)
}

func checkPaths(root string, entries []manifest.Entry, category Category, wantDir bool) []CheckResult {
	results := make([]CheckResult, 0, len(entries))
	for _, e := range entries {
		path := resolve(root, e.Path)

		results = append(results, CheckResult{
			Name:     e.Name,
			Category: category,
			Status:   isKind(path, wantDir),
			Critical: e.Critical,
			Detail:   fmt.Sprintf("Path: %s | Source: %s", path, e.Source),
			Path:     path,
		})
	}
	return results
}

// isKind never fails: any stat error counts as absence.
func isKind(path string, wantDir bool) bool {
	st, err := os.Stat(path)
	if err != nil {
		return false
	}
	if wantDir {
		return st.IsDir()
	}
	return st.Mode().IsRegular()
}

func resolve(root, rel string) string {
	path := filepath.Join(root, filepath.FromSlash(rel))
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
