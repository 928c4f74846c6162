package checks

import (
	"fmt"
	"os"
	"path/filepath"

	"mom-toolkit/feature/manifest"
)

// CheckModules resolves each module entry on the resolver's search path.
func CheckModules(r *Resolver, entries []manifest.Entry) []CheckResult {
	results := make([]CheckResult, 0, len(entries))
	for _, e := range entries {
		res := CheckResult{
			Name:     e.Name,
			Category: CategoryModule,
			Critical: e.Critical,
		}

		loc, err := r.Resolve(e.Name)
		if err != nil {
			res.Detail = err.Error()
			if e.Description != "" {
				res.Detail = fmt.Sprintf("%s - %v", e.Description, err)
			}
		} else {
			res.Status = true
			res.Path = loc.Path
			res.Detail = "Found at: " + loc.Path
		}
		results = append(results, res)
	}
	return results
}

// CheckSubmodules resolves every dotted submodule of the parent package.
// When the parent does not resolve, each entry is reported as skipped.
func CheckSubmodules(r *Resolver, sub manifest.Submodules) []CheckResult {
	results := make([]CheckResult, 0, len(sub.Entries))

	_, parentErr := r.Resolve(sub.Parent)
	for _, e := range sub.Entries {
		res := CheckResult{
			Name:     e.Name,
			Category: CategorySubmodule,
			Critical: e.Critical,
		}

		if parentErr != nil {
			res.Skipped = true
			res.Detail = fmt.Sprintf("unavailable: parent module %s missing", sub.Parent)
			results = append(results, res)
			continue
		}

		loc, err := r.Resolve(e.Name)
		if err != nil {
			res.Detail = err.Error()
		} else {
			res.Status = true
			res.Path = loc.Path
			res.Detail = e.Description
		}
		results = append(results, res)
	}
	return results
}

// CheckBinaries searches the ordered search path for each native binary and
// reports the first match with its size.
func CheckBinaries(searchPath []string, bins manifest.Binaries, family string) []CheckResult {
	names := bins.For(family)
	results := make([]CheckResult, 0, len(names))

	for _, name := range names {
		res := CheckResult{Name: name, Category: CategoryBinary}

		for _, dir := range searchPath {
			candidate := filepath.Join(dir, name)
			st, err := os.Stat(candidate)
			if err != nil || st.IsDir() {
				continue
			}
			res.Status = true
			res.Path = candidate
			res.Size = st.Size()
			res.Detail = fmt.Sprintf("Found at: %s (%d bytes)", candidate, st.Size())
			break
		}

		if !res.Status {
			res.Detail = "Not found in PYTHONPATH"
			if family != "windows" && bins.Hint != "" {
				res.Detail += "; " + bins.Hint
			}
		}
		results = append(results, res)
	}
	return results
}
