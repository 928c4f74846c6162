package checks

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/klauspost/compress/zip"
)

// archiveCacheSize bounds how many archive listings a Resolver keeps.
const archiveCacheSize = 16

var (
	packageMarkers   = []string{"__init__.py", "__init__.pyc", "__init__.pyo"}
	moduleExtensions = []string{".py", ".pyc", ".pyo", ".so", ".pyd"}
)

// Location is where a dotted module path was found.
type Location struct {
	// Entry is the search-path entry (directory or archive) holding the module.
	Entry string
	// Path is the module file or package directory, joined to Entry.
	Path string
	// Package is true when the final segment is a package.
	Package bool
}

// Resolver finds dotted module paths on a search path made of directories
// and zip archives, the way the game's embedded interpreter imports them.
type Resolver struct {
	searchPath []string
	archives   *lru.Cache[string, map[string]bool]
}

// NewResolver creates a resolver over the ordered search path.
func NewResolver(searchPath []string) *Resolver {
	// New only fails for a non-positive size.
	archives, _ := lru.New[string, map[string]bool](archiveCacheSize)
	return &Resolver{
		searchPath: searchPath,
		archives:   archives,
	}
}

// SearchPath builds the module search path: the server root followed by the
// entries of a PYTHONPATH-style list and any extra list.
func SearchPath(root string, lists ...string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		out = append(out, p)
	}

	add(root)
	for _, list := range lists {
		for _, p := range filepath.SplitList(list) {
			add(p)
		}
	}
	return out
}

// Entries returns the search path in order.
func (r *Resolver) Entries() []string {
	return r.searchPath
}

// Resolve locates a dotted module path. The first segment is looked up on
// the search path; every following segment must be found inside the package
// resolved so far. The error names the first segment that is absent.
func (r *Resolver) Resolve(dotted string) (Location, error) {
	parts := strings.Split(dotted, ".")
	for _, p := range parts {
		if p == "" {
			return Location{}, fmt.Errorf("invalid module name %q", dotted)
		}
	}

	for _, entry := range r.searchPath {
		fs := r.open(entry)
		if fs == nil {
			continue
		}

		isPkg, ok := lookup(fs, parts[0])
		if !ok {
			continue
		}

		for i := 1; i < len(parts); i++ {
			parent := strings.Join(parts[:i], ".")
			if !isPkg {
				return Location{}, fmt.Errorf("%s is a module, not a package", parent)
			}
			if isPkg, ok = lookup(fs, path.Join(parts[:i+1]...)); !ok {
				return Location{}, fmt.Errorf("module %s has no attribute %s", parent, parts[i])
			}
		}

		return Location{
			Entry:   entry,
			Path:    fs.describe(path.Join(parts...), isPkg),
			Package: isPkg,
		}, nil
	}

	return Location{}, fmt.Errorf("no module named %s", parts[0])
}

// lookup checks rel as a package first, then as a module file.
func lookup(fs fileSet, rel string) (isPkg bool, ok bool) {
	for _, marker := range packageMarkers {
		if fs.has(rel + "/" + marker) {
			return true, true
		}
	}
	for _, ext := range moduleExtensions {
		if fs.has(rel + ext) {
			return false, true
		}
	}
	return false, false
}

// fileSet answers existence queries with slash-separated relative names.
type fileSet interface {
	has(rel string) bool
	describe(rel string, isPkg bool) string
}

type dirSet string

func (d dirSet) has(rel string) bool {
	st, err := os.Stat(filepath.Join(string(d), filepath.FromSlash(rel)))
	return err == nil && st.Mode().IsRegular()
}

func (d dirSet) describe(rel string, isPkg bool) string {
	p := filepath.Join(string(d), filepath.FromSlash(rel))
	if isPkg {
		return p
	}
	for _, ext := range moduleExtensions {
		if d.has(rel + ext) {
			return p + ext
		}
	}
	return p
}

type zipSet struct {
	archive string
	names   map[string]bool
}

func (z zipSet) has(rel string) bool {
	return z.names[rel]
}

func (z zipSet) describe(rel string, isPkg bool) string {
	if isPkg {
		return z.archive + "/" + rel
	}
	for _, ext := range moduleExtensions {
		if z.names[rel+ext] {
			return z.archive + "/" + rel + ext
		}
	}
	return z.archive + "/" + rel
}

func (r *Resolver) open(entry string) fileSet {
	st, err := os.Stat(entry)
	if err != nil {
		return nil
	}
	if st.IsDir() {
		return dirSet(entry)
	}

	names, ok := r.archives.Get(entry)
	if !ok {
		names = readArchive(entry)
		r.archives.Add(entry, names)
	}
	if names == nil {
		return nil
	}
	return zipSet{archive: entry, names: names}
}

// readArchive lists a zip archive, or returns nil for anything unreadable.
func readArchive(file string) map[string]bool {
	zr, err := zip.OpenReader(file)
	if err != nil {
		return nil
	}
	defer zr.Close()

	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[strings.TrimPrefix(f.Name, "./")] = true
	}
	return names
}
