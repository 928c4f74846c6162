package checks

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"mom-toolkit/feature/manifest"
)

// ContentCount is the result of counting game-content files in a directory.
type ContentCount struct {
	DirExists bool     `json:"dir_exists"`
	Files     []string `json:"files"`
}

// CountContent lists the files in dir ending with suffix, sorted by name.
// A missing directory and an empty match are distinct outcomes.
func CountContent(dir, suffix string) ContentCount {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ContentCount{}
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	return ContentCount{DirExists: true, Files: files}
}

// CheckContent probes the game-content tree below root.
func CheckContent(root string, c manifest.Content) CheckResult {
	dir := resolve(root, c.Path)
	name := c.Name
	if name == "" {
		name = fmt.Sprintf("Content files (%s)", c.Suffix)
	}

	res := CheckResult{
		Name:     name,
		Category: CategoryContent,
		Critical: c.Critical,
		Path:     dir,
	}

	count := CountContent(dir, c.Suffix)
	switch {
	case !count.DirExists:
		res.Detail = fmt.Sprintf("%s does not exist", dir)
	case len(count.Files) == 0:
		res.Detail = fmt.Sprintf("No %s files found in %s", c.Suffix, dir)
	default:
		res.Status = true
		res.Count = len(count.Files)
		res.Detail = fmt.Sprintf("%d files found: %s", res.Count, preview(count.Files, 5))
	}
	return res
}

func preview(files []string, n int) string {
	if len(files) <= n {
		return strings.Join(files, ", ")
	}
	return strings.Join(files[:n], ", ") + ", ..."
}
