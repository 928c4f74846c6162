package checks

import (
	"fmt"
	"os"

	"mom-toolkit/core/database"
	"mom-toolkit/feature/manifest"
)

// CheckDatabases reports each database file with its size. With
// cfg.Inspect set, present files are opened read-only and their tables
// counted; an unreadable file is noted in the detail but still counts as present.
func CheckDatabases(root string, entries []manifest.Entry, cfg database.Config) []CheckResult {
	results := make([]CheckResult, 0, len(entries))
	for _, e := range entries {
		path := resolve(root, e.Path)
		res := CheckResult{
			Name:     e.Name,
			Category: CategoryDatabase,
			Critical: e.Critical,
			Path:     path,
		}

		st, err := os.Stat(path)
		if err != nil || st.IsDir() {
			res.Detail = fmt.Sprintf("%s - %s", e.Path, e.Source)
			results = append(results, res)
			continue
		}

		res.Status = true
		res.Size = st.Size()
		res.Detail = fmt.Sprintf("%s (%d bytes)", e.Path, st.Size())
		if cfg.Inspect {
			res.Detail += ", " + inspect(path, cfg)
		}
		results = append(results, res)
	}
	return results
}

func inspect(path string, cfg database.Config) string {
	db, err := database.Open(path, cfg)
	if err != nil {
		return fmt.Sprintf("not readable as SQLite: %v", err)
	}
	defer database.Close(db)

	tables, err := database.ListTables(db)
	if err != nil {
		return fmt.Sprintf("not readable as SQLite: %v", err)
	}
	return fmt.Sprintf("%d tables", len(tables))
}
