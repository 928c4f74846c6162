package client

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"mom-toolkit/feature/manifest"

	"go.uber.org/zap"
)

// Outcome is the result of extracting one manifest item.
type Outcome string

const (
	OutcomeCopied Outcome = "copied"
	OutcomeFailed Outcome = "failed"
	// OutcomeAbsent marks an optional item missing from the client.
	OutcomeAbsent Outcome = "absent"
)

// ItemResult records what happened to one file or directory.
type ItemResult struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Dir         bool    `json:"dir"`
	Critical    bool    `json:"critical"`
	Outcome     Outcome `json:"outcome"`
	Error       string  `json:"error,omitempty"`
}

// Copier copies the manifest items from a client into a destination tree.
type Copier struct {
	logger *zap.Logger
}

// NewCopier creates a copier.
func NewCopier(logger *zap.Logger) *Copier {
	return &Copier{logger: logger}
}

// CopyFiles copies each file entry. Missing sources are absent, copy errors
// are recorded and the batch continues.
func (c *Copier) CopyFiles(src, dest string, entries []manifest.Entry) []ItemResult {
	results := make([]ItemResult, 0, len(entries))
	for _, e := range entries {
		res := ItemResult{Name: e.Name, Description: e.Description, Critical: e.Critical}
		from := filepath.Join(src, filepath.FromSlash(e.Path))
		to := filepath.Join(dest, filepath.FromSlash(e.Path))

		if _, err := os.Stat(from); errors.Is(err, fs.ErrNotExist) {
			res.Outcome = OutcomeAbsent
			results = append(results, res)
			continue
		}

		if err := copyFile(from, to); err != nil {
			c.logger.Error("Failed to copy file", zap.String("file", e.Name), zap.Error(err))
			res.Outcome = OutcomeFailed
			res.Error = err.Error()
		} else {
			res.Outcome = OutcomeCopied
		}
		results = append(results, res)
	}
	return results
}

// CopyDirs replaces each destination directory with a copy of the source.
// An existing destination is removed first without confirmation. A missing
// source directory is a failure, not an absence.
func (c *Copier) CopyDirs(src, dest string, entries []manifest.Entry) []ItemResult {
	results := make([]ItemResult, 0, len(entries))
	for _, e := range entries {
		res := ItemResult{Name: e.Name, Description: e.Description, Dir: true, Critical: e.Critical}
		from := filepath.Join(src, filepath.FromSlash(e.Path))
		to := filepath.Join(dest, filepath.FromSlash(e.Path))

		if st, err := os.Stat(from); err != nil || !st.IsDir() {
			res.Outcome = OutcomeFailed
			res.Error = "not found"
			c.logger.Error("Required directory missing from client", zap.String("dir", e.Name), zap.String("path", from))
			results = append(results, res)
			continue
		}

		if err := c.replaceTree(from, to); err != nil {
			c.logger.Error("Failed to copy directory", zap.String("dir", e.Name), zap.Error(err))
			res.Outcome = OutcomeFailed
			res.Error = err.Error()
		} else {
			res.Outcome = OutcomeCopied
		}
		results = append(results, res)
	}
	return results
}

func (c *Copier) replaceTree(from, to string) error {
	if _, err := os.Lstat(to); err == nil {
		c.logger.Info("Removing existing directory", zap.String("path", to))
		if err := os.RemoveAll(to); err != nil {
			return fmt.Errorf("failed to remove %s: %w", to, err)
		}
	}
	return copyTree(from, to)
}

// copyFile copies contents, permission bits and modification time.
func copyFile(from, to string) error {
	in, err := os.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()

	st, err := in.Stat()
	if err != nil {
		return err
	}
	if st.IsDir() {
		return fmt.Errorf("%s is a directory", from)
	}

	if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return err
	}

	out, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, st.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chtimes(to, st.ModTime(), st.ModTime())
}

// copyTree copies a directory recursively, following symlinks. A link that
// leads back into a directory being copied is an error.
func copyTree(from, to string) error {
	return walkTree(from, to, map[string]bool{})
}

func walkTree(from, to string, active map[string]bool) error {
	resolved, err := filepath.EvalSymlinks(from)
	if err != nil {
		return err
	}
	if resolved, err = filepath.Abs(resolved); err != nil {
		return err
	}
	if active[resolved] {
		return fmt.Errorf("symlink cycle at %s", from)
	}
	active[resolved] = true
	defer delete(active, resolved)

	return filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(resolved, path)
		if err != nil {
			return err
		}
		target := filepath.Join(to, rel)

		if d.Type()&fs.ModeSymlink != 0 {
			st, err := os.Stat(path)
			if err != nil {
				return err
			}
			if st.IsDir() {
				return walkTree(path, target, active)
			}
			return copyFile(path, target)
		}

		if d.IsDir() {
			st, err := d.Info()
			if err != nil {
				return err
			}
			return os.MkdirAll(target, st.Mode().Perm()|0700)
		}
		return copyFile(path, target)
	})
}
