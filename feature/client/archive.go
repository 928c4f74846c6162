package client

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"go.uber.org/zap"
)

// PrefixResult is the unpack outcome for one archive prefix.
type PrefixResult struct {
	Prefix    string `json:"prefix"`
	Members   int    `json:"members"`
	Extracted int    `json:"extracted"`
	Errors    int    `json:"errors"`
}

// ArchiveResult is the outcome of the unpack phase.
type ArchiveResult struct {
	Archive  string         `json:"archive"`
	Opened   bool           `json:"opened"`
	Error    string         `json:"error,omitempty"`
	Prefixes []PrefixResult `json:"prefixes,omitempty"`
}

// Unpacker extracts selected prefixes of a zip archive.
type Unpacker struct {
	logger *zap.Logger
}

// NewUnpacker creates an unpacker.
func NewUnpacker(logger *zap.Logger) *Unpacker {
	return &Unpacker{logger: logger}
}

// Unpack extracts every member of archive whose name starts with one of
// prefixes into dest. Failing to open the archive ends the phase; a failing
// member is logged and the rest continue.
func (u *Unpacker) Unpack(archive, dest string, prefixes []string) ArchiveResult {
	res := ArchiveResult{Archive: archive}

	zr, err := zip.OpenReader(archive)
	if err != nil {
		res.Error = err.Error()
		u.logger.Error("Failed to open archive", zap.String("archive", archive), zap.Error(err))
		return res
	}
	defer zr.Close()
	res.Opened = true

	for _, prefix := range prefixes {
		pr := PrefixResult{Prefix: prefix}
		for _, f := range zr.File {
			if !strings.HasPrefix(f.Name, prefix) {
				continue
			}
			pr.Members++
			if err := extractMember(f, dest); err != nil {
				pr.Errors++
				u.logger.Error("Failed to extract archive member", zap.String("member", f.Name), zap.Error(err))
				continue
			}
			pr.Extracted++
		}
		res.Prefixes = append(res.Prefixes, pr)
	}
	return res
}

func extractMember(f *zip.File, dest string) error {
	target, err := safeJoin(dest, f.Name)
	if err != nil {
		return err
	}

	if f.FileInfo().IsDir() || strings.HasSuffix(f.Name, "/") {
		return os.MkdirAll(target, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// safeJoin rejects member names that would land outside dest.
func safeJoin(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	rel, err := filepath.Rel(dest, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(name) {
		return "", fmt.Errorf("illegal path in archive: %s", name)
	}
	return target, nil
}
