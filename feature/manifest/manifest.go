package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"mom-toolkit/core/server"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var defaultManifest []byte

// Default returns the built-in manifest.
func Default() (*Manifest, error) {
	return Parse(defaultManifest)
}

// Load reads the manifest at path, or the built-in one when path is empty.
func Load(path string) (*Manifest, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate reports every structural problem of the manifest at once.
func (m *Manifest) Validate() error {
	var errs []error

	named := map[string][]Entry{
		"environment":        m.Environment,
		"directories":        m.Directories,
		"files":              m.Files,
		"modules.standard":   m.Modules.Standard,
		"modules.game":       m.Modules.Game,
		"submodules.entries": m.Submodules.Entries,
		"databases":          m.Databases,
		"client.files":       m.Client.Files,
		"client.directories": m.Client.Directories,
	}
	for section, entries := range named {
		for i, e := range entries {
			if e.Name == "" {
				errs = append(errs, fmt.Errorf("%s[%d]: name is required", section, i))
			}
		}
	}

	for section, entries := range map[string][]Entry{
		"directories":        m.Directories,
		"files":              m.Files,
		"databases":          m.Databases,
		"client.files":       m.Client.Files,
		"client.directories": m.Client.Directories,
	} {
		for _, e := range entries {
			if e.Path == "" {
				errs = append(errs, fmt.Errorf("%s %q: path is required", section, e.Name))
			}
		}
	}

	for _, e := range m.Submodules.Entries {
		if m.Submodules.Parent != "" && !strings.HasPrefix(e.Name, m.Submodules.Parent+".") {
			errs = append(errs, fmt.Errorf("submodule %q is not below %q", e.Name, m.Submodules.Parent))
		}
	}

	// The install root and search path are checked on every run.
	for _, name := range []string{server.EnvInstallRoot, server.EnvSearchPath} {
		if !m.criticalEnv(name) {
			errs = append(errs, fmt.Errorf("environment %q: must be listed and critical", name))
		}
	}

	if m.Content.Path == "" || m.Content.Suffix == "" {
		errs = append(errs, errors.New("content: path and suffix are required"))
	}
	if len(m.Client.Markers) == 0 {
		errs = append(errs, errors.New("client.markers: at least one marker is required"))
	}
	if m.Client.Archive.Name != "" && len(m.Client.Archive.Prefixes) == 0 {
		errs = append(errs, errors.New("client.archive: prefixes are required"))
	}

	return errors.Join(errs...)
}

func (m *Manifest) criticalEnv(name string) bool {
	for _, e := range m.Environment {
		if e.Name == name {
			return e.Critical
		}
	}
	return false
}
