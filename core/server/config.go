package server

import (
	"path/filepath"
	"runtime"
)

// Config holds the layout of the game server tree the tools operate on.
type Config struct {
	// Root is the server tree every manifest path is relative to.
	Root string `mapstructure:"root" default:"."`
	// Family overrides the detected OS family (windows, unix).
	Family string `mapstructure:"family" default:""`
}

const (
	FamilyWindows = "windows"
	FamilyUnix    = "unix"
)

// Environment variables read (never written) by the verifier.
const (
	EnvInstallRoot = "MOM_INSTALL"
	EnvSearchPath  = "PYTHONPATH"
)

// IsValidFamily checks if the configured family override is valid.
// An empty override is valid and means "detect".
func (c Config) IsValidFamily() bool {
	switch c.Family {
	case "", FamilyWindows, FamilyUnix:
		return true
	default:
		return false
	}
}

// ResolveFamily returns the OS family, honouring the override.
func (c Config) ResolveFamily() string {
	if c.Family == FamilyWindows || c.Family == FamilyUnix {
		return c.Family
	}
	return FamilyOf(runtime.GOOS)
}

// AbsRoot returns the absolute server root, falling back to the raw value.
func (c Config) AbsRoot() string {
	root := c.Root
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return root
	}
	return abs
}

// FamilyOf maps a GOOS value to an OS family.
func FamilyOf(goos string) string {
	if goos == "windows" {
		return FamilyWindows
	}
	return FamilyUnix
}
