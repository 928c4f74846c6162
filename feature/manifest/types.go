package manifest

// Entry is one expected artifact: an environment variable, a path or a module.
type Entry struct {
	Name        string `yaml:"name" json:"name"`
	Path        string `yaml:"path" json:"path,omitempty"`
	Description string `yaml:"description" json:"description,omitempty"`
	Critical    bool   `yaml:"critical" json:"critical"`
	Source      string `yaml:"source" json:"source,omitempty"`
}

// Modules splits importable modules into third-party and game groups.
type Modules struct {
	Standard []Entry `yaml:"standard"`
	Game     []Entry `yaml:"game"`
}

// Submodules lists dotted paths resolved below Parent.
type Submodules struct {
	Parent  string  `yaml:"parent"`
	Entries []Entry `yaml:"entries"`
}

// Binaries lists the native modules per OS family.
type Binaries struct {
	Windows []string `yaml:"windows"`
	Unix    []string `yaml:"unix"`
	// Hint is shown when a binary is missing on a Unix host.
	Hint string `yaml:"hint"`
}

// For returns the binary names expected on the given OS family.
func (b Binaries) For(family string) []string {
	if family == "windows" {
		return b.Windows
	}
	return b.Unix
}

// Content describes the game-content tree and the suffix counted in it.
type Content struct {
	Name     string `yaml:"name"`
	Path     string `yaml:"path"`
	Suffix   string `yaml:"suffix"`
	Critical bool   `yaml:"critical"`
}

// Archive names the bundled module archive and the prefixes unpacked from it.
type Archive struct {
	Name     string   `yaml:"name"`
	Prefixes []string `yaml:"prefixes"`
}

// Candidates are well-known client installation directories per OS family.
// Entries may reference environment variables as ${Name} and the home
// directory as a leading ~.
type Candidates struct {
	Windows []string `yaml:"windows"`
	Unix    []string `yaml:"unix"`
}

// For returns the candidate templates for the given OS family.
func (c Candidates) For(family string) []string {
	if family == "windows" {
		return c.Windows
	}
	return c.Unix
}

// Client describes a client installation and what is taken from it.
type Client struct {
	Markers      []string   `yaml:"markers"`
	ArchBinaries []string   `yaml:"arch_binaries"`
	Files        []Entry    `yaml:"files"`
	Directories  []Entry    `yaml:"directories"`
	Archive      Archive    `yaml:"archive"`
	Candidates   Candidates `yaml:"candidates"`
}

// Manifest is the full declarative table both tools work from.
type Manifest struct {
	Environment    []Entry    `yaml:"environment"`
	Directories    []Entry    `yaml:"directories"`
	Files          []Entry    `yaml:"files"`
	Modules        Modules    `yaml:"modules"`
	Submodules     Submodules `yaml:"submodules"`
	Binaries       Binaries   `yaml:"binaries"`
	Content        Content    `yaml:"content"`
	Databases      []Entry    `yaml:"databases"`
	InstallMarkers []string   `yaml:"install_markers"`
	Client         Client     `yaml:"client"`
}

// CriticalDirectories counts directories whose absence blocks the verdict.
func (m *Manifest) CriticalDirectories() int {
	n := 0
	for _, d := range m.Directories {
		if d.Critical {
			n++
		}
	}
	return n
}
