package arch

import "fmt"

// BitWidth is the word size a native binary was built for.
type BitWidth int

const (
	BitsUnknown BitWidth = 0
	Bits32      BitWidth = 32
	Bits64      BitWidth = 64
)

func (b BitWidth) String() string {
	if b == BitsUnknown {
		return "unknown"
	}
	return fmt.Sprintf("%d-bit", int(b))
}

// Known reports whether the width was determined.
func (b BitWidth) Known() bool {
	return b == Bits32 || b == Bits64
}

// Platform is the binary format family. The zero value is PlatformUnknown.
type Platform string

const (
	PlatformUnknown Platform = ""
	PlatformWindows Platform = "Windows"
	PlatformUnix    Platform = "Unix"
)

const unknownPlatform = "unknown"

func (p Platform) String() string {
	if p == PlatformUnknown {
		return unknownPlatform
	}
	return string(p)
}

// MarshalText renders PlatformUnknown as "unknown".
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts the values MarshalText produces.
func (p *Platform) UnmarshalText(text []byte) error {
	if s := string(text); s != unknownPlatform {
		*p = Platform(s)
		return nil
	}
	*p = PlatformUnknown
	return nil
}

// Info is the classification of a single binary.
type Info struct {
	BinaryPath string   `json:"binary_path"`
	BitWidth   BitWidth `json:"bit_width"`
	Platform   Platform `json:"platform"`
	// Machine is the raw machine field for PE and ELF headers.
	Machine uint16 `json:"machine,omitempty"`
	// Detail explains an unknown classification.
	Detail string `json:"detail,omitempty"`
}

// Mismatch reports whether the binary cannot be loaded by an interpreter of
// hostBits width. Unknown widths never mismatch.
func (i Info) Mismatch(hostBits int) bool {
	return i.BitWidth.Known() && int(i.BitWidth) != hostBits
}

func (i Info) String() string {
	if !i.BitWidth.Known() {
		return "unknown architecture"
	}
	return fmt.Sprintf("%s %s", i.BitWidth, i.Platform)
}
