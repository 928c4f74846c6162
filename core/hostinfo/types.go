package hostinfo

import "context"

// Info describes the machine the tools run on.
type Info struct {
	// OS is runtime.GOOS.
	OS string
	// Arch is runtime.GOARCH.
	Arch string
	// Bits is the word size of the running interpreter (32 or 64).
	Bits int
	// KernelArch is the kernel's machine string (x86_64, i686, ...), empty if unknown.
	KernelArch string
	// Hostname identifies the machine in published reports.
	Hostname string
	// Platform and Version describe the distribution or Windows edition.
	Platform string
	Version  string
}

// Detector reports information about the current host.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
