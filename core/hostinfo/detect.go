package hostinfo

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using gopsutil.
type RealDetector struct {
	// BitsOverride replaces the detected word size when it is 32 or 64.
	BitsOverride int
}

// NewDetector creates a host detector. bitsOverride of 0 means "detect".
func NewDetector(bitsOverride int) Detector {
	return &RealDetector{BitsOverride: bitsOverride}
}

// Detect returns the host description. Only OS, Arch and Bits are
// guaranteed; gopsutil lookups that fail leave their fields empty.
// A cancelled context is the only error.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
		Bits: strconv.IntSize,
	}
	if d.BitsOverride == 32 || d.BitsOverride == 64 {
		info.Bits = d.BitsOverride
	}

	if kernelArch, err := host.KernelArch(); err == nil {
		info.KernelArch = kernelArch
	}

	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil && ctx.Err() != nil {
		return nil, fmt.Errorf("host detection cancelled: %w", ctx.Err())
	}
	if err == nil {
		info.Platform = platform
		info.Version = version
	}

	info.Hostname = hostname(ctx)

	return info, nil
}

func hostname(ctx context.Context) string {
	if stat, err := host.InfoWithContext(ctx); err == nil && stat.Hostname != "" {
		return stat.Hostname
	}
	if name, err := os.Hostname(); err == nil && name != "" {
		return name
	}
	return "unknown-host"
}

// Describe renders "64-bit linux/amd64 (x86_64)" style summaries.
func (i *Info) Describe() string {
	s := fmt.Sprintf("%d-bit %s/%s", i.Bits, i.OS, i.Arch)
	if i.KernelArch != "" {
		s += " (" + i.KernelArch + ")"
	}
	return s
}
