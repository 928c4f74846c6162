package client

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"mom-toolkit/core/output"
)

// RenderNextSteps prints the closing report. An architecture mismatch is
// always the first thing shown.
func RenderNextSteps(w io.Writer, f *output.Formatter, res *Result) {
	f.Section(w, "SUMMARY & NEXT STEPS")

	if res.Mismatch() {
		bits := int(res.Arch.BitWidth)
		fmt.Fprintln(w, "\n"+f.Paint("⚠ CRITICAL: ARCHITECTURE MISMATCH DETECTED!", output.Failure, output.Bold))
		fmt.Fprintf(w, "\n  Your pytge is %d-bit, but Python is %d-bit\n", bits, res.HostBits)
		fmt.Fprintln(w, "\n  Zones WILL NOT START until this is fixed!")
		fmt.Fprintln(w, "\n  Choose ONE solution:")
		fmt.Fprintf(w, "\n  Option 1: Install %d-bit Python\n", bits)
		if bits == 32 {
			fmt.Fprintln(w, "    # Ubuntu/Debian")
			fmt.Fprintln(w, "    sudo dpkg --add-architecture i386")
			fmt.Fprintln(w, "    sudo apt-get install python2.7:i386")
		}
		fmt.Fprintln(w, "\n  Option 2: Use Wine (if Windows pytge)")
		fmt.Fprintln(w, "    wine python2.7 MasterServer.py gameconfig=mom.cfg")
		fmt.Fprintf(w, "\n  Option 3: Build %d-bit pytge from source\n", res.HostBits)
		fmt.Fprintln(w, "    See BUILD_TGE_FORK.md")
		fmt.Fprintln(w, "\n  Option 4: Read ARCHITECTURE_MISMATCH.md for complete guide")
	} else {
		fmt.Fprintln(w, "\n"+f.Paint("✓ Architecture appears compatible!", output.Success))
	}

	if len(res.Issues) > 0 {
		fmt.Fprintln(w, "\n"+f.Paint("ISSUES:", output.Warning))
		for _, issue := range res.Issues {
			fmt.Fprintf(w, "  - %s\n", issue)
		}
	}

	rule := strings.Repeat("=", output.Rule)
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, f.Paint("FILES EXTRACTED TO:", output.Bold))
	fmt.Fprintf(w, "  %s\n", res.Dest)

	fmt.Fprintln(w, "\n"+f.Paint("NEXT STEPS:", output.Bold))
	fmt.Fprintln(w, "\n1. Review extracted files:")
	fmt.Fprintf(w, "   ls -la %s\n", res.Dest)

	fmt.Fprintln(w, "\n2. Run diagnostic:")
	fmt.Fprintf(w, "   cd %s\n", filepath.Dir(res.Dest))
	if res.Script != "" {
		fmt.Fprintf(w, "   # Edit %s to set environment\n", filepath.Base(res.Script))
		fmt.Fprintf(w, "   source %s\n", res.Script)
	}
	fmt.Fprintln(w, "   check_installation")

	fmt.Fprintln(w, "\n3. If architecture matches, run Install.py:")
	fmt.Fprintln(w, "   python2.7 Install.py")

	fmt.Fprintln(w, "\n4. Start servers:")
	for _, srv := range []string{"MasterServer", "GMServer", "CharacterServer", "WorldManager"} {
		fmt.Fprintf(w, "   python2.7 %s.py gameconfig=mom.cfg\n", srv)
	}

	fmt.Fprintln(w, "\n5. Read documentation:")
	fmt.Fprintln(w, "   - ARCHITECTURE_MISMATCH.md (if architecture mismatched)")
	fmt.Fprintln(w, "   - MINIMAL_INSTALL.md (complete setup guide)")
	fmt.Fprintln(w, "   - BUILD_TGE_FORK.md (if need to rebuild pytge)")

	fmt.Fprintln(w, "\n"+rule+"\n")
}
