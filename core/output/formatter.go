package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Style is an ANSI SGR sequence.
type Style string

const (
	Header  Style = "\033[95m"
	Info    Style = "\033[94m"
	Success Style = "\033[92m"
	Warning Style = "\033[93m"
	Failure Style = "\033[91m"
	Bold    Style = "\033[1m"
	reset         = "\033[0m"
)

// Rule is the width of section separators.
const Rule = 70

// Formatter renders report text, colouring it only when the target is a terminal.
type Formatter struct {
	color bool
}

// NewFormatter returns a Formatter with colour enabled only for terminals.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{color: IsTerminal(w)}
}

// Plain returns a Formatter that never emits escape sequences.
func Plain() *Formatter {
	return &Formatter{}
}

// Colored returns a Formatter that always emits escape sequences.
func Colored() *Formatter {
	return &Formatter{color: true}
}

// Stdout returns a writer for standard output that understands ANSI
// sequences on Windows consoles too, with a matching Formatter.
func Stdout() (io.Writer, *Formatter) {
	f := NewFormatter(os.Stdout)
	if !f.color {
		return os.Stdout, f
	}
	return colorable.NewColorableStdout(), f
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Color reports whether escape sequences are emitted.
func (f *Formatter) Color() bool {
	return f != nil && f.color
}

// Paint wraps text in the given styles.
func (f *Formatter) Paint(text string, styles ...Style) string {
	if !f.Color() || len(styles) == 0 {
		return text
	}
	var sb strings.Builder
	for _, s := range styles {
		sb.WriteString(string(s))
	}
	sb.WriteString(text)
	sb.WriteString(reset)
	return sb.String()
}

// Mark returns the check mark for a pass/fail status.
func (f *Formatter) Mark(ok bool) string {
	if ok {
		return f.Paint("✓", Success)
	}
	return f.Paint("✗", Failure)
}

// Section prints a section header framed by rules.
func (f *Formatter) Section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", Rule))
	fmt.Fprintln(w, f.Paint(title, Header, Bold))
	fmt.Fprintln(w, strings.Repeat("=", Rule))
}

// Result prints a check line with an optional indented detail.
func (f *Formatter) Result(w io.Writer, name string, ok bool, detail string) {
	status := f.Paint("OK", Success)
	if !ok {
		status = f.Paint("MISSING/FAILED", Failure)
	}
	fmt.Fprintf(w, "%s %s: %s\n", f.Mark(ok), name, status)
	if detail != "" {
		fmt.Fprintf(w, "  %s\n", detail)
	}
}

// Banner prints a boxed title block.
func (f *Formatter) Banner(w io.Writer, lines ...string) {
	const inner = Rule
	var sb strings.Builder
	sb.WriteString("╔" + strings.Repeat("═", inner) + "╗\n")
	for _, l := range lines {
		pad := inner - 5 - len([]rune(l))
		if pad < 0 {
			pad = 0
		}
		sb.WriteString("║     " + l + strings.Repeat(" ", pad) + "║\n")
	}
	sb.WriteString("╚" + strings.Repeat("═", inner) + "╝")
	fmt.Fprintln(w, f.Paint(sb.String(), Header, Bold))
}
