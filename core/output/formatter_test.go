package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFormatter_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(&buf)
	assert.False(t, f.Color())
	assert.False(t, IsTerminal(&buf))
}

func TestPaint(t *testing.T) {
	assert.Equal(t, "text", Plain().Paint("text", Failure))
	assert.Equal(t, "\033[91m\033[1mtext\033[0m", Colored().Paint("text", Failure, Bold))
	assert.Equal(t, "text", Colored().Paint("text"))

	var nilFormatter *Formatter
	assert.Equal(t, "text", nilFormatter.Paint("text", Success))
}

func TestResult(t *testing.T) {
	t.Run("Pass With Detail", func(t *testing.T) {
		var buf bytes.Buffer
		Plain().Result(&buf, "common", true, "Path: /srv/common")
		assert.Equal(t, "✓ common: OK\n  Path: /srv/common\n", buf.String())
	})

	t.Run("Fail Without Detail", func(t *testing.T) {
		var buf bytes.Buffer
		Plain().Result(&buf, "mud", false, "")
		assert.Equal(t, "✗ mud: MISSING/FAILED\n", buf.String())
	})
}

func TestSection(t *testing.T) {
	var buf bytes.Buffer
	Plain().Section(&buf, "1. ENVIRONMENT VARIABLES")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("=", Rule), lines[0])
	assert.Equal(t, "1. ENVIRONMENT VARIABLES", lines[1])
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	Plain().Banner(&buf, "MoM Server Installation Diagnostic Tool")
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "╔"))
	assert.Contains(t, out, "MoM Server Installation Diagnostic Tool")
	assert.NotContains(t, out, "\033[")
}
