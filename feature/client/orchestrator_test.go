package client

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mom-toolkit/core/hostinfo"
	"mom-toolkit/core/output"
	"mom-toolkit/core/prompt"
	"mom-toolkit/feature/arch"
	"mom-toolkit/feature/manifest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrchestrator(t *testing.T, candidates []string, input string, cfg Config, out *bytes.Buffer) *Orchestrator {
	t.Helper()
	m, err := manifest.Default()
	require.NoError(t, err)

	return NewOrchestrator(Options{
		Manifest:    m,
		Config:      cfg,
		Family:      "unix",
		Host:        &hostinfo.Info{OS: "linux", Arch: "amd64", Bits: 64},
		Candidates:  candidates,
		DefaultDest: filepath.Join(t.TempDir(), "mom_extracted"),
		Prompter:    prompt.New(strings.NewReader(input), out),
		Out:         out,
		Formatter:   output.Plain(),
		Logger:      zap.NewNop(),
	})
}

func TestOrchestrator_FullRun(t *testing.T) {
	src := fakeClient(t, 3)
	dest := filepath.Join(t.TempDir(), "mom_extracted")
	var out bytes.Buffer

	res, err := newOrchestrator(t, []string{src}, "", Config{Dest: dest}, &out).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Phase{
		PhaseInit, PhaseLocating, PhaseLocated, PhaseClassifyingArch, PhaseAwaitingDestination,
		PhaseCopyingFiles, PhaseUnpackingArchive, PhaseVerifyingContent, PhaseGeneratingScript, PhaseDone,
	}, res.Phases)

	assert.Equal(t, src, res.Source)
	assert.Equal(t, dest, res.Dest)

	require.NotNil(t, res.Arch)
	assert.Equal(t, arch.Bits32, res.Arch.BitWidth)
	assert.Equal(t, arch.PlatformWindows, res.Arch.Platform)
	assert.True(t, res.Mismatch())

	outcomes := map[string]Outcome{}
	for _, item := range res.Items {
		outcomes[item.Name] = item.Outcome
	}
	assert.Equal(t, OutcomeCopied, outcomes["pytge.pyd"])
	assert.Equal(t, OutcomeAbsent, outcomes["pytge.so"])
	assert.Equal(t, OutcomeCopied, outcomes["common"])
	assert.Equal(t, OutcomeCopied, outcomes["minions.of.mirth"])

	assert.True(t, res.Archive.Opened)
	assert.FileExists(t, filepath.Join(dest, "mud", "world", "zone.pyo"))
	assert.FileExists(t, filepath.Join(dest, "sqlobject", "__init__.pyo"))
	assert.NoDirExists(t, filepath.Join(dest, "encodings"))

	assert.True(t, res.Content.DirExists)
	assert.Len(t, res.Content.Files, 3)

	assert.Equal(t, filepath.Join(filepath.Dir(dest), "launch_server.sh"), res.Script)
	assert.FileExists(t, res.Script)
	assert.Empty(t, res.Issues)

	text := out.String()
	mismatch := strings.Index(text, "CRITICAL: ARCHITECTURE MISMATCH DETECTED")
	summary := strings.Index(text, "SUMMARY & NEXT STEPS")
	require.NotEqual(t, -1, mismatch)
	assert.Greater(t, mismatch, summary)
	assert.Less(t, mismatch, strings.Index(text, "FILES EXTRACTED TO"))
	assert.Contains(t, text, "sudo apt-get install python2.7:i386")
}

func TestOrchestrator_HostBitsOverride(t *testing.T) {
	src := fakeClient(t, 1)
	var out bytes.Buffer

	res, err := newOrchestrator(t, []string{src}, "", Config{Dest: filepath.Join(t.TempDir(), "d"), HostBits: 32}, &out).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 32, res.HostBits)
	assert.False(t, res.Mismatch())
	assert.Contains(t, out.String(), "Architecture appears compatible")
}

func TestOrchestrator_ManualPathAndDefaultDestination(t *testing.T) {
	src := fakeClient(t, 2)
	var out bytes.Buffer

	o := newOrchestrator(t, []string{filepath.Join(t.TempDir(), "nope")}, fmt.Sprintf("%q\n\n", src), Config{}, &out)
	res, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []Phase{PhaseInit, PhaseLocating, PhaseNotFound, PhaseManualPathPrompt, PhaseClassifyingArch}, res.Phases[:5])
	assert.Equal(t, PhaseDone, res.Phases[len(res.Phases)-1])
	assert.Equal(t, src, res.Source, "surrounding quotes are stripped")
	assert.Equal(t, o.defaultDest, res.Dest)
	assert.Contains(t, out.String(), "Enter path to MoM client installation: ")
}

func TestOrchestrator_ManualPathMissing(t *testing.T) {
	var out bytes.Buffer
	missing := filepath.Join(t.TempDir(), "nope")

	res, err := newOrchestrator(t, nil, missing+"\n", Config{}, &out).Run(context.Background())

	assert.ErrorIs(t, err, ErrInstallationNotFound)
	assert.NotContains(t, res.Phases, PhaseDone)
	assert.Contains(t, out.String(), "Path does not exist!")
}

func TestOrchestrator_DamagedClientStillCompletes(t *testing.T) {
	src := t.TempDir()
	touch(t, src, "main.cs.dso")
	require.NoError(t, os.WriteFile(filepath.Join(src, "library.zip"), []byte("corrupt"), 0644))
	var out bytes.Buffer

	res, err := newOrchestrator(t, []string{src}, "", Config{Dest: filepath.Join(t.TempDir(), "d")}, &out).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, PhaseDone, res.Phases[len(res.Phases)-1])
	assert.Nil(t, res.Arch)
	assert.False(t, res.Archive.Opened)
	assert.False(t, res.Content.DirExists)
	assert.NotEmpty(t, res.Script)

	issues := strings.Join(res.Issues, "\n")
	assert.Contains(t, issues, "pytge binary not found")
	assert.Contains(t, issues, "CRITICAL: common could not be extracted")
	assert.Contains(t, issues, "CRITICAL: minions.of.mirth could not be extracted")
	assert.Contains(t, issues, "library.zip could not be opened")
	assert.Contains(t, out.String(), "common - Not found (CRITICAL!)")
}

func TestMissionListing(t *testing.T) {
	var files []string
	for i := 0; i < 12; i++ {
		files = append(files, fmt.Sprintf("zone%02d.mis", i))
	}

	listing := MissionListing(files)

	assert.Equal(t, 11, strings.Count(listing, "\n"))
	assert.Contains(t, listing, "  - zone09.mis\n")
	assert.NotContains(t, listing, "zone10.mis")
	assert.True(t, strings.HasSuffix(listing, "  ... and 2 more\n"))

	assert.Equal(t, "  - a.mis\n", MissionListing([]string{"a.mis"}))
}
