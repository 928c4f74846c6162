package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mom-toolkit/core/hostinfo"
	"mom-toolkit/core/output"
	"mom-toolkit/core/prompt"
	"mom-toolkit/feature/arch"
	"mom-toolkit/feature/integrity/checks"
	"mom-toolkit/feature/manifest"

	"go.uber.org/zap"
)

// Phase is a state of the extraction run. Phases only move forward.
type Phase string

const (
	PhaseInit                Phase = "Init"
	PhaseLocating            Phase = "Locating"
	PhaseLocated             Phase = "Located"
	PhaseNotFound            Phase = "NotFound"
	PhaseManualPathPrompt    Phase = "ManualPathPrompt"
	PhaseClassifyingArch     Phase = "ClassifyingArch"
	PhaseAwaitingDestination Phase = "AwaitingDestination"
	PhaseCopyingFiles        Phase = "CopyingFiles"
	PhaseUnpackingArchive    Phase = "UnpackingArchive"
	PhaseVerifyingContent    Phase = "VerifyingContent"
	PhaseGeneratingScript    Phase = "GeneratingScript"
	PhaseDone                Phase = "Done"
)

// ErrInstallationNotFound is returned when the manually entered client path does not exist.
var ErrInstallationNotFound = errors.New("installation path does not exist")

// missionPreview is how many mission names are listed after content verification.
const missionPreview = 10

// Result accumulates everything an extraction run did.
type Result struct {
	Phases   []Phase             `json:"phases"`
	Source   string              `json:"source"`
	Dest     string              `json:"dest"`
	Arch     *arch.Info          `json:"arch,omitempty"`
	HostBits int                 `json:"host_bits"`
	Items    []ItemResult        `json:"items"`
	Archive  ArchiveResult       `json:"archive"`
	Content  checks.ContentCount `json:"content"`
	Script   string              `json:"script,omitempty"`
	Issues   []string            `json:"issues,omitempty"`
}

// Mismatch reports whether the client binary cannot load in the host interpreter.
func (r *Result) Mismatch() bool {
	return r.Arch != nil && r.Arch.Mismatch(r.HostBits)
}

// Orchestrator sequences the extraction phases.
type Orchestrator struct {
	manifest    *manifest.Manifest
	cfg         Config
	family      string
	host        *hostinfo.Info
	candidates  []string
	defaultDest string
	prompter    prompt.Prompter
	out         io.Writer
	f           *output.Formatter
	logger      *zap.Logger

	result *Result
}

// Options wires an Orchestrator.
type Options struct {
	Manifest    *manifest.Manifest
	Config      Config
	Family      string
	Host        *hostinfo.Info
	Candidates  []string
	DefaultDest string
	Prompter    prompt.Prompter
	Out         io.Writer
	Formatter   *output.Formatter
	Logger      *zap.Logger
}

// NewOrchestrator creates an orchestrator from opts.
func NewOrchestrator(opts Options) *Orchestrator {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	f := opts.Formatter
	if f == nil {
		f = output.Plain()
	}
	return &Orchestrator{
		manifest:    opts.Manifest,
		cfg:         opts.Config,
		family:      opts.Family,
		host:        opts.Host,
		candidates:  opts.Candidates,
		defaultDest: opts.DefaultDest,
		prompter:    opts.Prompter,
		out:         opts.Out,
		f:           f,
		logger:      logger,
	}
}

func (o *Orchestrator) enter(p Phase) {
	o.result.Phases = append(o.result.Phases, p)
	o.logger.Debug("Extraction phase", zap.String("phase", string(p)))
}

func (o *Orchestrator) issue(format string, args ...any) {
	o.result.Issues = append(o.result.Issues, fmt.Sprintf(format, args...))
}

// Run executes every phase in order. Phase failures are recorded on the
// result; an error is returned only when no installation can be used, when
// the operator input cannot be read or when ctx is cancelled.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	o.result = &Result{HostBits: o.hostBits()}
	res := o.result
	o.enter(PhaseInit)

	o.f.Banner(o.out,
		"MoM Server Files Extraction Tool",
		"Extract everything from your MoM client installation",
	)

	// 1. Locate the client
	src, err := o.locate()
	if err != nil {
		return res, err
	}
	res.Source = src
	fmt.Fprintln(o.out, "\n"+o.f.Paint("Using MoM installation:", output.Success))
	fmt.Fprintf(o.out, "  %s\n", src)

	// 2. Classify the native binary
	if err := ctx.Err(); err != nil {
		return res, err
	}
	o.enter(PhaseClassifyingArch)
	o.classify()

	// 3. Destination
	o.enter(PhaseAwaitingDestination)
	dest, err := o.destination()
	if err != nil {
		return res, err
	}
	res.Dest = dest

	// 4. Copy manifest items
	if err := ctx.Err(); err != nil {
		return res, err
	}
	o.enter(PhaseCopyingFiles)
	o.copyItems()

	// 5. Unpack bundled modules
	o.enter(PhaseUnpackingArchive)
	o.unpack()

	// 6. Verify content
	o.enter(PhaseVerifyingContent)
	o.verifyContent()

	// 7. Launch script
	o.enter(PhaseGeneratingScript)
	o.generateScript()

	o.enter(PhaseDone)
	RenderNextSteps(o.out, o.f, res)

	o.logger.Info("Extraction finished",
		zap.String("source", res.Source),
		zap.String("dest", res.Dest),
		zap.Bool("arch_mismatch", res.Mismatch()),
		zap.Int("issues", len(res.Issues)),
	)
	return res, nil
}

func (o *Orchestrator) hostBits() int {
	if o.cfg.HostBits == 32 || o.cfg.HostBits == 64 {
		return o.cfg.HostBits
	}
	if o.host != nil && o.host.Bits != 0 {
		return o.host.Bits
	}
	return 64
}

func (o *Orchestrator) locate() (string, error) {
	o.enter(PhaseLocating)
	o.f.Section(o.out, "1. LOCATING MOM CLIENT INSTALLATION")

	locator := NewLocator(o.candidates, o.manifest.Client.Markers, o.prompter, o.logger)
	found := locator.Find()
	for _, p := range found {
		fmt.Fprintln(o.out, o.f.Paint("✓ Found:", output.Success), p)
	}

	if len(found) > 0 {
		o.enter(PhaseLocated)
		if len(found) > 1 {
			fmt.Fprintln(o.out, "\nMultiple installations found:")
			for i, p := range found {
				fmt.Fprintf(o.out, "  %d. %s\n", i+1, p)
			}
		}
		return locator.Choose(found)
	}

	o.enter(PhaseNotFound)
	fmt.Fprintln(o.out, o.f.Paint("✗ No MoM installation found automatically", output.Warning))

	o.enter(PhaseManualPathPrompt)
	fmt.Fprintln(o.out, "\nCouldn't find MoM installation automatically.")
	path, err := o.prompter.Ask("Enter path to MoM client installation: ")
	if err != nil {
		return "", err
	}
	if st, err := os.Stat(path); path == "" || err != nil || !st.IsDir() {
		fmt.Fprintln(o.out, o.f.Paint("Error: Path does not exist!", output.Failure))
		return "", fmt.Errorf("%w: %q", ErrInstallationNotFound, path)
	}
	return path, nil
}

func (o *Orchestrator) classify() {
	res := o.result
	o.f.Section(o.out, "2. CHECKING ARCHITECTURE")

	fmt.Fprintf(o.out, "Current Python: %d-bit\n", res.HostBits)
	if o.host != nil {
		fmt.Fprintf(o.out, "System: %s\n", o.host.Describe())
	}

	binary := arch.Find(res.Source, o.manifest.Client.ArchBinaries)
	if binary == "" {
		fmt.Fprintln(o.out, o.f.Paint("⚠ Warning: pytge binary not found in client", output.Warning))
		o.issue("pytge binary not found in client")
		return
	}

	fmt.Fprintf(o.out, "\nFound: %s\n", binary)
	info := arch.Classify(binary)
	res.Arch = &info

	if !info.BitWidth.Known() {
		fmt.Fprintln(o.out, o.f.Paint("Could not determine architecture: "+info.Detail, output.Warning))
		o.issue("architecture of %s unknown: %s", filepath.Base(binary), info.Detail)
		return
	}
	fmt.Fprintln(o.out, o.f.Paint("✓ Architecture: "+info.String(), output.Success))

	if info.Mismatch(res.HostBits) {
		fmt.Fprintln(o.out, "\n"+o.f.Paint("⚠ WARNING: ARCHITECTURE MISMATCH!", output.Failure, output.Bold))
		fmt.Fprintf(o.out, "  pytge is %d-bit, but Python is %d-bit\n", int(info.BitWidth), res.HostBits)
		fmt.Fprintln(o.out, "\n  This WILL cause zones to fail to start!")
	} else {
		fmt.Fprintln(o.out, "\n"+o.f.Paint("✓ Architecture matches Python!", output.Success))
	}
}

func (o *Orchestrator) destination() (string, error) {
	dest := o.cfg.Dest
	if dest == "" {
		answer, err := o.prompter.Ask(fmt.Sprintf("\nExtract to [%s]: ", o.defaultDest))
		if err != nil {
			return "", err
		}
		dest = answer
	}
	if dest == "" {
		dest = o.defaultDest
	}
	if abs, err := filepath.Abs(dest); err == nil {
		dest = abs
	}
	return dest, nil
}

func (o *Orchestrator) copyItems() {
	res := o.result
	o.f.Section(o.out, "3. EXTRACTING FILES")

	if err := os.MkdirAll(res.Dest, 0755); err != nil {
		o.logger.Error("Failed to create destination", zap.String("dest", res.Dest), zap.Error(err))
		o.issue("cannot create destination %s: %v", res.Dest, err)
	}

	copier := NewCopier(o.logger)

	fmt.Fprintln(o.out, "\nCopying files...")
	files := copier.CopyFiles(res.Source, res.Dest, o.manifest.Client.Files)
	for _, item := range files {
		o.renderItem(item)
	}

	fmt.Fprintln(o.out, "\nCopying directories...")
	dirs := copier.CopyDirs(res.Source, res.Dest, o.manifest.Client.Directories)
	for _, item := range dirs {
		o.renderItem(item)
	}

	res.Items = append(files, dirs...)
	for _, item := range res.Items {
		if item.Outcome != OutcomeFailed {
			continue
		}
		if item.Critical {
			o.issue("CRITICAL: %s could not be extracted (%s)", item.Name, item.Error)
		} else {
			o.issue("%s could not be copied (%s)", item.Name, item.Error)
		}
	}
}

func (o *Orchestrator) renderItem(item ItemResult) {
	switch item.Outcome {
	case OutcomeCopied:
		fmt.Fprintln(o.out, o.f.Mark(true), item.Name, "-", item.Description)
	case OutcomeAbsent:
		fmt.Fprintln(o.out, o.f.Paint("⊗", output.Warning), item.Name, "- Not found (may not be needed)")
	default:
		if item.Dir && item.Error == "not found" {
			fmt.Fprintln(o.out, o.f.Mark(false), item.Name, "- Not found (CRITICAL!)")
			return
		}
		fmt.Fprintln(o.out, o.f.Mark(false), item.Name, "- Error:", item.Error)
	}
}

func (o *Orchestrator) unpack() {
	res := o.result
	a := o.manifest.Client.Archive
	o.f.Section(o.out, "4. EXTRACTING PYTHON MODULES")

	if a.Name == "" {
		return
	}
	archive := filepath.Join(res.Dest, a.Name)
	if _, err := os.Stat(archive); err != nil {
		fmt.Fprintln(o.out, o.f.Paint("✗ "+a.Name+" not found", output.Failure))
		res.Archive = ArchiveResult{Archive: archive, Error: "not found"}
		o.issue("%s not found, modules not extracted", a.Name)
		return
	}

	fmt.Fprintf(o.out, "Extracting %s...\n", a.Name)
	res.Archive = NewUnpacker(o.logger).Unpack(archive, res.Dest, a.Prefixes)
	if !res.Archive.Opened {
		fmt.Fprintln(o.out, o.f.Paint(fmt.Sprintf("Error extracting %s: %s", a.Name, res.Archive.Error), output.Failure))
		o.issue("%s could not be opened: %s", a.Name, res.Archive.Error)
		return
	}

	for _, p := range res.Archive.Prefixes {
		if p.Members == 0 {
			fmt.Fprintln(o.out, o.f.Paint(fmt.Sprintf("  ⊗ %s not found in %s", p.Prefix, a.Name), output.Warning))
			continue
		}
		fmt.Fprintf(o.out, "  Extracting %s... (%d files)\n", p.Prefix, p.Members)
		if p.Errors > 0 {
			fmt.Fprintln(o.out, o.f.Paint(fmt.Sprintf("  ✗ %s (%d errors)", p.Prefix, p.Errors), output.Failure))
			o.issue("%d members of %s failed to extract", p.Errors, p.Prefix)
			continue
		}
		fmt.Fprintln(o.out, o.f.Paint("  ✓ "+p.Prefix, output.Success))
	}
}

func (o *Orchestrator) verifyContent() {
	res := o.result
	c := o.manifest.Content
	o.f.Section(o.out, "5. VERIFYING MISSION FILES")

	res.Content = checks.CountContent(filepath.Join(res.Dest, filepath.FromSlash(c.Path)), c.Suffix)
	switch {
	case !res.Content.DirExists:
		fmt.Fprintln(o.out, o.f.Paint("✗ "+c.Path+" directory not found!", output.Failure))
		o.issue("%s directory not found", c.Path)
	case len(res.Content.Files) == 0:
		fmt.Fprintln(o.out, o.f.Paint(fmt.Sprintf("✗ No %s files found!", c.Suffix), output.Failure))
		o.issue("no %s files found", c.Suffix)
	default:
		fmt.Fprintln(o.out, o.f.Paint(fmt.Sprintf("✓ Found %d mission files:", len(res.Content.Files)), output.Success))
		fmt.Fprint(o.out, MissionListing(res.Content.Files))
	}
}

// MissionListing lists the first names and a count of the rest.
func MissionListing(files []string) string {
	var sb strings.Builder
	for i, name := range files {
		if i == missionPreview {
			fmt.Fprintf(&sb, "  ... and %d more\n", len(files)-missionPreview)
			break
		}
		fmt.Fprintf(&sb, "  - %s\n", name)
	}
	return sb.String()
}

func (o *Orchestrator) generateScript() {
	res := o.result
	o.f.Section(o.out, "6. GENERATING LAUNCH SCRIPT")

	data := ScriptData{
		InstallPath:  res.Dest,
		ArchBits:     "unknown",
		ArchPlatform: "unknown",
		HostBits:     res.HostBits,
	}
	if res.Arch != nil && res.Arch.BitWidth.Known() {
		data.ArchBits = res.Arch.BitWidth.String()
		data.ArchPlatform = res.Arch.Platform.String()
	}

	path, err := WriteScript(res.Dest, o.family, data)
	if err != nil {
		fmt.Fprintln(o.out, o.f.Paint("✗ Error creating script: "+err.Error(), output.Failure))
		o.logger.Error("Failed to write launch script", zap.Error(err))
		o.issue("launch script not written: %v", err)
		return
	}
	res.Script = path
	fmt.Fprintln(o.out, o.f.Paint("✓ Created: "+path, output.Success))
}
