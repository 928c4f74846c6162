package integrity

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"mom-toolkit/core/output"
	"mom-toolkit/feature/integrity/checks"
)

// RenderText writes the human checklist for rep.
func RenderText(w io.Writer, f *output.Formatter, rep *Report) {
	f.Banner(w,
		"MoM Server Installation Diagnostic Tool",
		"Checking tge-fork-152 Integration & Zone Server Requirements",
	)

	for _, sec := range rep.Sections {
		f.Section(w, sec.Title)
		for _, note := range sec.Notes {
			fmt.Fprintln(w, note)
		}
		for _, g := range sec.Groups {
			if g.Title != "" {
				fmt.Fprintln(w, "\n"+f.Paint(g.Title+":", output.Info))
			}
			for _, r := range g.Results {
				renderResult(w, f, r)
			}
		}
	}

	renderSummary(w, f, rep.Summary)
	fmt.Fprintln(w)
}

func renderResult(w io.Writer, f *output.Formatter, r checks.CheckResult) {
	switch {
	case r.Category == checks.CategoryInstall:
		mark, style := "⚠", output.Warning
		switch {
		case r.Status:
			mark, style = "✓", output.Success
		case r.Count == 0:
			mark, style = "✗", output.Failure
		}
		fmt.Fprintln(w, f.Paint(mark+" "+r.Detail, style))
	case r.Skipped:
		fmt.Fprintf(w, "%s %s: %s\n", f.Paint("⊗", output.Warning), r.Name, f.Paint("SKIPPED", output.Warning))
		fmt.Fprintf(w, "  %s\n", r.Detail)
	default:
		f.Result(w, r.Name, r.Status, r.Detail)
	}
}

func renderSummary(w io.Writer, f *output.Formatter, s Summary) {
	f.Section(w, "SUMMARY & RECOMMENDATIONS")

	if s.Verdict == VerdictPass {
		fmt.Fprintln(w, "\n"+f.Paint("✓ ALL CRITICAL COMPONENTS PRESENT", output.Success, output.Bold))
		fmt.Fprintln(w, "\nYour installation appears complete. You should be able to start servers.")
	} else {
		fmt.Fprintln(w, "\n"+f.Paint("✗ CRITICAL FAILURES DETECTED", output.Failure, output.Bold))
		fmt.Fprintln(w, "\nThe following critical components are missing:")
		fmt.Fprintln(w)
		for i, failure := range s.CriticalFailures {
			fmt.Fprintf(w, "  %d. %s\n", i+1, f.Paint(failure, output.Failure))
		}

		rule := strings.Repeat("=", output.Rule)
		fmt.Fprintln(w, "\n"+f.Paint(rule, output.Bold))
		fmt.Fprintln(w, f.Paint("NEXT STEPS:", output.Header, output.Bold))
		fmt.Fprintln(w, rule)
		for i, step := range Remediation {
			fmt.Fprintf(w, "\n%d. %s:\n", i+1, step.Title)
			for _, line := range step.Lines {
				fmt.Fprintf(w, "   %s\n", line)
			}
		}
		fmt.Fprintln(w, "\n"+f.Paint(rule, output.Bold))
	}

	if len(s.Warnings) > 0 {
		fmt.Fprintln(w, "\n"+f.Paint("WARNINGS:", output.Warning))
		for _, warning := range s.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}

// RenderJSON writes rep as indented JSON.
func RenderJSON(w io.Writer, rep *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rep)
}

// WriteJSONFile saves rep to path.
func WriteJSONFile(path string, rep *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := RenderJSON(f, rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
