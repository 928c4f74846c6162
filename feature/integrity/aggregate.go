package integrity

import (
	"fmt"

	"mom-toolkit/feature/integrity/checks"
)

// Verdict is the overall outcome of a verification run.
type Verdict string

const (
	VerdictPass Verdict = "PASS"
	VerdictFail Verdict = "FAIL"
)

// Exit codes of the verifier. 1 is reserved for interrupts and fatal errors.
const (
	ExitOK     = 0
	ExitFailed = 2
)

// Summary is the partition of all results into blocking and advisory failures.
type Summary struct {
	Verdict          Verdict  `json:"verdict"`
	CriticalFailures []string `json:"critical_failures"`
	Warnings         []string `json:"warnings"`
}

// Aggregate partitions results in the order given. Every critical result
// that failed is a blocking failure; every other failure is a warning.
func Aggregate(results []checks.CheckResult) Summary {
	s := Summary{
		Verdict:          VerdictPass,
		CriticalFailures: []string{},
		Warnings:         []string{},
	}

	for _, r := range results {
		if r.Status {
			continue
		}
		if r.Critical {
			s.CriticalFailures = append(s.CriticalFailures, FailureReason(r))
		} else {
			s.Warnings = append(s.Warnings, FailureReason(r))
		}
	}

	if len(s.CriticalFailures) > 0 {
		s.Verdict = VerdictFail
	}
	return s
}

// ExitCode maps the verdict to a process exit code.
func (s Summary) ExitCode(strict bool) int {
	if strict && s.Verdict == VerdictFail {
		return ExitFailed
	}
	return ExitOK
}

// FailureReason renders the checklist line for a failed result.
func FailureReason(r checks.CheckResult) string {
	switch r.Category {
	case checks.CategoryEnvironment:
		return fmt.Sprintf("%s environment variable not set", r.Name)
	case checks.CategoryDirectory:
		return fmt.Sprintf("Missing directory: %s", r.Name)
	case checks.CategoryFile:
		return fmt.Sprintf("Missing file: %s", r.Name)
	case checks.CategoryModule:
		return fmt.Sprintf("%s module not importable (%s)", r.Name, r.Detail)
	case checks.CategorySubmodule:
		return fmt.Sprintf("%s not importable (%s)", r.Name, r.Detail)
	case checks.CategoryBinary:
		return fmt.Sprintf("Native binary %s not found", r.Name)
	case checks.CategoryDatabase:
		return fmt.Sprintf("%s not created yet", r.Name)
	default:
		return fmt.Sprintf("%s: %s", r.Name, r.Detail)
	}
}

// RemediationStep is one block of the fixed next-steps text.
type RemediationStep struct {
	Title string
	Lines []string
}

// Remediation is printed after a FAIL verdict.
var Remediation = []RemediationStep{
	{
		Title: "ENVIRONMENT SETUP",
		Lines: []string{
			"export MOM_INSTALL=/path/to/MinionsOfMirthUW",
			"export PYTHONPATH=$MOM_INSTALL:$MOM_INSTALL/library.zip",
		},
	},
	{
		Title: "FOR LINUX - BUILD TGE BINARIES",
		Lines: []string{
			"See BUILD_TGE_FORK.md for complete instructions",
			"- Clone tge-fork-152 source",
			"- Build pytge.so and tgenative.so",
			"- Copy to $MOM_INSTALL",
		},
	},
	{
		Title: "RUN INSTALL SCRIPT",
		Lines: []string{
			"python Install.py",
			"(This copies common/, minions.of.mirth/, main.cs.dso)",
		},
	},
	{
		Title: "VERIFY INSTALLATION",
		Lines: []string{
			"check_installation",
		},
	},
}
