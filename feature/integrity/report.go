package integrity

import (
	"time"

	"mom-toolkit/core/hostinfo"
	"mom-toolkit/feature/integrity/checks"
)

// Group is a titled list of results inside a section.
type Group struct {
	Title   string               `json:"title,omitempty"`
	Results []checks.CheckResult `json:"results"`
}

// Section is one numbered block of the verifier report.
type Section struct {
	Title  string   `json:"title"`
	Notes  []string `json:"notes,omitempty"`
	Groups []Group  `json:"groups"`
}

// Results flattens the section's groups.
func (s Section) Results() []checks.CheckResult {
	var out []checks.CheckResult
	for _, g := range s.Groups {
		out = append(out, g.Results...)
	}
	return out
}

// Report is the full outcome of a verification run.
type Report struct {
	RunID      string               `json:"run_id"`
	StartedAt  time.Time            `json:"started_at"`
	Duration   time.Duration        `json:"duration_ns"`
	Root       string               `json:"root"`
	Family     string               `json:"family"`
	Host       *hostinfo.Info       `json:"host,omitempty"`
	SearchPath []string             `json:"search_path"`
	Sections   []Section            `json:"sections"`
	Install    checks.InstallStatus `json:"install"`
	Summary    Summary              `json:"summary"`
}

// Results returns every result of every section in report order.
func (r *Report) Results() []checks.CheckResult {
	var out []checks.CheckResult
	for _, s := range r.Sections {
		out = append(out, s.Results()...)
	}
	return out
}

// Count returns how many results of a category match the predicate.
func (r *Report) Count(category checks.Category, match func(checks.CheckResult) bool) int {
	n := 0
	for _, res := range r.Results() {
		if res.Category == category && match(res) {
			n++
		}
	}
	return n
}
