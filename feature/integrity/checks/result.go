package checks

// Category groups results into the verifier's report sections.
type Category string

const (
	CategoryEnvironment Category = "environment"
	CategoryDirectory   Category = "directories"
	CategoryFile        Category = "files"
	CategoryModule      Category = "modules"
	CategorySubmodule   Category = "submodules"
	CategoryBinary      Category = "binaries"
	CategoryContent     Category = "content"
	CategoryDatabase    Category = "databases"
	CategoryInstall     Category = "install"
)

// CheckResult is the outcome of a single probe.
type CheckResult struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Status   bool     `json:"status"`
	Critical bool     `json:"critical"`
	Detail   string   `json:"detail,omitempty"`
	// Path is the resolved location of the artifact, when it has one.
	Path string `json:"path,omitempty"`
	// Count is the number of matching entries for content probes.
	Count int `json:"count,omitempty"`
	// Size is the file size in bytes for binaries and databases.
	Size int64 `json:"size,omitempty"`
	// Skipped marks probes not attempted because a prerequisite failed.
	Skipped bool `json:"skipped,omitempty"`
}

// Failed reports whether the probe did not succeed.
func (r CheckResult) Failed() bool {
	return !r.Status
}

// Blocking reports whether the failure must turn the verdict to FAIL.
func (r CheckResult) Blocking() bool {
	return r.Critical && !r.Status
}
