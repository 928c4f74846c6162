package checks

import (
	"fmt"
	"os"
	"strings"
)

// InstallState is the install-marker heuristic verdict.
type InstallState string

const (
	InstallNotRun   InstallState = "not_run"
	InstallPartial  InstallState = "partial"
	InstallComplete InstallState = "complete"
)

// InstallStatus summarises which install markers are present.
type InstallStatus struct {
	State   InstallState `json:"state"`
	Found   int          `json:"found"`
	Total   int          `json:"total"`
	Missing []string     `json:"missing,omitempty"`
}

// CheckInstall counts the markers the install script leaves below root.
func CheckInstall(root string, markers []string) InstallStatus {
	status := InstallStatus{Total: len(markers)}
	for _, m := range markers {
		if _, err := os.Stat(resolve(root, m)); err == nil {
			status.Found++
		} else {
			status.Missing = append(status.Missing, m)
		}
	}

	switch {
	case status.Found == 0:
		status.State = InstallNotRun
	case status.Found == status.Total:
		status.State = InstallComplete
	default:
		status.State = InstallPartial
	}
	return status
}

// Result converts the status into an advisory check result.
func (s InstallStatus) Result() CheckResult {
	res := CheckResult{
		Name:     "Install.py",
		Category: CategoryInstall,
		Status:   s.State == InstallComplete,
		Count:    s.Found,
	}

	switch s.State {
	case InstallComplete:
		res.Detail = "Install.py appears to have been run successfully"
	case InstallPartial:
		res.Detail = fmt.Sprintf("Install.py may have been partially run (%d/%d expected items found, missing: %s)",
			s.Found, s.Total, strings.Join(s.Missing, ", "))
	default:
		res.Detail = "Install.py has NOT been run"
	}
	return res
}
