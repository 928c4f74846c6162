package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mom-toolkit/core/prompt"

	"go.uber.org/zap"
)

// Candidates expands candidate templates into concrete paths. A leading ~
// becomes home; ${Name} is read through getenv. Templates referencing an
// unset variable, or ~ without a home directory, are dropped.
func Candidates(templates []string, getenv func(string) (string, bool), home string) []string {
	if getenv == nil {
		getenv = os.LookupEnv
	}

	var out []string
	for _, tpl := range templates {
		missing := false
		path := os.Expand(tpl, func(name string) string {
			v, ok := getenv(name)
			if !ok || v == "" {
				missing = true
			}
			return v
		})
		if missing {
			continue
		}

		if path == "~" || strings.HasPrefix(path, "~/") {
			if home == "" {
				continue
			}
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
		out = append(out, path)
	}
	return out
}

// IsInstallation reports whether dir exists and holds at least one marker.
func IsInstallation(dir string, markers []string) bool {
	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		return false
	}
	for _, m := range markers {
		if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
			return true
		}
	}
	return false
}

// Select maps a 1-based answer onto found. Anything that is not a valid
// index falls back to the first entry and reports ok=false.
func Select(found []string, answer string) (choice string, ok bool) {
	i, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || i < 1 || i > len(found) {
		return found[0], false
	}
	return found[i-1], true
}

// Locator finds client installations among well-known directories.
type Locator struct {
	candidates []string
	markers    []string
	prompter   prompt.Prompter
	logger     *zap.Logger
}

// NewLocator creates a locator over already expanded candidate paths.
func NewLocator(candidates, markers []string, prompter prompt.Prompter, logger *zap.Logger) *Locator {
	return &Locator{
		candidates: candidates,
		markers:    markers,
		prompter:   prompter,
		logger:     logger,
	}
}

// Find returns the candidates that validate as installations, in order.
func (l *Locator) Find() []string {
	var found []string
	for _, c := range l.candidates {
		if IsInstallation(c, l.markers) {
			found = append(found, c)
		}
	}
	return found
}

// Choose returns the only installation, or asks the operator to pick one.
// found must not be empty.
func (l *Locator) Choose(found []string) (string, error) {
	if len(found) == 1 {
		return found[0], nil
	}

	answer, err := l.prompter.Ask(fmt.Sprintf("\nSelect installation (1-%d): ", len(found)))
	if err != nil {
		return "", err
	}

	choice, ok := Select(found, answer)
	if !ok {
		l.logger.Warn("Invalid selection, using the first installation",
			zap.String("input", answer),
			zap.String("installation", choice),
		)
	}
	return choice, nil
}
