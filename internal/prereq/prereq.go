package prereq

import (
	"fmt"

	"github.com/iotempower/installcheck/internal/catalog"
	"github.com/iotempower/installcheck/internal/runner"
)

type requirement struct {
	binary  string
	pkgHint string
}

var requirements = map[catalog.Manager]requirement{
	catalog.Apt: {"dpkg", "dpkg"},
	catalog.Npm: {"npm", "npm"},
}

// Managers returns the package managers used by checks, in first-use order.
func Managers(checks []catalog.Check) []catalog.Manager {
	seen := make(map[catalog.Manager]bool)
	var out []catalog.Manager
	for _, c := range checks {
		if !seen[c.Manager] {
			seen[c.Manager] = true
			out = append(out, c.Manager)
		}
	}
	return out
}

// Check verifies the query binary of every manager in managers is available.
// Returns a list of errors for each missing binary. Managers without a known
// query are skipped; verify reports them per check.
func Check(r runner.Runner, managers []catalog.Manager) []error {
	var errs []error
	for _, m := range managers {
		req, ok := requirements[m]
		if !ok {
			continue
		}
		if _, err := r.LookPath(req.binary); err != nil {
			errs = append(errs, fmt.Errorf("%s not found, %s packages cannot be queried; install the %q package", req.binary, m, req.pkgHint))
		}
	}
	return errs
}
