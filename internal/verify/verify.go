// Package verify checks that resolved packages are present on the system.
//
// Each check runs one package-manager query through a runner.Runner and only
// its exit status is used: zero means installed, anything else means missing.
package verify

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iotempower/installcheck/internal/catalog"
	"github.com/iotempower/installcheck/internal/log"
	"github.com/iotempower/installcheck/internal/runner"
)

// NodeDir is the npm project under the local dir that holds the node packages.
const NodeDir = "nodejs"

var (
	// ErrMissing matches every *MissingError.
	ErrMissing = errors.New("package missing")
	// ErrUnsupportedManager means the catalog names a manager with no query.
	ErrUnsupportedManager = errors.New("not implemented: only apt and npm packages are supported")
)

// MissingError reports a package whose query exited non-zero.
type MissingError struct {
	Package  string
	Module   string
	ExitCode int
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("cannot find %s in your system which is needed for %s", e.Package, e.Module)
}

func (e *MissingError) Is(target error) bool {
	return target == ErrMissing
}

// Status is the outcome of a single check.
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
	StatusError  Status = "error"
)

// Result is the outcome of one check.
type Result struct {
	Check    catalog.Check
	Status   Status
	Err      error
	ExitCode int
	Duration time.Duration
}

// Query is the command that answers whether a package is installed.
type Query struct {
	Dir  string
	Name string
	Args []string
}

// QueryFor builds the presence query for c.
func QueryFor(baseDir string, c catalog.Check) (Query, error) {
	switch c.Manager {
	case catalog.Apt:
		return Query{Name: "dpkg", Args: []string{"-s", c.Name}}, nil
	case catalog.Npm:
		return Query{Dir: filepath.Join(baseDir, NodeDir), Name: "npm", Args: []string{"list", c.Name}}, nil
	default:
		return Query{}, fmt.Errorf("%w: %s uses package manager %q", ErrUnsupportedManager, c.Name, c.Manager)
	}
}

// Verifier runs checks against the system.
type Verifier struct {
	Runner  runner.Runner
	BaseDir string
	// Jobs bounds concurrent queries; values below 1 mean sequential.
	Jobs int
	// OnResult, if set, is called once per finished check. Calls are serialized.
	OnResult func(Result)

	mu sync.Mutex
}

// New returns a sequential Verifier.
func New(r runner.Runner, baseDir string) *Verifier {
	return &Verifier{Runner: r, BaseDir: baseDir, Jobs: 1}
}

// Verify runs the query for a single check.
func (v *Verifier) Verify(ctx context.Context, c catalog.Check) Result {
	res := Result{Check: c}

	q, err := QueryFor(v.BaseDir, c)
	if err != nil {
		res.Status = StatusError
		res.Err = err
		res.ExitCode = -1
		return res
	}

	start := time.Now()
	var out []byte
	if q.Dir != "" {
		out, err = v.Runner.RunIn(ctx, q.Dir, q.Name, q.Args...)
	} else {
		out, err = v.Runner.Run(ctx, q.Name, q.Args...)
	}
	res.Duration = time.Since(start)
	res.ExitCode = runner.ExitCode(err)
	log.Debug("package query finished", "check", c.Label(), "exit", res.ExitCode, "output", string(out))

	switch {
	case err == nil:
		res.Status = StatusPassed
	case ctx.Err() != nil:
		res.Status = StatusError
		res.Err = fmt.Errorf("%s: %w", c.Label(), ctx.Err())
	default:
		res.Status = StatusFailed
		res.Err = &MissingError{Package: c.Name, Module: c.Module, ExitCode: res.ExitCode}
	}
	return res
}

// Run verifies every check and returns the results in the order of checks.
// A failing check never stops its siblings.
func (v *Verifier) Run(ctx context.Context, checks []catalog.Check) []Result {
	results := make([]Result, len(checks))

	jobs := v.Jobs
	if jobs < 1 {
		jobs = 1
	}
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, c := range checks {
		g.Go(func() error {
			res := v.Verify(ctx, c)
			results[i] = res
			v.notify(res)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (v *Verifier) notify(res Result) {
	switch res.Status {
	case StatusPassed:
		log.Info("package present", "check", res.Check.Label())
	case StatusFailed:
		log.Warn("package missing", "check", res.Check.Label(), "exit", res.ExitCode)
	default:
		log.Error("package check errored", "check", res.Check.Label(), "error", res.Err)
	}
	if v.OnResult == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.OnResult(res)
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Status != StatusPassed {
			out = append(out, r)
		}
	}
	return out
}
