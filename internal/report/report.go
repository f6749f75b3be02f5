// Package report renders verification results.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/iotempower/installcheck/internal/verify"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want text, json or yaml)", s)
	}
}

type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Passed  int `json:"passed" yaml:"passed"`
	Failed  int `json:"failed" yaml:"failed"`
	Errored int `json:"errored" yaml:"errored"`
}

// Entry is one check in a report.
type Entry struct {
	Package    string `json:"package" yaml:"package"`
	Manager    string `json:"manager" yaml:"manager"`
	Module     string `json:"module" yaml:"module"`
	Status     string `json:"status" yaml:"status"`
	Message    string `json:"message,omitempty" yaml:"message,omitempty"`
	ExitCode   int    `json:"exit_code" yaml:"exit_code"`
	DurationMS int64  `json:"duration_ms" yaml:"duration_ms"`
}

type Report struct {
	RunID      string    `json:"run_id" yaml:"run_id"`
	LocalDir   string    `json:"local_dir" yaml:"local_dir"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
	Summary    Summary   `json:"summary" yaml:"summary"`
	Results    []Entry   `json:"results" yaml:"results"`
}

// New builds a report from results, keeping their order.
func New(localDir string, started, finished time.Time, results []verify.Result) *Report {
	rep := &Report{
		RunID:      uuid.NewString(),
		LocalDir:   localDir,
		StartedAt:  started,
		FinishedAt: finished,
		Results:    make([]Entry, 0, len(results)),
	}
	for _, r := range results {
		e := Entry{
			Package:    r.Check.Name,
			Manager:    string(r.Check.Manager),
			Module:     r.Check.Module,
			Status:     string(r.Status),
			ExitCode:   r.ExitCode,
			DurationMS: r.Duration.Milliseconds(),
		}
		if r.Err != nil {
			e.Message = r.Err.Error()
		}
		rep.Results = append(rep.Results, e)

		rep.Summary.Total++
		switch r.Status {
		case verify.StatusPassed:
			rep.Summary.Passed++
		case verify.StatusFailed:
			rep.Summary.Failed++
		default:
			rep.Summary.Errored++
		}
	}
	return rep
}

// OK reports whether every check passed. An empty report is OK.
func (r *Report) OK() bool {
	return r.Summary.Failed == 0 && r.Summary.Errored == 0
}

// Write encodes rep to w in format f.
func Write(w io.Writer, rep *Report, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, rep)
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}

func writeText(w io.Writer, rep *Report) error {
	re := lipgloss.NewRenderer(w)
	pass := re.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	fail := re.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	faint := re.NewStyle().Faint(true)

	for _, e := range rep.Results {
		var tag string
		switch verify.Status(e.Status) {
		case verify.StatusPassed:
			tag = pass.Render("PASS ")
		case verify.StatusFailed:
			tag = fail.Render("FAIL ")
		default:
			tag = fail.Render("ERROR")
		}
		line := fmt.Sprintf("%s %s %s", tag, e.Package, faint.Render("("+e.Manager+", "+e.Module+")"))
		if e.Message != "" {
			line += "\n      " + e.Message
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	s := rep.Summary
	if s.Total == 0 {
		_, err := fmt.Fprintln(w, "No modules selected, nothing to verify.")
		return err
	}
	summary := fmt.Sprintf("%d checks: %d passed, %d failed, %d errors", s.Total, s.Passed, s.Failed, s.Errored)
	if rep.OK() {
		summary = pass.Render(summary)
	} else {
		summary = fail.Render(summary)
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}
