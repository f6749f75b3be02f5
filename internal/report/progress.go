package report

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/schollz/progressbar/v3"

	"github.com/iotempower/installcheck/internal/verify"
)

// Progress shows how many checks have finished.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress returns a progress bar on w, or nil when w is not a terminal.
func NewProgress(w io.Writer, total int) *Progress {
	f, ok := w.(*os.File)
	if !ok || total == 0 || !term.IsTerminal(f.Fd()) {
		return nil
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("verifying"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	return &Progress{bar: bar}
}

// Observe advances the bar for a finished check. Safe on a nil Progress.
func (p *Progress) Observe(res verify.Result) {
	if p == nil {
		return
	}
	p.bar.Describe(res.Check.Name)
	_ = p.bar.Add(1)
}

// Done finishes the bar and moves to a fresh line.
func (p *Progress) Done(w io.Writer) {
	if p == nil {
		return
	}
	_ = p.bar.Finish()
	_, _ = io.WriteString(w, "\n")
}
