package runperf

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Progress reports iteration progress, normally on stderr.
type Progress interface {
	Start(total int)
	// Step is called before each iteration runs.
	Step()
	Finish()
}

// Dots prints one '.' per iteration and a newline at the end.
type Dots struct {
	W io.Writer
}

func (d *Dots) Start(int) {}

func (d *Dots) Step() {
	fmt.Fprint(d.W, ".")
}

func (d *Dots) Finish() {
	fmt.Fprintln(d.W)
}

// Bar draws a progress bar.
type Bar struct {
	W   io.Writer
	bar *progressbar.ProgressBar
}

func (b *Bar) Start(total int) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.W),
		progressbar.OptionSetDescription("runperf"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetWidth(30),
	)
}

func (b *Bar) Step() {
	if b.bar != nil {
		b.bar.Add(1)
	}
}

func (b *Bar) Finish() {
	if b.bar != nil {
		b.bar.Finish()
	}
	fmt.Fprintln(b.W)
}

// NewProgress returns the progress display named by style ("dots" or "bar").
// A bar is only drawn on a terminal; otherwise dots are used.
func NewProgress(style string, w io.Writer) (Progress, error) {
	switch style {
	case "", "dots":
		return &Dots{W: w}, nil
	case "bar":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return &Bar{W: w}, nil
		}
		return &Dots{W: w}, nil
	}
	return nil, fmt.Errorf("unknown progress style %q", style)
}
