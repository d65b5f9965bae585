package runperf

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Runner executes an Invocation sequentially and collects its timings.
type Runner struct {
	Exec     Executor
	Progress Progress
	Log      log.FieldLogger
}

func (r *Runner) logger() log.FieldLogger {
	if r.Log == nil {
		return log.StandardLogger()
	}
	return r.Log
}

// Run runs inv.Loop iterations and returns the samples. A command that
// exits non-zero is not an error as long as its output still carries the
// timing lines; any parse failure aborts the whole run.
func (r *Runner) Run(ctx context.Context, inv *Invocation) (*Samples, error) {
	exe := r.Exec
	if exe == nil {
		exe = &ShellExecutor{}
	}
	progress := r.Progress
	if progress == nil {
		progress = &Dots{W: io.Discard}
	}
	logger := r.logger()
	command := inv.ShellCommand()
	logger.WithField("shell", command).Debug("built command")

	samples := &Samples{
		Real: make([]float64, 0, inv.Loop),
		User: make([]float64, 0, inv.Loop),
		Sys:  make([]float64, 0, inv.Loop),
	}
	progress.Start(inv.Loop)
	defer progress.Finish()
	for i := 0; i < inv.Loop; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		progress.Step()
		out, err := exe.Run(ctx, command)
		if err != nil {
			var ee *ExitError
			if !errors.As(err, &ee) {
				return nil, fmt.Errorf("iteration %d: %w", i+1, err)
			}
			logger.WithField("iteration", i+1).WithField("code", ee.Code).Debug("command exited non-zero")
		}
		t, err := ParseTiming(out)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i+1, err)
		}
		samples.Add(t)
	}
	return samples, nil
}

// NewResult summarizes samples into the result record for inv.
func NewResult(inv *Invocation, s *Samples) (*Result, error) {
	res := &Result{Command: inv.Command, Iterations: inv.Loop}
	dims := []struct {
		name string
		data []float64
		dst  *Summary
	}{
		{"real", s.Real, &res.Data.Real},
		{"user", s.User, &res.Data.User},
		{"sys", s.Sys, &res.Data.Sys},
	}
	for _, d := range dims {
		sum, err := Summarize(d.data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.name, err)
		}
		*d.dst = sum
	}
	return res, nil
}
