// Command bisect is a `git bisect run` helper. It benchmarks a command and
// classifies the current checkout as good or bad from the measured times.
//
//	git bisect run bisect -l 5 --real 120,300 'make test-fast'
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tiancaiamao/runperf"
)

// Exit codes understood by git bisect run.
const (
	exitGood  = 0
	exitBad   = 1
	exitSkip  = 125
	exitAbort = 255
)

type ranges struct {
	real, user, sys string
}

type pair struct {
	from, to int64
}

func newRootCmd(stderr io.Writer, code *int) *cobra.Command {
	var r ranges
	var inv runperf.Invocation
	cmd := &cobra.Command{
		Use:   "bisect [flags] command",
		Short: "Classify a commit as good or bad by benchmarking a command",
		Example: `  bisect --real 120,300 'make test-fast'
  bisect -l 5 --sys 10,40 -u bob -m bench1 -e /srv/venv/bin/activate 'pytest -x'`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv.Command = args[0]
			checks, err := r.parse()
			if err != nil {
				*code = exitAbort
				return err
			}
			if err := inv.Validate(); err != nil {
				*code = exitAbort
				return err
			}
			*code = classify(cmd.Context(), &runperf.ShellExecutor{}, &inv, checks, stderr)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&r.real, "real", "", "good,bad range of the real time mean in ms")
	f.StringVar(&r.user, "user-time", "", "good,bad range of the user time mean in ms")
	f.StringVar(&r.sys, "sys", "", "good,bad range of the sys time mean in ms")
	f.IntVarP(&inv.Loop, "loop", "l", 10, "the number of runs")
	f.StringVarP(&inv.User, "user", "u", "", "the user name for the ssh connection")
	f.StringVarP(&inv.Host, "host", "m", "", "the host for the ssh connection")
	f.StringVarP(&inv.Venv, "venv", "e", "", "the path to the virtual environment activation script on the remote machine")
	return cmd
}

// parse returns the requested checks keyed by dimension.
func (r ranges) parse() (map[string]pair, error) {
	checks := make(map[string]pair)
	for _, c := range []struct{ name, flag, val string }{
		{"real", "real", r.real},
		{"user", "user-time", r.user},
		{"sys", "sys", r.sys},
	} {
		if c.val == "" {
			continue
		}
		from, to, err := parseNumberPair(c.val)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", c.flag, err)
		}
		if from >= to {
			return nil, fmt.Errorf("--%s: good %d >= bad %d", c.flag, from, to)
		}
		checks[c.name] = pair{from, to}
	}
	if len(checks) == 0 {
		return nil, fmt.Errorf("need at least one of --real, --user-time or --sys")
	}
	return checks, nil
}

func classify(ctx context.Context, exe runperf.Executor, inv *runperf.Invocation, checks map[string]pair, stderr io.Writer) int {
	r := &runperf.Runner{
		Exec:     exe,
		Progress: &runperf.Dots{W: stderr},
	}
	samples, err := r.Run(ctx, inv)
	if err != nil {
		log.WithError(err).Warn("benchmark failed, skipping commit")
		return exitSkip
	}
	res, err := runperf.NewResult(inv, samples)
	if err != nil {
		log.WithError(err).Warn("benchmark failed, skipping commit")
		return exitSkip
	}
	means := map[string]int64{
		"real": res.Data.Real.Mean,
		"user": res.Data.User.Mean,
		"sys":  res.Data.Sys.Mean,
	}
	ret := exitGood
	for dim, p := range checks {
		v := goodOrBad(means[dim], p.from, p.to)
		log.WithFields(log.Fields{"dimension": dim, "mean": means[dim], "good": p.from, "bad": p.to}).Infof("verdict %d", v)
		if v != exitGood {
			ret = v
		}
	}
	return ret
}

func parseNumberPair(str string) (int64, int64, error) {
	tmp := strings.Split(str, ",")
	if len(tmp) != 2 {
		return 0, 0, fmt.Errorf("want low,high, got %q", str)
	}
	from, err := strconv.ParseInt(strings.TrimSpace(tmp[0]), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	to, err := strconv.ParseInt(strings.TrimSpace(tmp[1]), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

// Return 1 if the current source is bad (value near to to)
// Return 0 for a good case (val near to from)
func goodOrBad(val, from, to int64) int {
	if val > to {
		return exitBad
	}
	if val < from {
		return exitGood
	}

	if val > (from+to)/2 {
		return exitBad
	}
	return exitGood
}

func main() {
	code := exitGood
	cmd := newRootCmd(os.Stderr, &code)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Error(err)
		os.Exit(exitAbort)
	}
	os.Exit(code)
}
