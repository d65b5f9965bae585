package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tiancaiamao/runperf"
)

type options struct {
	inv      runperf.Invocation
	output   string
	progress string
	chart    string
	textfile string
	shell    string
	verbose  bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "runperf [flags] command",
		Short: "Measure the performance of a shell command with time -p",
		Long: `runperf runs command repeatedly under "time -p", locally or over ssh
inside a remote virtual environment, and prints the mean and population
standard deviation of the real, user and sys times in milliseconds as JSON.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.inv.Command = args[0]
			return run(cmd.Context(), &o, stdout, stderr)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.inv.User, "user", "u", "", "the user name for the ssh connection")
	f.StringVarP(&o.inv.Host, "host", "m", "", "the host for the ssh connection")
	f.StringVarP(&o.inv.Venv, "venv", "e", "", "the path to the virtual environment activation script on the remote machine")
	f.IntVarP(&o.inv.Loop, "loop", "l", 10, "the number of runs")
	f.StringVarP(&o.output, "output", "o", "json", "output format: json or yaml")
	f.StringVar(&o.progress, "progress", "dots", "progress display: dots or bar")
	f.StringVar(&o.chart, "chart", "", "write an HTML chart of the samples to this file")
	f.StringVar(&o.textfile, "textfile", "", "write the summary in Prometheus text format to this file")
	f.StringVar(&o.shell, "shell", runperf.DefaultShell, "local shell used to run the command line")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(ctx context.Context, o *options, stdout, stderr io.Writer) error {
	logger := log.New()
	logger.SetOutput(stderr)
	if o.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if err := o.inv.Validate(); err != nil {
		return err
	}
	if err := o.inv.CheckQuoting(); err != nil {
		logger.WithError(err).Warn("passing command to the shell as is")
	}
	if o.output != "json" && o.output != "yaml" {
		return fmt.Errorf("unknown output format %q", o.output)
	}
	progress, err := runperf.NewProgress(o.progress, stderr)
	if err != nil {
		return err
	}
	if o.inv.Partial() {
		logger.Warn("user, host and venv are all required for remote execution; running locally")
	}

	logger.Infof("Perf run %s on %s as %s. Venv is at %s", o.inv.Command, o.inv.Host, o.inv.User, o.inv.Venv)
	r := &runperf.Runner{
		Exec:     &runperf.ShellExecutor{Shell: o.shell},
		Progress: progress,
		Log:      logger,
	}
	samples, err := r.Run(ctx, &o.inv)
	if err != nil {
		return err
	}
	res, err := runperf.NewResult(&o.inv, samples)
	if err != nil {
		return err
	}

	if o.chart != "" {
		err := runperf.WriteFile(o.chart, func(w io.Writer) error {
			return runperf.RenderChart(w, res, samples)
		})
		if err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
	}
	if o.textfile != "" {
		if err := runperf.WriteTextfile(o.textfile, res); err != nil {
			return fmt.Errorf("write textfile: %w", err)
		}
	}
	return runperf.Encode(stdout, res, o.output)
}

func main() {
	log.SetOutput(os.Stderr)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}
