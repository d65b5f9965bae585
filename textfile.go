package runperf

import (
	"github.com/prometheus/client_golang/prometheus"
)

// NewRegistry returns a registry holding gauges for res, suitable for the
// node_exporter textfile collector.
func NewRegistry(res *Result) *prometheus.Registry {
	mean := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "runperf_mean_milliseconds",
		Help: "Mean time of the benchmarked command.",
	}, []string{"command", "dimension"})
	pstdev := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "runperf_pstdev_milliseconds",
		Help: "Population standard deviation of the benchmarked command.",
	}, []string{"command", "dimension"})
	iterations := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "runperf_iterations",
		Help: "Number of runs the statistics are based on.",
	}, []string{"command"})

	for dim, s := range map[string]Summary{
		"real": res.Data.Real,
		"user": res.Data.User,
		"sys":  res.Data.Sys,
	} {
		mean.WithLabelValues(res.Command, dim).Set(float64(s.Mean))
		pstdev.WithLabelValues(res.Command, dim).Set(float64(s.PStdev))
	}
	iterations.WithLabelValues(res.Command).Set(float64(res.Iterations))

	reg := prometheus.NewRegistry()
	reg.MustRegister(mean, pstdev, iterations)
	return reg
}

// WriteTextfile writes res to filename in the Prometheus text format. The
// file is replaced atomically so a textfile collector never reads a
// partial file.
func WriteTextfile(filename string, res *Result) error {
	return prometheus.WriteToTextfile(filename, NewRegistry(res))
}
