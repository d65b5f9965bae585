package runperf

// Invocation describes a single benchmark run. It is built once from the
// command line and not modified afterwards.
type Invocation struct {
	Command string
	Loop    int
	User    string
	Host    string
	Venv    string
}

// Timing is the output of one `time -p` run, in seconds.
type Timing struct {
	Real float64
	User float64
	Sys  float64
}

// Samples collects one Timing per iteration, in iteration order.
type Samples struct {
	Real []float64
	User []float64
	Sys  []float64
}

func (s *Samples) Add(t Timing) {
	s.Real = append(s.Real, t.Real)
	s.User = append(s.User, t.User)
	s.Sys = append(s.Sys, t.Sys)
}

func (s *Samples) Len() int {
	return len(s.Real)
}

// Summary holds millisecond statistics of one timing dimension.
type Summary struct {
	Mean   int64 `json:"mean" yaml:"mean"`
	PStdev int64 `json:"pstdev" yaml:"pstdev"`
}

type ResultData struct {
	Real Summary `json:"real" yaml:"real"`
	User Summary `json:"user" yaml:"user"`
	Sys  Summary `json:"sys" yaml:"sys"`
}

type Result struct {
	Command    string     `json:"command" yaml:"command"`
	Iterations int        `json:"iterations" yaml:"iterations"`
	Data       ResultData `json:"data" yaml:"data"`
}
