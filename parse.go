package runperf

import (
	"fmt"
	"strconv"
	"strings"
)

var timingLabels = [...]string{"real", "user", "sys"}

// ParseError reports `time -p` output that does not have the expected shape.
type ParseError struct {
	Line int // zero-based line index
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("timing line %d (%s) %q: %v", e.Line, timingLabels[e.Line], e.Text, e.Err)
	}
	return fmt.Sprintf("timing line %d (%s) missing in output %q", e.Line, timingLabels[e.Line], e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseTiming reads the real, user and sys values from the first three
// lines of out. The label on each line is not checked; the second field
// must be a number.
func ParseTiming(out string) (Timing, error) {
	lines := strings.Split(strings.ReplaceAll(out, "\r\n", "\n"), "\n")
	if strings.HasSuffix(out, "\n") {
		lines = lines[:len(lines)-1]
	}
	var v [3]float64
	for i := range v {
		if i >= len(lines) {
			return Timing{}, &ParseError{Line: i, Text: out}
		}
		f := strings.Fields(lines[i])
		if len(f) < 2 {
			return Timing{}, &ParseError{Line: i, Text: lines[i], Err: fmt.Errorf("want 2 fields, got %d", len(f))}
		}
		x, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			return Timing{}, &ParseError{Line: i, Text: lines[i], Err: err}
		}
		v[i] = x
	}
	return Timing{Real: v[0], User: v[1], Sys: v[2]}, nil
}
