package runperf

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMean(t *testing.T) {
	tests := []struct {
		data []float64
		want float64
	}{
		{[]float64{1}, 1},
		{[]float64{1, 2, 3, 4}, 2.5},
		{[]float64{-1, 1}, 0},
		{[]float64{0.1, 0.2, 0.3}, 0.2},
	}
	for _, tt := range tests {
		got, err := Mean(tt.data)
		if err != nil {
			t.Fatalf("Mean(%v): %v", tt.data, err)
		}
		if !almostEqual(got, tt.want) {
			t.Errorf("Mean(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}
	if _, err := Mean(nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("Mean(nil) error = %v, want ErrNoData", err)
	}
}

func TestSqDeviation(t *testing.T) {
	got, err := SqDeviation([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(got, 32) {
		t.Fatalf("SqDeviation = %v, want 32", got)
	}
	if _, err := SqDeviation(nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("SqDeviation(nil) error = %v, want ErrNoData", err)
	}
}

func TestPStdev(t *testing.T) {
	tests := []struct {
		data []float64
		want float64
	}{
		{[]float64{2, 4, 4, 4, 5, 5, 7, 9}, 2},
		{[]float64{1, 1}, 0},
		{[]float64{1, 3}, 1},
		{[]float64{1.5, 2.5, 2.5, 2.75, 3.25, 4.75}, math.Sqrt(5.84375 / 6)},
	}
	for _, tt := range tests {
		got, err := PStdev(tt.data)
		if err != nil {
			t.Fatalf("PStdev(%v): %v", tt.data, err)
		}
		if !almostEqual(got, tt.want) {
			t.Errorf("PStdev(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}
	for _, data := range [][]float64{nil, {1}} {
		if _, err := PStdev(data); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("PStdev(%v) error = %v, want ErrInsufficientData", data, err)
		}
	}
}

func TestSummarize(t *testing.T) {
	got, err := Summarize([]float64{0.10, 0.10, 0.10})
	if err != nil {
		t.Fatal(err)
	}
	if got != (Summary{Mean: 100, PStdev: 0}) {
		t.Fatalf("Summarize = %+v, want {100 0}", got)
	}

	got, err = Summarize([]float64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if got != (Summary{Mean: 1500, PStdev: 500}) {
		t.Fatalf("Summarize = %+v, want {1500 500}", got)
	}

	if _, err := Summarize([]float64{1}); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("Summarize single sample error = %v, want ErrInsufficientData", err)
	}
}
