package runperf

import (
	"errors"
	"math"
)

var (
	ErrNoData           = errors.New("mean requires at least one data point")
	ErrInsufficientData = errors.New("pstdev requires at least two data points")
)

func Mean(data []float64) (float64, error) {
	if len(data) < 1 {
		return 0, ErrNoData
	}
	var sum float64
	for _, x := range data {
		sum += x
	}
	return sum / float64(len(data)), nil
}

// SqDeviation returns the sum of squared deviations from the mean.
func SqDeviation(data []float64) (float64, error) {
	c, err := Mean(data)
	if err != nil {
		return 0, err
	}
	var ss float64
	for _, x := range data {
		ss += (x - c) * (x - c)
	}
	return ss, nil
}

// PStdev returns the population standard deviation of data.
func PStdev(data []float64) (float64, error) {
	n := len(data)
	if n < 2 {
		return 0, ErrInsufficientData
	}
	ss, err := SqDeviation(data)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(ss / float64(n)), nil
}

// Summarize converts second based samples to millisecond statistics,
// truncated toward zero.
func Summarize(data []float64) (Summary, error) {
	m, err := Mean(data)
	if err != nil {
		return Summary{}, err
	}
	sd, err := PStdev(data)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Mean: int64(m * 1000), PStdev: int64(sd * 1000)}, nil
}
