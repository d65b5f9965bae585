package runperf

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func lineData(data []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, v := range data {
		items = append(items, opts.LineData{Value: int64(v * 1000)})
	}
	return items
}

// RenderChart writes an HTML page showing every iteration's timings and
// the mean of each dimension, in milliseconds.
func RenderChart(w io.Writer, res *Result, s *Samples) error {
	page := components.NewPage()

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: res.Command, Subtitle: "ms per iteration"}))
	xs := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		xs = append(xs, fmt.Sprint(i+1))
	}
	line.SetXAxis(xs).
		AddSeries("real", lineData(s.Real)).
		AddSeries("user", lineData(s.User)).
		AddSeries("sys", lineData(s.Sys))

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "mean", Subtitle: fmt.Sprintf("%d iterations, ms", res.Iterations)}))
	bar.SetXAxis([]string{"real", "user", "sys"})
	bar.AddSeries("mean", []opts.BarData{
		{Value: res.Data.Real.Mean},
		{Value: res.Data.User.Mean},
		{Value: res.Data.Sys.Mean},
	})
	bar.AddSeries("pstdev", []opts.BarData{
		{Value: res.Data.Real.PStdev},
		{Value: res.Data.User.PStdev},
		{Value: res.Data.Sys.PStdev},
	})

	page.AddCharts(line, bar)
	return page.Render(w)
}
