package tracker

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart tracks the return and length of each epoch and saves them as
// an interactive HTML chart
type Chart struct {
	returns  []float64
	lengths  []float64
	filename string
	title    string
}

// NewChart returns a new Chart Tracker saving to filename
func NewChart(filename, title string) *Chart {
	return &Chart{filename: filename, title: title}
}

// Track implements the Tracker interface
func (c *Chart) Track(result EpochResult) {
	c.returns = append(c.returns, result.Return)
	c.lengths = append(c.lengths, float64(result.Steps))
}

// Save implements the Tracker interface
func (c *Chart) Save() error {
	file, err := os.Create(c.filename)
	if err != nil {
		return fmt.Errorf("save: could not open chart file: %v", err)
	}
	defer file.Close()

	return ChartReturns(file, c.title, c.returns, c.lengths)
}

// ChartReturns renders an HTML page to w charting the return and, if
// given, the length of each epoch
func ChartReturns(w io.Writer, title string, returns,
	lengths []float64) error {
	epochs := make([]string, len(returns))
	for i := range epochs {
		epochs[i] = fmt.Sprintf("%d", i+1)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)
	line.SetXAxis(epochs).AddSeries("return", lineData(returns))
	if len(lengths) > 0 {
		line.AddSeries("steps", lineData(lengths))
	}

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}

// lineData converts values to chart data points
func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}
