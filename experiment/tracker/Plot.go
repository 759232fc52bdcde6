package tracker

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot tracks the return of each epoch and saves a learning curve as
// an image
type Plot struct {
	Return
	window int
}

// NewPlot returns a new Plot Tracker saving to filename. The format of
// the image is determined by the extension of filename. If window > 1,
// a moving average over window epochs is also plotted.
func NewPlot(filename string, window int) *Plot {
	return &Plot{Return: Return{filename: filename}, window: window}
}

// Save implements the Tracker interface
func (p *Plot) Save() error {
	return PlotReturns(p.filename, p.returns, p.window)
}

// PlotReturns plots the return of each epoch to filename, along with
// its moving average over window epochs if window > 1
func PlotReturns(filename string, returns []float64, window int) error {
	if len(returns) == 0 {
		return fmt.Errorf("plotReturns: no returns to plot")
	}

	p := plot.New()
	p.Title.Text = "Return per epoch"
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "Return"

	line, err := plotter.NewLine(epochXYs(returns, 1))
	if err != nil {
		return fmt.Errorf("plotReturns: %v", err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line)
	p.Legend.Add("return", line)

	if window > 1 && len(returns) >= window {
		avg, err := plotter.NewLine(epochXYs(MovingAverage(returns, window),
			window))
		if err != nil {
			return fmt.Errorf("plotReturns: %v", err)
		}
		avg.Color = plotutil.Color(1)
		p.Add(avg)
		p.Legend.Add(fmt.Sprintf("%d epoch average", window), avg)
	}

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

// epochXYs pairs each value with its epoch, starting at epoch first
func epochXYs(values []float64, first int) plotter.XYs {
	points := make(plotter.XYs, len(values))
	for i := range values {
		points[i] = plotter.XY{X: float64(first + i), Y: values[i]}
	}
	return points
}

// MovingAverage returns the averages of each window consecutive values
// of data
func MovingAverage(data []float64, window int) []float64 {
	if window < 1 || len(data) < window {
		return nil
	}

	avg := make([]float64, len(data)-window+1)
	for i := range avg {
		avg[i] = floats.Sum(data[i:i+window]) / float64(window)
	}
	return avg
}
