package anim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SweepPlot saves the travel-time curve as a PNG, with the solved
// optimum marked. The file name's extension picks the encoder, so it
// should end in .png.
func SweepPlot(xs, times []float64, bestX, bestT float64, title, fileName string) error {
	if len(xs) != len(times) {
		return fmt.Errorf("mismatched sweep lengths: %d xs, %d times", len(xs), len(times))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Crossing x"
	p.Y.Label.Text = "Travel time"

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = times[i]
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(curve)

	best, err := plotter.NewScatter(plotter.XYs{{X: bestX, Y: bestT}})
	if err != nil {
		return err
	}
	best.GlyphStyle.Radius = vg.Points(4)
	p.Add(best)

	p.Legend.Add("travel time", curve)
	p.Legend.Add("optimum", best)
	p.Legend.Top = true

	return p.Save(font.Length(600), font.Length(400), fileName)
}

// WriteSweepCSV writes the sampled travel-time curve as CSV rows of
// crossing abscissa and travel time.
func WriteSweepCSV(w io.Writer, xs, times []float64) error {
	if len(xs) != len(times) {
		return fmt.Errorf("mismatched sweep lengths: %d xs, %d times", len(xs), len(times))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"crossing_x", "travel_time"}); err != nil {
		return err
	}
	for i := range xs {
		row := []string{
			strconv.FormatFloat(xs[i], 'g', -1, 64),
			strconv.FormatFloat(times[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
