package anim

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fermatics/raybend/refract"
)

// PathChart builds an interactive chart of the bent ray and the media
// interface, for browser viewing.
func PathChart(path refract.Path, interfaceY float64, title string) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       title,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient: "horizontal",
			Show:   opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x position",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "y position",
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	xs := make([]float64, len(path))
	ray := make([]opts.LineData, len(path))
	boundary := make([]opts.LineData, len(path))
	for i, p := range path {
		xs[i] = p.X
		ray[i] = opts.LineData{Value: p.Y}
		boundary[i] = opts.LineData{Value: interfaceY}
	}

	line.SetXAxis(xs)
	line.AddSeries("light path", ray)
	line.AddSeries("interface", boundary)
	return line
}

// TimeChart builds an interactive chart of the travel-time landscape
// across the crossing bracket, with the solved optimum called out in
// the subtitle.
func TimeChart(xs, times []float64, bestX float64, title string) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       title,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("least-time crossing at x = %.6g", bestX),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "crossing x",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "travel time",
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	data := make([]opts.LineData, len(times))
	for i, t := range times {
		data[i] = opts.LineData{Value: t}
	}
	line.SetXAxis(xs)
	line.AddSeries("travel time", data)
	return line
}

// WritePathChart renders the path chart as a standalone HTML page.
func WritePathChart(w io.Writer, path refract.Path, interfaceY float64, title string) error {
	return PathChart(path, interfaceY, title).Render(w)
}

// WriteTimeChart renders the travel-time chart as a standalone HTML
// page.
func WriteTimeChart(w io.Writer, xs, times []float64, bestX float64, title string) error {
	return TimeChart(xs, times, bestX, title).Render(w)
}
