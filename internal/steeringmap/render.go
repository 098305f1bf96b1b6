package steeringmap

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var errNoSamples = errors.New("no samples to render")

// RenderHTML writes a go-echarts line chart of road-wheel angle and yaw rate
// against steering-wheel angle.
func RenderHTML(w io.Writer, samples []Sample, title string) error {
	if len(samples) == 0 {
		return errNoSamples
	}

	xs := make([]string, 0, len(samples))
	road := make([]opts.LineData, 0, len(samples))
	yaw := make([]opts.LineData, 0, len(samples))
	for _, s := range samples {
		xs = append(xs, fmt.Sprintf("%.1f", s.SteeringWheelDeg))
		road = append(road, opts.LineData{Value: s.RoadWheelDeg})
		yaw = append(yaw, opts.LineData{Value: s.YawRateDeg()})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("samples=%d", len(samples))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "steering wheel (deg)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "deg, deg/s", NameLocation: "middle", NameGap: 40}),
	)
	line.SetXAxis(xs).
		AddSeries("road wheel (deg)", road).
		AddSeries("yaw rate (deg/s)", yaw)

	return line.Render(w)
}

// SavePNG writes a gonum/plot rendering of the sweep to path.
func SavePNG(path string, samples []Sample, title string) error {
	if len(samples) == 0 {
		return errNoSamples
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "steering wheel (deg)"
	p.Y.Label.Text = "deg, deg/s"

	roadPts := make(plotter.XYs, 0, len(samples))
	yawPts := make(plotter.XYs, 0, len(samples))
	for _, s := range samples {
		roadPts = append(roadPts, plotter.XY{X: s.SteeringWheelDeg, Y: s.RoadWheelDeg})
		yawPts = append(yawPts, plotter.XY{X: s.SteeringWheelDeg, Y: s.YawRateDeg()})
	}

	roadLine, err := plotter.NewLine(roadPts)
	if err != nil {
		return fmt.Errorf("road wheel line: %w", err)
	}
	roadLine.Width = vg.Points(1)
	roadLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}

	yawLine, err := plotter.NewLine(yawPts)
	if err != nil {
		return fmt.Errorf("yaw rate line: %w", err)
	}
	yawLine.Width = vg.Points(1)
	yawLine.Color = color.RGBA{R: 255, G: 127, B: 14, A: 255}

	p.Add(plotter.NewGrid(), roadLine, yawLine)
	p.Legend.Add("road wheel (deg)", roadLine)
	p.Legend.Add("yaw rate (deg/s)", yawLine)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
