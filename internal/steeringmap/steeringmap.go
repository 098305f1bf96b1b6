// Package steeringmap sweeps a configured vehicle geometry across its
// steering-wheel range and renders the resulting road-wheel angle and heading
// rate as a table, an HTML chart or a PNG plot.
package steeringmap

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/banshee-data/canvehicle/internal/units"
	"github.com/banshee-data/canvehicle/internal/vehicle"
)

// ErrNotConfigured is returned when a sweep is requested on an unconfigured geometry.
var ErrNotConfigured = errors.New("vehicle geometry not configured")

// Sample is one point of a steering sweep.
type Sample struct {
	SteeringWheelDeg float64
	RoadWheelDeg     float64
	AngularVelocity  float64 // rad/s
	TurningRadius    float64 // metres, +Inf when driving straight
}

// YawRateDeg returns the angular velocity in deg/s.
func (s Sample) YawRateDeg() float64 {
	return units.RadToDeg(s.AngularVelocity)
}

// Build samples steps evenly spaced steering-wheel angles from full lock one
// way to full lock the other, at a constant speed in m/s.
func Build(g *vehicle.Geometry, speedMps float64, steps int) ([]Sample, error) {
	snap := g.Snapshot()
	params, ok := snap.Params()
	if !ok {
		return nil, ErrNotConfigured
	}
	if steps < 2 {
		return nil, fmt.Errorf("steps must be at least 2, got %d", steps)
	}

	maxDeg := params.MaximumSteeringWheelAngleDeg
	angles := floats.Span(make([]float64, steps), -maxDeg, maxDeg)

	samples := make([]Sample, 0, steps)
	for _, deg := range angles {
		roadWheel := snap.CurrentSteeringAngle(units.DegToRad(deg))
		samples = append(samples, Sample{
			SteeringWheelDeg: deg,
			RoadWheelDeg:     units.RadToDeg(roadWheel),
			AngularVelocity:  snap.SteeringAngleToAngularVelocity(speedMps, roadWheel),
			TurningRadius:    snap.TurningRadius(roadWheel),
		})
	}
	return samples, nil
}

// WriteTable writes samples as aligned text columns.
func WriteTable(w io.Writer, samples []Sample) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "steering_wheel_deg\troad_wheel_deg\tyaw_rate_deg_s\tturning_radius_m\t")
	for _, s := range samples {
		fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t%.2f\t\n", s.SteeringWheelDeg, s.RoadWheelDeg, s.YawRateDeg(), s.TurningRadius)
	}
	return tw.Flush()
}
