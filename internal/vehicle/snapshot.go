package vehicle

import (
	"math"

	"github.com/banshee-data/canvehicle/internal/units"
)

// Snapshot is an immutable copy of a Geometry. A control loop takes one per
// tick so that every query in the tick sees the same parameter set.
// Only Geometry.Snapshot produces a configured value; the zero Snapshot is
// Unconfigured and all its methods return 0.
type Snapshot struct {
	state  State
	params Params
}

// State returns the configuration state captured by the snapshot.
func (s Snapshot) State() State {
	return s.state
}

// Configured reports whether the snapshot holds valid parameters.
func (s Snapshot) Configured() bool {
	return s.state == Configured
}

// Params returns the captured parameters and whether they are valid.
func (s Snapshot) Params() (Params, bool) {
	return s.params, s.Configured()
}

// MaximumSteeringAngle returns asin(wheelbase / minimum turning radius), radians.
func (s Snapshot) MaximumSteeringAngle() float64 {
	if !s.Configured() {
		return 0
	}
	return maximumSteeringAngle(s.params)
}

// CurrentSteeringAngle scales a steering-wheel angle linearly by the ratio of
// the maximum road-wheel angle to the maximum steering-wheel angle.
func (s Snapshot) CurrentSteeringAngle(steeringWheelRad float64) float64 {
	if !s.Configured() {
		return 0
	}
	return steeringWheelRad * s.MaximumSteeringAngle() / units.DegToRad(s.params.MaximumSteeringWheelAngleDeg)
}

// SteeringAngleToAngularVelocity returns tan(roadWheelRad) * speedMps / wheelbase.
// The result is not clamped and grows without bound as the angle nears ±π/2.
func (s Snapshot) SteeringAngleToAngularVelocity(speedMps, roadWheelRad float64) float64 {
	if !s.Configured() {
		return 0
	}
	return math.Tan(roadWheelRad) * speedMps / s.params.Wheelbase
}

// SteeringWheelAngle is the inverse of CurrentSteeringAngle.
func (s Snapshot) SteeringWheelAngle(roadWheelRad float64) float64 {
	if !s.Configured() {
		return 0
	}
	return roadWheelRad * units.DegToRad(s.params.MaximumSteeringWheelAngleDeg) / s.MaximumSteeringAngle()
}

// AngularVelocityToSteeringAngle is the inverse of SteeringAngleToAngularVelocity
// for road-wheel angles in (-π/2, π/2). At standstill no steering angle
// produces a heading change, so 0 is returned.
func (s Snapshot) AngularVelocityToSteeringAngle(speedMps, yawRate float64) float64 {
	if !s.Configured() || speedMps == 0 {
		return 0
	}
	return math.Atan(yawRate * s.params.Wheelbase / speedMps)
}

// TurningRadius returns wheelbase / sin(roadWheelRad), matching the relation
// used by MaximumSteeringAngle. Driving straight gives +Inf.
func (s Snapshot) TurningRadius(roadWheelRad float64) float64 {
	if !s.Configured() {
		return 0
	}
	sin := math.Sin(roadWheelRad)
	if sin == 0 {
		return math.Inf(1)
	}
	return s.params.Wheelbase / sin
}
