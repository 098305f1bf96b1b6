// Package vehicle models the geometry of a car-like vehicle with a bicycle
// approximation and converts between steering-wheel angle, road-wheel angle
// and heading angular velocity.
//
// A Geometry starts Unconfigured. Every derived computation returns 0 until
// Configure accepts a parameter set, after which it stays Configured for the
// rest of its lifetime. Invalid parameter sets are rejected at Configure time
// so no derived computation can produce NaN.
package vehicle

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/banshee-data/canvehicle/internal/monitoring"
	"github.com/banshee-data/canvehicle/internal/units"
)

// ErrInvalidGeometry is returned by Configure and Params.Validate when the
// parameters cannot describe a physical vehicle.
var ErrInvalidGeometry = errors.New("invalid vehicle geometry")

// State is the configuration state of a Geometry.
type State int

const (
	// Unconfigured is the initial state; derived computations return 0.
	Unconfigured State = iota
	// Configured means parameters have been accepted from an authoritative source.
	Configured
)

func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Configured:
		return "configured"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Params are the geometric parameters of a vehicle.
type Params struct {
	Wheelbase                    float64 `json:"wheelbase"`                        // metres, front to rear axle
	MinimumTurningRadius         float64 `json:"minimum_turning_radius"`           // metres
	MaximumSteeringWheelAngleDeg float64 `json:"maximum_steering_wheel_angle_deg"` // degrees, at full lock
}

// Validate checks that p can be used by the bicycle-model formulas:
// a positive wheelbase, a turning radius no smaller than the wheelbase
// (so the arcsine argument stays within [0, 1]) and a positive maximum
// steering-wheel angle.
func (p Params) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"wheelbase", p.Wheelbase},
		{"minimum_turning_radius", p.MinimumTurningRadius},
		{"maximum_steering_wheel_angle_deg", p.MaximumSteeringWheelAngleDeg},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidGeometry, f.name, f.value)
		}
	}
	if p.Wheelbase <= 0 {
		return fmt.Errorf("%w: wheelbase must be positive, got %g", ErrInvalidGeometry, p.Wheelbase)
	}
	if p.MinimumTurningRadius < p.Wheelbase {
		return fmt.Errorf("%w: minimum_turning_radius %g must not be smaller than wheelbase %g",
			ErrInvalidGeometry, p.MinimumTurningRadius, p.Wheelbase)
	}
	if p.MaximumSteeringWheelAngleDeg <= 0 {
		return fmt.Errorf("%w: maximum_steering_wheel_angle_deg must be positive, got %g",
			ErrInvalidGeometry, p.MaximumSteeringWheelAngleDeg)
	}
	return nil
}

// Geometry is the vehicle geometry owned by a long-lived component such as a
// CAN translation node. The zero value is an unconfigured geometry ready to use.
// It is safe for one writer and any number of concurrent readers.
type Geometry struct {
	mu   sync.RWMutex
	snap Snapshot
}

// New returns an unconfigured Geometry.
func New() *Geometry {
	return &Geometry{}
}

// NewConfigured returns a Geometry configured with p.
func NewConfigured(p Params) (*Geometry, error) {
	g := New()
	if err := g.Configure(p); err != nil {
		return nil, err
	}
	return g, nil
}

// Configure validates p and stores it, moving the geometry to Configured.
// On error the previous state and parameters are left untouched.
func (g *Geometry) Configure(p Params) error {
	if err := p.Validate(); err != nil {
		monitoring.Logf("vehicle: rejected geometry: %v", err)
		return err
	}

	g.mu.Lock()
	g.snap = Snapshot{state: Configured, params: p}
	g.mu.Unlock()

	monitoring.Logf("vehicle: geometry configured wheelbase=%.3fm min_turning_radius=%.3fm max_steering_wheel=%.1fdeg max_road_wheel=%.2fdeg",
		p.Wheelbase, p.MinimumTurningRadius, p.MaximumSteeringWheelAngleDeg,
		units.RadToDeg(maximumSteeringAngle(p)))
	return nil
}

// Snapshot returns the current state and parameters as one consistent value.
func (g *Geometry) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snap
}

// State returns the configuration state.
func (g *Geometry) State() State {
	return g.Snapshot().State()
}

// IsConfigured reports whether parameters have been accepted.
func (g *Geometry) IsConfigured() bool {
	return g.State() == Configured
}

// Params returns the stored parameters and whether they are valid.
func (g *Geometry) Params() (Params, bool) {
	return g.Snapshot().Params()
}

// MaximumSteeringAngle returns the road-wheel angle in radians at full lock.
func (g *Geometry) MaximumSteeringAngle() float64 {
	return g.Snapshot().MaximumSteeringAngle()
}

// CurrentSteeringAngle maps a steering-wheel angle to a road-wheel angle, both in radians.
func (g *Geometry) CurrentSteeringAngle(steeringWheelRad float64) float64 {
	return g.Snapshot().CurrentSteeringAngle(steeringWheelRad)
}

// SteeringAngleToAngularVelocity returns the heading rate in rad/s.
func (g *Geometry) SteeringAngleToAngularVelocity(speedMps, roadWheelRad float64) float64 {
	return g.Snapshot().SteeringAngleToAngularVelocity(speedMps, roadWheelRad)
}

// SteeringWheelAngle maps a road-wheel angle to a steering-wheel angle, both in radians.
func (g *Geometry) SteeringWheelAngle(roadWheelRad float64) float64 {
	return g.Snapshot().SteeringWheelAngle(roadWheelRad)
}

// AngularVelocityToSteeringAngle returns the road-wheel angle in radians
// needed to turn at yawRate rad/s while moving at speedMps.
func (g *Geometry) AngularVelocityToSteeringAngle(speedMps, yawRate float64) float64 {
	return g.Snapshot().AngularVelocityToSteeringAngle(speedMps, yawRate)
}

// TurningRadius returns the signed turning radius in metres for a road-wheel angle.
func (g *Geometry) TurningRadius(roadWheelRad float64) float64 {
	return g.Snapshot().TurningRadius(roadWheelRad)
}

func maximumSteeringAngle(p Params) float64 {
	return math.Asin(p.Wheelbase / p.MinimumTurningRadius)
}
