package units

import (
	"fmt"
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// ConvertAngle converts an angle between deg and rad.
func ConvertAngle(value float64, from, to string) (float64, error) {
	if !IsValidAngle(from) {
		return 0, fmt.Errorf("%w %q (valid: %s)", ErrUnknownUnit, from, GetValidAngleUnitsString())
	}
	if !IsValidAngle(to) {
		return 0, fmt.Errorf("%w %q (valid: %s)", ErrUnknownUnit, to, GetValidAngleUnitsString())
	}
	if from == to {
		return value, nil
	}
	if from == DEG {
		return DegToRad(value), nil
	}
	return RadToDeg(value), nil
}
