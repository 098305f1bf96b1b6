// Package units provides the speed and angle unit conversions shared by the
// vehicle geometry code and its callers.
package units

import (
	"errors"
	"strings"
)

// Speed unit identifiers
const (
	MPS  = "mps"
	MPH  = "mph"
	KMPH = "kmph"
	KPH  = "kph"
)

// Angle unit identifiers
const (
	DEG = "deg"
	RAD = "rad"
)

// ErrUnknownUnit is returned when a unit identifier is not recognised.
var ErrUnknownUnit = errors.New("unknown unit")

// ValidUnits contains all valid speed unit values
var ValidUnits = []string{MPS, MPH, KMPH, KPH}

// ValidAngleUnits contains all valid angle unit values
var ValidAngleUnits = []string{DEG, RAD}

// IsValid checks if the given speed unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// IsValidAngle checks if the given angle unit is in the list of valid units
func IsValidAngle(unit string) bool {
	for _, validUnit := range ValidAngleUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid speed units for error messages
func GetValidUnitsString() string {
	return strings.Join(ValidUnits, ", ")
}

// GetValidAngleUnitsString returns a comma-separated string of valid angle units
func GetValidAngleUnitsString() string {
	return strings.Join(ValidAngleUnits, ", ")
}
