package units

import "fmt"

const mpsPerMPH = 0.44704

// KmphToMps converts a speed in km/h to m/s.
func KmphToMps(kmph float64) float64 {
	return kmph * 1000 / 3600
}

// MpsToKmph converts a speed in m/s to km/h.
func MpsToKmph(mps float64) float64 {
	return mps * 3600 / 1000
}

// ConvertSpeed converts a speed from meters per second to the target units.
// Unknown units fall back to m/s.
func ConvertSpeed(speedMPS float64, targetUnits string) float64 {
	switch targetUnits {
	case MPS:
		return speedMPS
	case MPH:
		return speedMPS / mpsPerMPH
	case KMPH, KPH:
		return MpsToKmph(speedMPS)
	default:
		return speedMPS
	}
}

// ToMPS converts a speed expressed in sourceUnits to meters per second.
// Unknown units are treated as m/s, mirroring ConvertSpeed.
func ToMPS(speed float64, sourceUnits string) float64 {
	switch sourceUnits {
	case MPH:
		return speed * mpsPerMPH
	case KMPH, KPH:
		return KmphToMps(speed)
	default:
		return speed
	}
}

// ConvertSpeedUnits converts between any two valid speed units.
func ConvertSpeedUnits(speed float64, from, to string) (float64, error) {
	if !IsValid(from) {
		return 0, fmt.Errorf("%w %q (valid: %s)", ErrUnknownUnit, from, GetValidUnitsString())
	}
	if !IsValid(to) {
		return 0, fmt.Errorf("%w %q (valid: %s)", ErrUnknownUnit, to, GetValidUnitsString())
	}
	return ConvertSpeed(ToMPS(speed, from), to), nil
}
