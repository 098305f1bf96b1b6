package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/banshee-data/canvehicle/internal/monitoring"
	"github.com/banshee-data/canvehicle/internal/vehicle"
)

// DefaultConfigPath is the path to the reference vehicle description.
const DefaultConfigPath = "config/vehicle.defaults.json"

const maxFileSize = 1 * 1024 * 1024 // 1MB

// ErrIncompleteConfig is returned when a vehicle description lacks a required field.
var ErrIncompleteConfig = errors.New("incomplete vehicle config")

// VehicleConfig is a vehicle description as read from a parameter file.
// Fields are pointers so a partial file can be told apart from explicit zeros.
type VehicleConfig struct {
	Wheelbase                    *float64 `json:"wheelbase,omitempty" yaml:"wheelbase,omitempty" toml:"wheelbase,omitempty"`
	MinimumTurningRadius         *float64 `json:"minimum_turning_radius,omitempty" yaml:"minimum_turning_radius,omitempty" toml:"minimum_turning_radius,omitempty"`
	MaximumSteeringWheelAngleDeg *float64 `json:"maximum_steering_wheel_angle_deg,omitempty" yaml:"maximum_steering_wheel_angle_deg,omitempty" toml:"maximum_steering_wheel_angle_deg,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }

// EmptyVehicleConfig returns a VehicleConfig with all fields set to nil.
func EmptyVehicleConfig() *VehicleConfig {
	return &VehicleConfig{}
}

// FromParams builds a VehicleConfig holding p.
func FromParams(p vehicle.Params) *VehicleConfig {
	return &VehicleConfig{
		Wheelbase:                    ptrFloat64(p.Wheelbase),
		MinimumTurningRadius:         ptrFloat64(p.MinimumTurningRadius),
		MaximumSteeringWheelAngleDeg: ptrFloat64(p.MaximumSteeringWheelAngleDeg),
	}
}

// LoadVehicleConfig loads a VehicleConfig from a .json, .yaml/.yml or .toml file.
// The file must be under 1MB and its values must pass Validate.
func LoadVehicleConfig(path string) (*VehicleConfig, error) {
	cleanPath := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleanPath))
	switch ext {
	case ".json", ".yaml", ".yml", ".toml":
	default:
		return nil, fmt.Errorf("config file must have .json, .yaml, .yml or .toml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParseVehicleConfig(data, ext)
	if err != nil {
		return nil, err
	}
	monitoring.Debugf("config: loaded vehicle description from %s", cleanPath)
	return cfg, nil
}

// ParseVehicleConfig decodes data in the format implied by ext and validates it.
func ParseVehicleConfig(data []byte, ext string) (*VehicleConfig, error) {
	cfg := EmptyVehicleConfig()
	var err error
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", strings.TrimPrefix(ext, "."), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// MustLoadDefaultConfig loads the reference vehicle description from DefaultConfigPath.
// It searches the current directory and common parent directories.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *VehicleConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadVehicleConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks the fields that are set. A complete config is also checked
// against the geometry rules in vehicle.Params.Validate.
func (c *VehicleConfig) Validate() error {
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"wheelbase", c.Wheelbase},
		{"minimum_turning_radius", c.MinimumTurningRadius},
		{"maximum_steering_wheel_angle_deg", c.MaximumSteeringWheelAngleDeg},
	} {
		if f.value == nil {
			continue
		}
		if math.IsNaN(*f.value) || math.IsInf(*f.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", vehicle.ErrInvalidGeometry, f.name, *f.value)
		}
		if *f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", vehicle.ErrInvalidGeometry, f.name, *f.value)
		}
	}

	if c.IsComplete() {
		p, _ := c.Params()
		return p.Validate()
	}
	return nil
}

// IsComplete reports whether every geometry field is set.
func (c *VehicleConfig) IsComplete() bool {
	return c.Wheelbase != nil && c.MinimumTurningRadius != nil && c.MaximumSteeringWheelAngleDeg != nil
}

// Params converts the config into geometry parameters.
func (c *VehicleConfig) Params() (vehicle.Params, error) {
	var missing []string
	if c.Wheelbase == nil {
		missing = append(missing, "wheelbase")
	}
	if c.MinimumTurningRadius == nil {
		missing = append(missing, "minimum_turning_radius")
	}
	if c.MaximumSteeringWheelAngleDeg == nil {
		missing = append(missing, "maximum_steering_wheel_angle_deg")
	}
	if len(missing) > 0 {
		return vehicle.Params{}, fmt.Errorf("%w: missing %s", ErrIncompleteConfig, strings.Join(missing, ", "))
	}
	return vehicle.Params{
		Wheelbase:                    *c.Wheelbase,
		MinimumTurningRadius:         *c.MinimumTurningRadius,
		MaximumSteeringWheelAngleDeg: *c.MaximumSteeringWheelAngleDeg,
	}, nil
}

// Apply configures g from this vehicle description.
func (c *VehicleConfig) Apply(g *vehicle.Geometry) error {
	p, err := c.Params()
	if err != nil {
		return err
	}
	return g.Configure(p)
}
