package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/canvehicle/internal/monitoring"
	"github.com/banshee-data/canvehicle/internal/vehicle"
)

var wantParams = vehicle.Params{
	Wheelbase:                    2.7,
	MinimumTurningRadius:         5.0,
	MaximumSteeringWheelAngleDeg: 530,
}

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadVehicleConfigFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "vehicle.json", `{
  "wheelbase": 2.7,
  "minimum_turning_radius": 5.0,
  "maximum_steering_wheel_angle_deg": 530
}`},
		{"yaml", "vehicle.yaml", `wheelbase: 2.7
minimum_turning_radius: 5.0
maximum_steering_wheel_angle_deg: 530
`},
		{"yml", "vehicle.yml", `wheelbase: 2.7
minimum_turning_radius: 5
maximum_steering_wheel_angle_deg: 530.0
`},
		{"toml", "vehicle.toml", `wheelbase = 2.7
minimum_turning_radius = 5.0
maximum_steering_wheel_angle_deg = 530.0
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadVehicleConfig(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			require.True(t, cfg.IsComplete())

			got, err := cfg.Params()
			require.NoError(t, err)
			if diff := cmp.Diff(wantParams, got); diff != "" {
				t.Errorf("Params() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadVehicleConfigErrors(t *testing.T) {
	t.Run("bad extension", func(t *testing.T) {
		_, err := LoadVehicleConfig(writeFile(t, "vehicle.ini", "wheelbase=2.7"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadVehicleConfig(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("too large", func(t *testing.T) {
		big := `{"wheelbase": 2.7, "pad": "` + strings.Repeat("x", maxFileSize) + `"}`
		_, err := LoadVehicleConfig(writeFile(t, "big.json", big))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too large")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadVehicleConfig(writeFile(t, "bad.json", `{"wheelbase": `))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config json")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadVehicleConfig(writeFile(t, "bad.yaml", "wheelbase: [1, 2"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config yaml")
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := LoadVehicleConfig(writeFile(t, "bad.toml", "wheelbase = = 2"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config toml")
	})

	t.Run("wheelbase larger than turning radius", func(t *testing.T) {
		_, err := LoadVehicleConfig(writeFile(t, "v.json",
			`{"wheelbase": 6, "minimum_turning_radius": 5, "maximum_steering_wheel_angle_deg": 530}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, vehicle.ErrInvalidGeometry)
	})

	t.Run("negative field in partial config", func(t *testing.T) {
		_, err := LoadVehicleConfig(writeFile(t, "v.yaml", "wheelbase: -1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wheelbase must be positive")
		assert.ErrorIs(t, err, vehicle.ErrInvalidGeometry)
	})
}

func TestValidatePartialConfigWrapsInvalidGeometry(t *testing.T) {
	tests := []struct {
		name string
		cfg  *VehicleConfig
	}{
		{"zero wheelbase", &VehicleConfig{Wheelbase: ptrFloat64(0)}},
		{"negative radius", &VehicleConfig{MinimumTurningRadius: ptrFloat64(-5)}},
		{"NaN steering wheel angle", &VehicleConfig{MaximumSteeringWheelAngleDeg: ptrFloat64(math.NaN())}},
		{"infinite wheelbase", &VehicleConfig{Wheelbase: ptrFloat64(math.Inf(1)), MinimumTurningRadius: ptrFloat64(5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, tt.cfg.IsComplete())
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, vehicle.ErrInvalidGeometry), "got %v", err)
		})
	}
}

func TestPartialConfig(t *testing.T) {
	cfg, err := LoadVehicleConfig(writeFile(t, "partial.json", `{"wheelbase": 2.7}`))
	require.NoError(t, err)
	assert.False(t, cfg.IsComplete())

	_, err = cfg.Params()
	require.ErrorIs(t, err, ErrIncompleteConfig)
	assert.Contains(t, err.Error(), "minimum_turning_radius, maximum_steering_wheel_angle_deg")

	g := vehicle.New()
	assert.ErrorIs(t, cfg.Apply(g), ErrIncompleteConfig)
	assert.Equal(t, vehicle.Unconfigured, g.State())
}

func TestApply(t *testing.T) {
	g := vehicle.New()
	require.NoError(t, FromParams(wantParams).Apply(g))

	got, ok := g.Params()
	require.True(t, ok)
	if diff := cmp.Diff(wantParams, got); diff != "" {
		t.Errorf("Params() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyVehicleConfig(t *testing.T) {
	cfg := EmptyVehicleConfig()
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.IsComplete())
}

func TestMustLoadDefaultConfig(t *testing.T) {
	cfg := MustLoadDefaultConfig()
	got, err := cfg.Params()
	require.NoError(t, err)
	if diff := cmp.Diff(wantParams, got); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseVehicleConfigUnsupported(t *testing.T) {
	_, err := ParseVehicleConfig([]byte("{}"), ".xml")
	assert.Error(t, err)
}
