package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/canvehicle/internal/monitoring"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	os.Exit(m.Run())
}

func writeVehicle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vehicle.yaml")
	content := "wheelbase: 2.7\nminimum_turning_radius: 5.0\nmaximum_steering_wheel_angle_deg: 530\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), err
}

func TestConvertSpeed(t *testing.T) {
	out, err := runCLI(t, "convert", "speed", "36")
	require.NoError(t, err)
	assert.Equal(t, "10 mps\n", out)

	out, err = runCLI(t, "convert", "speed", "10", "--from", "mps", "--to", "kmph")
	require.NoError(t, err)
	assert.Equal(t, "36 kmph\n", out)

	_, err = runCLI(t, "convert", "speed", "10", "--from", "knots")
	assert.Error(t, err)
}

func TestConvertAngle(t *testing.T) {
	out, err := runCLI(t, "convert", "angle", "180")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "3.14159"), out)
	assert.True(t, strings.HasSuffix(out, " rad\n"), out)

	out, err = runCLI(t, "convert", "angle", "0", "--from", "rad", "--to", "deg")
	require.NoError(t, err)
	assert.Equal(t, "0 deg\n", out)
}

func TestGeometry(t *testing.T) {
	path := writeVehicle(t)

	out, err := runCLI(t, "geometry", "--config", path, "--steering-wheel", "530", "--speed", "36")
	require.NoError(t, err)
	assert.Contains(t, out, "state:                      configured")
	assert.Contains(t, out, "max road wheel angle:       32.684 deg")
	assert.Contains(t, out, "road wheel angle:           32.684 deg")
	assert.Contains(t, out, "yaw rate at 10.00 m/s")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGeometryReportsWriteError(t *testing.T) {
	cmd := &GeometryCmd{Config: writeVehicle(t), Unit: "kmph"}
	err := cmd.Run(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGeometryRejectsInvalidVehicle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"wheelbase": 6, "minimum_turning_radius": 5, "maximum_steering_wheel_angle_deg": 530}`), 0644))

	_, err := runCLI(t, "geometry", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid vehicle geometry")
}

func TestSteeringMap(t *testing.T) {
	path := writeVehicle(t)
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "map.html")
	pngPath := filepath.Join(dir, "map.png")

	out, err := runCLI(t, "steering-map", "--config", path, "--steps", "5", "--html", htmlPath, "--png", pngPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6)
	assert.FileExists(t, htmlPath)
	assert.FileExists(t, pngPath)
}

func TestSteeringMapMissingConfig(t *testing.T) {
	_, err := runCLI(t, "steering-map", "--config", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "vehicle-info dev"), out)
}
