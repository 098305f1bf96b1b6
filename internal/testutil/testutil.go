// Package testutil provides shared test helpers and fixtures.
package testutil

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/banshee-data/canvehicle/internal/vehicle"
)

// ReferenceParams is a mid-size passenger car used across package tests.
var ReferenceParams = vehicle.Params{
	Wheelbase:                    2.7,
	MinimumTurningRadius:         5.0,
	MaximumSteeringWheelAngleDeg: 530,
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertFloatNear fails the test unless got is within tol of want, either
// absolutely or relative to the larger magnitude.
func AssertFloatNear(t testing.TB, got, want, tol float64) {
	t.Helper()
	if !scalar.EqualWithinAbsOrRel(got, want, tol, tol) {
		t.Errorf("got %g, want %g (tol %g)", got, want, tol)
	}
}

// ConfiguredGeometry returns a geometry configured with p, failing the test
// if p is rejected.
func ConfiguredGeometry(t testing.TB, p vehicle.Params) *vehicle.Geometry {
	t.Helper()
	g, err := vehicle.NewConfigured(p)
	AssertNoError(t, err)
	return g
}
