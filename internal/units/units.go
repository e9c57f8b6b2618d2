// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package units converts user-specified lengths to points, the internal
// unit used everywhere else in the pipeline.
package units

import (
	"fmt"
	"math"

	"github.com/kchsrinadh/pdf-works/pkg/types"
)

const (
	// PointsPerInch is the PDF point density.
	PointsPerInch = 72.0
	// PointsPerMM converts millimeters to points.
	PointsPerMM = 72.0 / 25.4
)

// ToPoints converts value expressed in unit to points. Margins and padding
// are lengths, so negative and non-finite values are rejected.
func ToPoints(value float64, unit types.Unit) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &types.ConfigError{Field: "spacing", Reason: fmt.Sprintf("length %v is not finite", value)}
	}
	if value < 0 {
		return 0, &types.ConfigError{Field: "spacing", Reason: fmt.Sprintf("length %v is negative", value)}
	}

	switch unit {
	case types.UnitInch:
		return value * PointsPerInch, nil
	case types.UnitMM:
		return value * PointsPerMM, nil
	case types.UnitPoint:
		return value, nil
	}
	return 0, &types.ConfigError{Field: "spacing.unit", Reason: fmt.Sprintf("unknown unit %q", unit)}
}

// FromPoints converts a length in points back to unit, for display.
func FromPoints(pts float64, unit types.Unit) float64 {
	switch unit {
	case types.UnitInch:
		return pts / PointsPerInch
	case types.UnitMM:
		return pts / PointsPerMM
	default:
		return pts
	}
}
