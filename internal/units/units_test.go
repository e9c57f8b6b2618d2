// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"math"
	"testing"

	"github.com/kchsrinadh/pdf-works/pkg/types"
)

func TestToPoints(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		unit    types.Unit
		want    float64
		wantErr bool
	}{
		{name: "inches", value: 0.5, unit: types.UnitInch, want: 36},
		{name: "one inch", value: 1, unit: types.UnitInch, want: 72},
		{name: "millimeters", value: 25.4, unit: types.UnitMM, want: 72},
		{name: "points pass through", value: 12.5, unit: types.UnitPoint, want: 12.5},
		{name: "zero is allowed", value: 0, unit: types.UnitInch, want: 0},
		{name: "negative rejected", value: -1, unit: types.UnitInch, wantErr: true},
		{name: "NaN rejected", value: math.NaN(), unit: types.UnitPoint, wantErr: true},
		{name: "infinity rejected", value: math.Inf(1), unit: types.UnitMM, wantErr: true},
		{name: "unknown unit rejected", value: 1, unit: types.Unit("furlong"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPoints(tt.value, tt.unit)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v pt, want %v pt", got, tt.want)
			}
		})
	}
}

func TestFromPointsRoundTrip(t *testing.T) {
	for _, unit := range []types.Unit{types.UnitInch, types.UnitMM, types.UnitPoint} {
		pts, err := ToPoints(1.25, unit)
		if err != nil {
			t.Fatalf("ToPoints(%v): %v", unit, err)
		}
		if back := FromPoints(pts, unit); math.Abs(back-1.25) > 1e-9 {
			t.Errorf("round trip through %v: got %v, want 1.25", unit, back)
		}
	}
}
