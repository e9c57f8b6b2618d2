// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"strings"
	"testing"

	"github.com/kchsrinadh/pdf-works/pkg/types"
)

func TestSelect(t *testing.T) {
	all := Capabilities{VectorEmbed: true, Rasterize: true, RendererName: "pdftoppm"}
	none := Capabilities{}

	tests := []struct {
		name          string
		requested     types.QualityMode
		caps          Capabilities
		wantMode      types.QualityMode
		wantDowngrade bool
	}{
		{name: "original supported", requested: types.ModeOriginal, caps: all, wantMode: types.ModeOriginal},
		{name: "original unsupported", requested: types.ModeOriginal, caps: none, wantMode: types.ModeStandard, wantDowngrade: true},
		{name: "high supported", requested: types.ModeHigh, caps: all, wantMode: types.ModeHigh},
		{name: "high without renderer", requested: types.ModeHigh, caps: Capabilities{VectorEmbed: true}, wantMode: types.ModeStandard, wantDowngrade: true},
		{name: "medium supported", requested: types.ModeMedium, caps: all, wantMode: types.ModeMedium},
		{name: "medium without renderer", requested: types.ModeMedium, caps: none, wantMode: types.ModeStandard, wantDowngrade: true},
		{name: "standard never downgrades", requested: types.ModeStandard, caps: none, wantMode: types.ModeStandard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, warnings := Select(tt.requested, tt.caps)
			if mode != tt.wantMode {
				t.Errorf("mode = %v, want %v", mode, tt.wantMode)
			}
			if tt.wantDowngrade {
				if len(warnings) != 1 {
					t.Fatalf("warnings = %v, want exactly one", warnings)
				}
				if !strings.Contains(warnings[0], string(tt.requested)) {
					t.Errorf("warning should name the requested mode, got %q", warnings[0])
				}
				if !strings.Contains(warnings[0], "using standard") {
					t.Errorf("warning should name the fallback, got %q", warnings[0])
				}
			} else if len(warnings) != 0 {
				t.Errorf("warnings = %v, want none", warnings)
			}
		})
	}
}

func TestEffectiveDPI(t *testing.T) {
	tests := []struct {
		name string
		mode types.QualityMode
		dpi  int
		want int
	}{
		{name: "high passes through", mode: types.ModeHigh, dpi: 300, want: 300},
		{name: "high clamps low", mode: types.ModeHigh, dpi: 10, want: 72},
		{name: "high clamps high", mode: types.ModeHigh, dpi: 1200, want: 600},
		{name: "medium capped", mode: types.ModeMedium, dpi: 300, want: 150},
		{name: "medium below cap", mode: types.ModeMedium, dpi: 96, want: 96},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := effectiveDPI(tt.mode, tt.dpi); got != tt.want {
				t.Errorf("effectiveDPI(%v, %d) = %d, want %d", tt.mode, tt.dpi, got, tt.want)
			}
		})
	}
}

func TestProbeVectorEmbedMissingFile(t *testing.T) {
	if probeVectorEmbed("does-not-exist.pdf", 1) {
		t.Error("probe succeeded on a missing file")
	}
}
