// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is a measurement unit for user-specified lengths.
type Unit string

const (
	UnitInch  Unit = "inch"
	UnitMM    Unit = "mm"
	UnitPoint Unit = "pt"
)

// ParseUnit validates and normalizes a unit name.
func ParseUnit(s string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case UnitInch:
		return UnitInch, nil
	case UnitMM:
		return UnitMM, nil
	case UnitPoint:
		return UnitPoint, nil
	}
	return "", &ConfigError{Field: "spacing.unit", Reason: fmt.Sprintf("unknown unit %q: use inch, mm, or pt", s)}
}

// BorderStyle selects the border line treatment.
type BorderStyle string

const (
	StyleSolid   BorderStyle = "solid"
	StyleRounded BorderStyle = "rounded"
	StyleDashed  BorderStyle = "dashed"
	StyleDotted  BorderStyle = "dotted"
)

// ParseBorderStyle validates and normalizes a border style name.
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch BorderStyle(strings.ToLower(strings.TrimSpace(s))) {
	case StyleSolid:
		return StyleSolid, nil
	case StyleRounded:
		return StyleRounded, nil
	case StyleDashed:
		return StyleDashed, nil
	case StyleDotted:
		return StyleDotted, nil
	}
	return "", &ConfigError{Field: "border.style", Reason: fmt.Sprintf("unknown style %q: use solid, rounded, dashed, or dotted", s)}
}

// QualityMode selects the content-transfer strategy.
type QualityMode string

const (
	ModeOriginal QualityMode = "original"
	ModeHigh     QualityMode = "high"
	ModeMedium   QualityMode = "medium"
	ModeStandard QualityMode = "standard"
)

// ParseQualityMode validates and normalizes a quality mode name.
func ParseQualityMode(s string) (QualityMode, error) {
	switch QualityMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeOriginal:
		return ModeOriginal, nil
	case ModeHigh:
		return ModeHigh, nil
	case ModeMedium:
		return ModeMedium, nil
	case ModeStandard:
		return ModeStandard, nil
	}
	return "", &ConfigError{Field: "quality.mode", Reason: fmt.Sprintf("unknown mode %q: use original, high, medium, or standard", s)}
}

// Location places overlay text relative to the border.
type Location string

const (
	LocationInside  Location = "inside"
	LocationOutside Location = "outside"
)

// ParseLocation validates and normalizes a location name.
func ParseLocation(s string) (Location, error) {
	switch Location(strings.ToLower(strings.TrimSpace(s))) {
	case LocationInside:
		return LocationInside, nil
	case LocationOutside:
		return LocationOutside, nil
	}
	return "", &ConfigError{Field: "location", Reason: fmt.Sprintf("unknown location %q: use inside or outside", s)}
}

// VAlign and HAlign are the vertical and horizontal components of an
// overlay anchor position.
type VAlign string

type HAlign string

const (
	VTop    VAlign = "top"
	VMiddle VAlign = "middle"
	VBottom VAlign = "bottom"

	HLeft   HAlign = "left"
	HCenter HAlign = "center"
	HRight  HAlign = "right"
)

// Position is one of the nine named overlay anchors, a vertical and a
// horizontal component.
type Position struct {
	V VAlign
	H HAlign
}

func (p Position) String() string {
	return string(p.V) + "-" + string(p.H)
}

// ParsePosition parses anchors like "bottom-center" or "top-left". The
// bare token "center" means the page middle.
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "center" || s == "middle-center" || s == "center-center" {
		return Position{V: VMiddle, H: HCenter}, nil
	}

	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Position{}, &ConfigError{Field: "position", Reason: fmt.Sprintf("malformed position %q", s)}
	}

	var p Position
	switch parts[0] {
	case "top":
		p.V = VTop
	case "middle", "center":
		p.V = VMiddle
	case "bottom":
		p.V = VBottom
	default:
		return Position{}, &ConfigError{Field: "position", Reason: fmt.Sprintf("unknown vertical anchor %q", parts[0])}
	}
	switch parts[1] {
	case "left":
		p.H = HLeft
	case "center":
		p.H = HCenter
	case "right":
		p.H = HRight
	default:
		return Position{}, &ConfigError{Field: "position", Reason: fmt.Sprintf("unknown horizontal anchor %q", parts[1])}
	}
	return p, nil
}

// Color is an RGB color with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// RGB returns the channels as ints, the form the canvas expects.
func (c Color) RGB() (int, int, int) {
	return int(c.R), int(c.G), int(c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Hex returns the color as "#rrggbb" for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses "R,G,B" with each channel 0-255.
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, &ConfigError{Field: "color", Reason: fmt.Sprintf("malformed color %q: want \"R,G,B\"", s)}
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return Color{}, &ConfigError{Field: "color", Reason: fmt.Sprintf("channel %q out of range 0-255", strings.TrimSpace(p))}
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// BorderSpec is the resolved border description, process-wide and immutable.
type BorderSpec struct {
	Style        BorderStyle
	WidthPt      float64
	Color        Color
	CornerRadius float64
}

// OverlaySpec is the shared core of the two overlay kinds. Format holds the
// number template for page numbers and the literal text for titles.
type OverlaySpec struct {
	Enabled    bool
	Format     string
	Position   Position
	Location   Location
	FontSize   float64
	FontColor  Color
	FontFamily string
	MarginPt   float64
}

// NumberSpec is the resolved page-number overlay configuration.
type NumberSpec struct {
	OverlaySpec
	StartNumber int
	SkipFirst   int
	SkipLast    int
}

// TitleSpec is the resolved title overlay configuration.
type TitleSpec struct {
	OverlaySpec
	OnlyFirstPage bool
}

// Request is the resolved, immutable processing request for one run: merged
// configuration and CLI overrides with all lengths converted to points.
// It is constructed once and read by every page.
type Request struct {
	// PageExpr is the raw page selector expression.
	PageExpr string

	Mode           QualityMode
	DPI            int
	PreserveAspect bool
	Unit           Unit

	OuterMarginPt  float64
	InnerPaddingPt float64

	Border  BorderSpec
	Numbers NumberSpec
	Title   TitleSpec

	Confirm bool
}
