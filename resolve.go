package hud

import (
	"fmt"
	"math"
)

// Multipliers are the global size scales a HUD applies on top of each
// field's own size values.
type Multipliers struct {
	Text  float64
	Point float64
	Line  float64
}

// UnitMultipliers returns multipliers that leave field sizes unchanged.
func UnitMultipliers() Multipliers {
	return Multipliers{Text: 1, Point: 1, Line: 1}
}

// ResolvedField is the draw-ready form of a Field: final position, size,
// text, and styling, with every film-coordinate quantity mapped into the
// space of the FilmRect it was resolved against. Skip marks fields that
// produce no drawing (disabled, or type None).
type ResolvedField struct {
	Skip bool
	Type FieldType

	// X, Y is the mapped primary position; X2, Y2 the mapped second
	// endpoint for 2D lines. 3D fields keep their positions in WorldA
	// and WorldB for the host to transform.
	X, Y   float64
	X2, Y2 float64
	WorldA Point
	WorldB Point

	// Size is the font height, point size, or line width in the
	// rectangle's units (pixels for a pixel-space rectangle).
	Size float64

	Color RGBA
	Alpha float64

	Text     string
	FontName string
	Bold     bool
	Italic   bool
	HAlign   HAlign

	LineStyle LineStyle
}

// ResolveField resolves one field against the film rectangle and the value
// dictionary. Disabled fields and fields of type None resolve to a Skip
// result. A field type outside the known range returns ErrInvalidFieldType.
//
// Resolution is a pure function of its inputs; fields are independent of
// one another and may be resolved in any order. Draw order matters only
// for painter's-algorithm overlap.
func ResolveField(f Field, rect FilmRect, vals Values) (ResolvedField, error) {
	return ResolveFieldScaled(f, rect, vals, UnitMultipliers())
}

// ResolveFieldScaled is ResolveField with global size multipliers applied
// to the field's text size, point size, and line width.
func ResolveFieldScaled(f Field, rect FilmRect, vals Values, m Multipliers) (ResolvedField, error) {
	if !f.Enabled || f.Type == FieldNone {
		return ResolvedField{Skip: true, Type: f.Type}, nil
	}

	switch f.Type {
	case FieldText2D, FieldText3D:
		return resolveText(f, rect, vals, m.Text), nil
	case FieldPoint2D, FieldPoint3D:
		return resolvePoint(f, rect, m.Point), nil
	case FieldLine2D, FieldLine3D:
		return resolveLine(f, rect, m.Line), nil
	}
	return ResolvedField{}, fmt.Errorf("%w: %d", ErrInvalidFieldType, int(f.Type))
}

func resolveText(f Field, rect FilmRect, vals Values, mult float64) ResolvedField {
	text := FormatTemplate(f.Template, [4]Value{f.ValueA, f.ValueB, f.ValueC, f.ValueD}, vals)
	fontSize := rect.MapSize(f.TextSize * mult)

	res := ResolvedField{
		Type:     f.Type,
		Color:    f.TextColor,
		Alpha:    f.TextAlpha,
		Text:     text,
		FontName: f.FontName,
		Bold:     f.TextBold,
		Italic:   f.TextItal,
		HAlign:   f.TextAlign.Horizontal(),
	}

	if f.Type == FieldText3D {
		res.WorldA = f.PosA
		res.Size = math.Trunc(fontSize)
		return res
	}

	x, y := rect.MapPoint(f.PosA.X, f.PosA.Y)
	// The draw primitive anchors text at its baseline only. Emulate
	// middle/top anchoring by shifting down one or two font heights.
	switch f.TextAlign.Vertical() {
	case VAlignMiddle:
		y += -fontSize
	case VAlignTop:
		y += -fontSize * 2.0
	}
	res.X, res.Y = x, y
	res.Size = math.Trunc(fontSize)
	return res
}

func resolvePoint(f Field, rect FilmRect, mult float64) ResolvedField {
	res := ResolvedField{
		Type:  f.Type,
		Size:  rect.MapSize(f.PointSize * mult),
		Color: f.PointColor,
		Alpha: f.PointAlpha,
	}
	if f.Type == FieldPoint3D {
		res.WorldA = f.PosA
		return res
	}
	res.X, res.Y = rect.MapPoint(f.PosA.X, f.PosA.Y)
	return res
}

func resolveLine(f Field, rect FilmRect, mult float64) ResolvedField {
	res := ResolvedField{
		Type:      f.Type,
		Size:      rect.MapSize(f.LineWidth * mult),
		Color:     f.LineColor,
		Alpha:     f.LineAlpha,
		LineStyle: f.LineStyle,
	}
	if f.Type == FieldLine3D {
		res.WorldA = f.PosA
		res.WorldB = f.PosB
		return res
	}
	res.X, res.Y = rect.MapPoint(f.PosA.X, f.PosA.Y)
	res.X2, res.Y2 = rect.MapPoint(f.PosB.X, f.PosB.Y)
	return res
}
