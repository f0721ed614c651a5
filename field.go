package hud

import "fmt"

// FieldType identifies what kind of overlay element a field draws.
type FieldType int

// Field types. 2D variants position in film coordinates mapped through the
// film rectangle; 3D variants carry world-space positions the host maps
// itself.
const (
	FieldNone FieldType = iota
	FieldText2D
	FieldText3D
	FieldPoint2D
	FieldPoint3D
	FieldLine2D
	FieldLine3D
)

// String returns the field type name.
func (t FieldType) String() string {
	switch t {
	case FieldNone:
		return "None"
	case FieldText2D:
		return "Text 2D"
	case FieldText3D:
		return "Text 3D"
	case FieldPoint2D:
		return "Point 2D"
	case FieldPoint3D:
		return "Point 3D"
	case FieldLine2D:
		return "Line 2D"
	case FieldLine3D:
		return "Line 3D"
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// ParseFieldType converts a field type name to its value.
func ParseFieldType(s string) (FieldType, error) {
	for t := FieldNone; t <= FieldLine3D; t++ {
		if t.String() == s {
			return t, nil
		}
	}
	return FieldNone, fmt.Errorf("hud: unknown field type %q", s)
}

// LineStyle selects the stippling pattern of line fields.
type LineStyle int

// Line styles, in the order the draw layer expects them.
const (
	LineSolid LineStyle = iota
	LineShortDot
	LineShortDash
	LineDash
	LineDot
)

// String returns the line style name.
func (s LineStyle) String() string {
	switch s {
	case LineSolid:
		return "Solid Line"
	case LineShortDot:
		return "Short Dotted Line"
	case LineShortDash:
		return "Short Dashed Line"
	case LineDash:
		return "Dashed Line"
	case LineDot:
		return "Dotted Line"
	}
	return fmt.Sprintf("LineStyle(%d)", int(s))
}

// ParseLineStyle converts a line style name to its value.
func ParseLineStyle(str string) (LineStyle, error) {
	for s := LineSolid; s <= LineDot; s++ {
		if s.String() == str {
			return s, nil
		}
	}
	return LineSolid, fmt.Errorf("hud: unknown line style %q", str)
}

// TextAlign anchors text at one of nine named positions.
type TextAlign int

// Text alignment values, bottom row first.
const (
	AlignBottomLeft TextAlign = iota
	AlignBottomCenter
	AlignBottomRight
	AlignMiddleLeft
	AlignMiddleCenter
	AlignMiddleRight
	AlignTopLeft
	AlignTopCenter
	AlignTopRight
)

// String returns the alignment name.
func (a TextAlign) String() string {
	switch a {
	case AlignBottomLeft:
		return "Bottom-Left"
	case AlignBottomCenter:
		return "Bottom-Center"
	case AlignBottomRight:
		return "Bottom-Right"
	case AlignMiddleLeft:
		return "Middle-Left"
	case AlignMiddleCenter:
		return "Middle-Center"
	case AlignMiddleRight:
		return "Middle-Right"
	case AlignTopLeft:
		return "Top-Left"
	case AlignTopCenter:
		return "Top-Center"
	case AlignTopRight:
		return "Top-Right"
	}
	return fmt.Sprintf("TextAlign(%d)", int(a))
}

// ParseTextAlign converts an alignment name to its value.
func ParseTextAlign(s string) (TextAlign, error) {
	for a := AlignBottomLeft; a <= AlignTopRight; a++ {
		if a.String() == s {
			return a, nil
		}
	}
	return AlignBottomLeft, fmt.Errorf("hud: unknown text alignment %q", s)
}

// HAlign is the horizontal component of a TextAlign.
type HAlign int

// Horizontal anchors.
const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)

// VAlign is the vertical component of a TextAlign.
type VAlign int

// Vertical anchors.
const (
	VAlignBottom VAlign = iota
	VAlignMiddle
	VAlignTop
)

// Horizontal returns the left/center/right component of the alignment.
func (a TextAlign) Horizontal() HAlign {
	switch a {
	case AlignBottomLeft, AlignMiddleLeft, AlignTopLeft:
		return HAlignLeft
	case AlignBottomCenter, AlignMiddleCenter, AlignTopCenter:
		return HAlignCenter
	default:
		return HAlignRight
	}
}

// Vertical returns the bottom/middle/top component of the alignment.
func (a TextAlign) Vertical() VAlign {
	switch {
	case a >= AlignTopLeft:
		return VAlignTop
	case a >= AlignMiddleLeft:
		return VAlignMiddle
	default:
		return VAlignBottom
	}
}

// Field is one overlay element. The host supplies the full field list
// fresh each frame; fields have no identity across frames. Sizes and
// widths are percentages of the film-back height (100 = full height).
// Positions are in normalized -1..1 film coordinates for 2D fields and
// local object space for 3D fields.
type Field struct {
	Enabled bool
	Type    FieldType
	PosA    Point
	PosB    Point // second endpoint, line fields only

	PointSize  float64
	PointColor RGBA
	PointAlpha float64

	LineWidth float64
	LineStyle LineStyle
	LineColor RGBA
	LineAlpha float64

	TextSize  float64
	TextAlign TextAlign
	TextBold  bool
	TextItal  bool
	FontName  string
	TextColor RGBA
	TextAlpha float64

	// Template is the literal format string for text fields; see
	// FormatTemplate for the substitution rules.
	Template string

	// ValueA through ValueD are the generic slot values substituted into
	// the template positionally ({0}..{3}) and by name (a, b, c, d).
	ValueA, ValueB, ValueC, ValueD Value
}
