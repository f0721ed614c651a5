package hud

import (
	"errors"
	"testing"
)

// testRect is a pixel-space rectangle matching a 1000x500 viewport with a
// 500-pixel film height, convenient for size checks.
var testRect = FilmRect{
	Width: 1000, Height: 500,
	LowerLeft:  Point{X: 0, Y: 0},
	UpperRight: Point{X: 1000, Y: 500},
}

func TestResolveField_SkipCases(t *testing.T) {
	tests := []struct {
		name  string
		field Field
	}{
		{"disabled", Field{Enabled: false, Type: FieldText2D}},
		{"type none", Field{Enabled: true, Type: FieldNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ResolveField(tt.field, testRect, nil)
			if err != nil {
				t.Fatalf("ResolveField() error = %v", err)
			}
			if !res.Skip {
				t.Error("expected Skip result")
			}
		})
	}
}

func TestResolveField_InvalidType(t *testing.T) {
	for _, typ := range []FieldType{FieldLine3D + 1, FieldType(99), FieldType(-1)} {
		_, err := ResolveField(Field{Enabled: true, Type: typ}, testRect, nil)
		if !errors.Is(err, ErrInvalidFieldType) {
			t.Errorf("type %d: error = %v, want ErrInvalidFieldType", int(typ), err)
		}
	}
}

func TestResolveField_Text2D(t *testing.T) {
	f := Field{
		Enabled:   true,
		Type:      FieldText2D,
		PosA:      Point{X: -1, Y: 1},
		TextSize:  10,
		TextAlign: AlignBottomLeft,
		TextColor: RGB(1, 1, 1),
		TextAlpha: 1,
		FontName:  "Consolas",
		Template:  "Artist: {user_name}",
	}
	vals := Values{"user_name": Str("alice")}

	res, err := ResolveField(f, testRect, vals)
	if err != nil {
		t.Fatalf("ResolveField() error = %v", err)
	}
	if res.Skip {
		t.Fatal("unexpected Skip")
	}
	if res.Text != "Artist: alice" {
		t.Errorf("Text = %q, want %q", res.Text, "Artist: alice")
	}
	if !approx(res.X, 0) || !approx(res.Y, 500) {
		t.Errorf("position = (%v, %v), want (0, 500)", res.X, res.Y)
	}
	// 10%% of the 500 pixel film height.
	if !approx(res.Size, 50) {
		t.Errorf("Size = %v, want 50", res.Size)
	}
	if res.HAlign != HAlignLeft {
		t.Errorf("HAlign = %v, want left", res.HAlign)
	}
}

func TestResolveField_TextVerticalAlignment(t *testing.T) {
	base := Field{
		Enabled:  true,
		Type:     FieldText2D,
		PosA:     Point{X: 0, Y: 0},
		TextSize: 10, // 50 pixels in testRect
	}

	tests := []struct {
		align TextAlign
		wantY float64
	}{
		{AlignBottomCenter, 250},
		{AlignMiddleCenter, 200},
		{AlignTopCenter, 150},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			f := base
			f.TextAlign = tt.align
			res, err := ResolveField(f, testRect, nil)
			if err != nil {
				t.Fatalf("ResolveField() error = %v", err)
			}
			if !approx(res.Y, tt.wantY) {
				t.Errorf("Y = %v, want %v", res.Y, tt.wantY)
			}
		})
	}
}

func TestResolveField_FormatFallback(t *testing.T) {
	f := Field{
		Enabled:  true,
		Type:     FieldText2D,
		Template: "{missing_key}",
	}
	res, err := ResolveField(f, testRect, Values{})
	if err != nil {
		t.Fatalf("ResolveField() error = %v", err)
	}
	if res.Text != "<UNKNOWN>" {
		t.Errorf("Text = %q, want %q", res.Text, "<UNKNOWN>")
	}
}

func TestResolveField_SlotFormatting(t *testing.T) {
	f := Field{
		Enabled:  true,
		Type:     FieldText2D,
		Template: "{a}",
		ValueA:   Float(5),
	}
	res, err := ResolveField(f, testRect, nil)
	if err != nil {
		t.Fatalf("ResolveField() error = %v", err)
	}
	if res.Text != "5" {
		t.Errorf("Text = %q, want %q", res.Text, "5")
	}
}

func TestResolveField_Point2D(t *testing.T) {
	f := Field{
		Enabled:    true,
		Type:       FieldPoint2D,
		PosA:       Point{X: 1, Y: -1},
		PointSize:  20,
		PointColor: RGB(1, 0, 0),
		PointAlpha: 0.5,
	}
	res, err := ResolveField(f, testRect, nil)
	if err != nil {
		t.Fatalf("ResolveField() error = %v", err)
	}
	if !approx(res.X, 1000) || !approx(res.Y, 0) {
		t.Errorf("position = (%v, %v), want (1000, 0)", res.X, res.Y)
	}
	if !approx(res.Size, 100) {
		t.Errorf("Size = %v, want 100", res.Size)
	}
	if res.Alpha != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", res.Alpha)
	}
}

func TestResolveField_Line2D(t *testing.T) {
	f := Field{
		Enabled:   true,
		Type:      FieldLine2D,
		PosA:      Point{X: -1, Y: 0},
		PosB:      Point{X: 1, Y: 0},
		LineWidth: 1,
		LineStyle: LineDash,
	}
	res, err := ResolveField(f, testRect, nil)
	if err != nil {
		t.Fatalf("ResolveField() error = %v", err)
	}
	if !approx(res.X, 0) || !approx(res.Y, 250) {
		t.Errorf("start = (%v, %v), want (0, 250)", res.X, res.Y)
	}
	if !approx(res.X2, 1000) || !approx(res.Y2, 250) {
		t.Errorf("end = (%v, %v), want (1000, 250)", res.X2, res.Y2)
	}
	if !approx(res.Size, 5) {
		t.Errorf("Size = %v, want 5", res.Size)
	}
	if res.LineStyle != LineDash {
		t.Errorf("LineStyle = %v, want dashed", res.LineStyle)
	}
}

func TestResolveField_3DPassthrough(t *testing.T) {
	f := Field{
		Enabled:   true,
		Type:      FieldLine3D,
		PosA:      Point{X: 1, Y: 2, Z: 3},
		PosB:      Point{X: 4, Y: 5, Z: 6},
		LineWidth: 1,
	}
	res, err := ResolveField(f, testRect, nil)
	if err != nil {
		t.Fatalf("ResolveField() error = %v", err)
	}
	if !res.WorldA.Approx(Point{X: 1, Y: 2, Z: 3}, eps) {
		t.Errorf("WorldA = %v, want input position", res.WorldA)
	}
	if !res.WorldB.Approx(Point{X: 4, Y: 5, Z: 6}, eps) {
		t.Errorf("WorldB = %v, want input position", res.WorldB)
	}
}

func TestResolveFieldScaled_Multipliers(t *testing.T) {
	f := Field{
		Enabled:  true,
		Type:     FieldText2D,
		TextSize: 10,
	}
	res, err := ResolveFieldScaled(f, testRect, nil, Multipliers{Text: 2, Point: 1, Line: 1})
	if err != nil {
		t.Fatalf("ResolveFieldScaled() error = %v", err)
	}
	if !approx(res.Size, 100) {
		t.Errorf("Size = %v, want 100 with doubled text multiplier", res.Size)
	}
}
