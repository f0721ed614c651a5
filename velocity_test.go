package hud

import (
	"errors"
	"testing"
)

func TestComputeVelocity_CentralDifference(t *testing.T) {
	s := VelocitySample{
		Prev:     Pt(0, 0, 0),
		Curr:     Pt(1, 0, 0),
		Next:     Pt(3, 0, 0),
		Interval: 1,
		Scale:    ScaleMeter,
		Unit:     UnitMetersPerSecond,
		FPS:      1,
	}
	v, err := ComputeVelocity(s, 3)
	if err != nil {
		t.Fatalf("ComputeVelocity() error = %v", err)
	}
	// Distances 1 and 2 over two unit intervals average to 1.5.
	if !approx(v.Raw, 1.5) {
		t.Errorf("Raw = %v, want 1.5", v.Raw)
	}
	if !approx(v.Display, 1.5) {
		t.Errorf("Display = %v, want 1.5", v.Display)
	}
	if v.Text != "1.500 m/s" {
		t.Errorf("Text = %q, want %q", v.Text, "1.500 m/s")
	}
}

func TestComputeVelocity_ZeroInterval(t *testing.T) {
	s := VelocitySample{
		Prev: Pt(0, 0, 0),
		Curr: Pt(1, 0, 0),
		Next: Pt(2, 0, 0),
	}
	_, err := ComputeVelocity(s, 3)
	if !errors.Is(err, ErrZeroInterval) {
		t.Errorf("error = %v, want ErrZeroInterval", err)
	}
}

func TestComputeVelocity_StationarySample(t *testing.T) {
	p := Pt(4, 5, 6)
	s := VelocitySample{
		Prev: p, Curr: p, Next: p,
		Interval: 1,
		Scale:    ScaleMeter,
		Unit:     UnitMetersPerSecond,
		FPS:      24,
	}
	v, err := ComputeVelocity(s, 2)
	if err != nil {
		t.Fatalf("ComputeVelocity() error = %v", err)
	}
	if v.Raw != 0 || v.Display != 0 {
		t.Errorf("Raw = %v, Display = %v, want 0 velocity", v.Raw, v.Display)
	}
	if v.Text != "0.00 m/s" {
		t.Errorf("Text = %q, want %q", v.Text, "0.00 m/s")
	}
}

func TestComputeVelocity_UnitConversion(t *testing.T) {
	// One scene unit per frame at 24 fps in a centimeter scene.
	s := VelocitySample{
		Prev:     Pt(0, 0, 0),
		Curr:     Pt(1, 0, 0),
		Next:     Pt(2, 0, 0),
		Interval: 1,
		Scale:    ScaleCentimeter,
		FPS:      24,
	}

	tests := []struct {
		unit DisplayUnit
		want float64
	}{
		// 0.01 m/frame * 24 frames/s = 0.24 m/s.
		{UnitMetersPerSecond, 0.24},
		{UnitMetersPerHour, 864},
		{UnitKilometersPerHour, 0.864},
		{UnitMilesPerHour, 864 * 0.000621371192},
		{UnitFeetPerSecond, 0.24 * 3.28084},
		{UnitFeetPerHour, 864 * 3.28084},
	}
	for _, tt := range tests {
		t.Run(tt.unit.Label(), func(t *testing.T) {
			s.Unit = tt.unit
			v, err := ComputeVelocity(s, 6)
			if err != nil {
				t.Fatalf("ComputeVelocity() error = %v", err)
			}
			if !approx(v.Raw, 1) {
				t.Errorf("Raw = %v, want 1", v.Raw)
			}
			if !approx(v.Display, tt.want) {
				t.Errorf("Display = %v, want %v", v.Display, tt.want)
			}
		})
	}
}

func TestSceneScale_Factor(t *testing.T) {
	tests := []struct {
		scale SceneScale
		want  float64
	}{
		{ScaleMillimeter, 0.001},
		{ScaleCentimeter, 0.01},
		{ScaleMeter, 1},
		{ScaleDecimeter, 0.1},
		{ScaleKilometer, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.scale.String(), func(t *testing.T) {
			if got := tt.scale.Factor(); got != tt.want {
				t.Errorf("Factor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSceneScale(t *testing.T) {
	for _, s := range []SceneScale{ScaleMillimeter, ScaleCentimeter, ScaleMeter, ScaleDecimeter, ScaleKilometer} {
		got, err := ParseSceneScale(s.String())
		if err != nil {
			t.Fatalf("ParseSceneScale(%q) error = %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseSceneScale(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if _, err := ParseSceneScale("furlong"); err == nil {
		t.Error("expected error for unknown scale name")
	}
}

func TestParseDisplayUnit(t *testing.T) {
	units := []DisplayUnit{
		UnitKilometersPerHour, UnitMilesPerHour, UnitMetersPerHour,
		UnitMetersPerSecond, UnitFeetPerHour, UnitFeetPerSecond,
	}
	for _, u := range units {
		got, err := ParseDisplayUnit(u.Label())
		if err != nil {
			t.Fatalf("ParseDisplayUnit(%q) error = %v", u.Label(), err)
		}
		if got != u {
			t.Errorf("ParseDisplayUnit(%q) = %v, want %v", u.Label(), got, u)
		}
	}
	if _, err := ParseDisplayUnit("parsec/h"); err == nil {
		t.Error("expected error for unknown unit label")
	}
}
