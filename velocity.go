package hud

import (
	"fmt"
	"strconv"
)

// SceneScale declares what one scene distance unit means in the real
// world. The factor converts scene units to meters.
type SceneScale int

// Scene scales, in the order the host enum exposes them.
const (
	ScaleMillimeter SceneScale = iota
	ScaleCentimeter
	ScaleMeter
	ScaleDecimeter
	ScaleKilometer
)

// Factor returns the scene-unit to meter conversion factor.
func (s SceneScale) Factor() float64 {
	switch s {
	case ScaleMillimeter:
		return 0.001
	case ScaleCentimeter:
		return 0.01
	case ScaleMeter:
		return 1.0
	case ScaleDecimeter:
		return 0.1
	case ScaleKilometer:
		return 1000.0
	}
	return 1.0
}

// String returns the scene scale name.
func (s SceneScale) String() string {
	switch s {
	case ScaleMillimeter:
		return "millimeter"
	case ScaleCentimeter:
		return "centimeter"
	case ScaleMeter:
		return "meter"
	case ScaleDecimeter:
		return "decimeter"
	case ScaleKilometer:
		return "kilometer"
	}
	return fmt.Sprintf("SceneScale(%d)", int(s))
}

// ParseSceneScale converts a scene scale name to its value.
func ParseSceneScale(str string) (SceneScale, error) {
	for s := ScaleMillimeter; s <= ScaleKilometer; s++ {
		if s.String() == str {
			return s, nil
		}
	}
	return ScaleMeter, fmt.Errorf("hud: unknown scene scale %q", str)
}

// DisplayUnit selects the unit a speed is displayed in.
type DisplayUnit int

// Display units.
const (
	UnitKilometersPerHour DisplayUnit = iota
	UnitMilesPerHour
	UnitMetersPerHour
	UnitMetersPerSecond
	UnitFeetPerHour
	UnitFeetPerSecond
)

const (
	feetPerMeter  = 3.28084
	milesPerMeter = 0.000621371192
)

// Factor returns the meters-per-frame to display-unit conversion factor
// at the given sampling rate in frames per second.
func (u DisplayUnit) Factor(fps float64) float64 {
	switch u {
	case UnitKilometersPerHour:
		return fps * 60 * 60 * 0.001
	case UnitMilesPerHour:
		return fps * 60 * 60 * milesPerMeter
	case UnitMetersPerHour:
		return fps * 60 * 60
	case UnitMetersPerSecond:
		return fps
	case UnitFeetPerHour:
		return fps * 60 * 60 * feetPerMeter
	case UnitFeetPerSecond:
		return fps * feetPerMeter
	}
	return 0
}

// Label returns the short unit label used in formatted speed text.
func (u DisplayUnit) Label() string {
	switch u {
	case UnitKilometersPerHour:
		return "km/h"
	case UnitMilesPerHour:
		return "mph"
	case UnitMetersPerHour:
		return "m/h"
	case UnitMetersPerSecond:
		return "m/s"
	case UnitFeetPerHour:
		return "ft/h"
	case UnitFeetPerSecond:
		return "ft/s"
	}
	return ""
}

// ParseDisplayUnit converts a display unit label to its value.
func ParseDisplayUnit(label string) (DisplayUnit, error) {
	for u := UnitKilometersPerHour; u <= UnitFeetPerSecond; u++ {
		if u.Label() == label {
			return u, nil
		}
	}
	return UnitKilometersPerHour, fmt.Errorf("hud: unknown display unit %q", label)
}

// VelocitySample holds a moving point observed at three neighboring time
// steps. Interval is the time delta between adjacent samples in frames;
// Scale converts scene distance units to meters; FPS is the sampling rate
// the display unit conversion assumes.
type VelocitySample struct {
	Prev, Curr, Next Point
	Interval         float64
	Scale            SceneScale
	Unit             DisplayUnit
	FPS              float64
}

// Velocity is a computed speed in raw scene units per frame (Raw), in the
// chosen display unit (Display), and formatted for on-screen use (Text).
type Velocity struct {
	Display float64
	Raw     float64
	Text    string
}

// ComputeVelocity estimates the instantaneous speed at the middle sample
// by symmetric finite differencing:
//
//	raw = (|curr-prev| + |curr-next|) / (2 * interval)
//
// The sum of the backward and forward segment lengths is divided by the
// combined time span. Note this is not the average of the two one-sided
// estimates.
//
// precision is the number of decimals in Text. A zero interval returns
// ErrZeroInterval rather than propagating infinity.
func ComputeVelocity(s VelocitySample, precision int) (Velocity, error) {
	if s.Interval == 0 {
		return Velocity{}, ErrZeroInterval
	}

	span := 2.0 * s.Interval
	raw := (s.Curr.Distance(s.Prev) + s.Curr.Distance(s.Next)) / span
	display := raw * s.Scale.Factor() * s.Unit.Factor(s.FPS)

	text := strconv.FormatFloat(display, 'f', precision, 64) + " " + s.Unit.Label()
	return Velocity{Display: display, Raw: raw, Text: text}, nil
}
