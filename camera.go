package hud

import (
	"fmt"
	"math"
)

// FilmFit is the policy for reconciling the film-back aspect ratio with
// the viewport aspect ratio.
type FilmFit int

// Film fit modes. Fill and Overscan resolve to Horizontal or Vertical
// depending on the relative aspect ratios; see FilmRectPixels.
const (
	FitFill FilmFit = iota
	FitHorizontal
	FitVertical
	FitOverscan
)

// String returns the film fit mode name.
func (f FilmFit) String() string {
	switch f {
	case FitFill:
		return "Fill"
	case FitHorizontal:
		return "Horizontal"
	case FitVertical:
		return "Vertical"
	case FitOverscan:
		return "Overscan"
	}
	return "Unknown"
}

// ParseFilmFit converts a film fit mode name to its value.
func ParseFilmFit(s string) (FilmFit, error) {
	for f := FitFill; f <= FitOverscan; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return FitFill, fmt.Errorf("hud: unknown film fit mode %q", s)
}

// MillimetersPerInch converts film-back inches to millimeters.
const MillimetersPerInch = 25.4

// Camera holds the film-back parameters of a camera for one evaluation.
// Apertures and offsets are in inches, focal length in millimeters,
// shutter angle in degrees. The struct is a value snapshot; the host
// supplies a fresh one each frame.
type Camera struct {
	ApertureX   float64 // horizontal film aperture
	ApertureY   float64 // vertical film aperture
	LensSqueeze float64 // anamorphic squeeze ratio, 1 for spherical lenses
	FilmFit     FilmFit
	OffsetX     float64 // horizontal film offset
	OffsetY     float64 // vertical film offset
	PanX        float64 // horizontal pan/zoom shift
	PanY        float64 // vertical pan/zoom shift
	Overscan    float64 // 1 means no overscan

	FocalLength   float64
	FStop         float64
	FocusDistance float64
	ShutterAngle  float64
}

// normalized returns the camera with zero squeeze and overscan replaced
// by 1, so that a zero-valued Camera does not divide by zero.
func (c Camera) normalized() Camera {
	if c.LensSqueeze == 0 {
		c.LensSqueeze = 1
	}
	if c.Overscan == 0 {
		c.Overscan = 1
	}
	return c
}

// AspectRatio returns the film-back aspect ratio including lens squeeze.
func (c Camera) AspectRatio() float64 {
	c = c.normalized()
	return (c.ApertureX / c.ApertureY) * c.LensSqueeze
}

// AngleOfViewX returns the horizontal angle of view in degrees.
func (c Camera) AngleOfViewX() float64 {
	return angleOfView(c.ApertureX, c.FocalLength)
}

// AngleOfViewY returns the vertical angle of view in degrees.
func (c Camera) AngleOfViewY() float64 {
	return angleOfView(c.ApertureY, c.FocalLength)
}

func angleOfView(apertureInches, focalLengthMM float64) float64 {
	if focalLengthMM == 0 {
		return 0
	}
	half := math.Atan2(apertureInches*MillimetersPerInch*0.5, focalLengthMM)
	return 2 * half * 180 / math.Pi
}

// Viewport is the pixel size of the render target.
type Viewport struct {
	Width, Height int
}

// Valid reports whether both dimensions are positive. Geometry functions
// assume a valid viewport; callers check before mapping.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// AspectRatio returns width divided by height.
func (v Viewport) AspectRatio() float64 {
	return float64(v.Width) / float64(v.Height)
}
