package hud

// FilmRect is the rectangle the camera's film gate occupies inside the
// viewport. Width and Height are the gate size in pixels; the corners are
// either in pixel space (FilmRectPixels) or normalized -1..1 screen space
// (FilmRectScreen). A FilmRect is derived per frame and never stored.
type FilmRect struct {
	Width, Height float64
	LowerLeft     Point
	UpperRight    Point
}

// FilmRectPixels computes the film-gate rectangle in viewport pixel space,
// origin at the lower-left of the viewport.
//
// Fill resolves to Horizontal fit when the viewport is wider than the
// film back and Vertical otherwise; Overscan resolves to the opposite.
// The result is numerically exact: corners may lie outside the viewport
// (Fill crops, offsets shift) and are never clamped, since field placement
// interpolates into this rectangle.
//
// The viewport must be valid (positive dimensions) and the film-back
// apertures positive; see Viewport.Valid.
func FilmRectPixels(cam Camera, vp Viewport) FilmRect {
	cam = cam.normalized()

	portWidth := float64(vp.Width)
	portHeight := float64(vp.Height)
	portAspect := portWidth / portHeight
	filmAspect := cam.AspectRatio()
	squeeze := cam.LensSqueeze

	// Effective aperture with overscan applied.
	apertureX := cam.ApertureX * cam.Overscan
	apertureY := cam.ApertureY * cam.Overscan

	// Resolve Fill and Overscan into a concrete fit direction.
	portHoriz := portAspect > filmAspect
	fit := cam.FilmFit
	switch fit {
	case FitFill:
		if portHoriz {
			fit = FitHorizontal
		} else {
			fit = FitVertical
		}
	case FitOverscan:
		if portHoriz {
			fit = FitVertical
		} else {
			fit = FitHorizontal
		}
	}

	var gateWidth, gateHeight float64
	horizontalFactor := 1.0
	verticalFactor := 1.0
	switch fit {
	case FitHorizontal:
		gateWidth = portWidth * squeeze
		gateHeight = gateWidth / filmAspect
		verticalFactor = (portAspect / filmAspect) * squeeze
	case FitVertical:
		gateHeight = portHeight
		gateWidth = gateHeight * filmAspect * squeeze
		horizontalFactor = (1.0 / portAspect) * filmAspect
	}

	hfa := cam.ApertureX
	vfa := cam.ApertureY
	filmWidth := (hfa / apertureX) * gateWidth * squeeze
	filmHeight := (vfa / apertureY) * gateHeight

	// Pan/zoom shift and film offset, both normalized by the effective
	// aperture. The film offset additionally divides out the squeeze on
	// the horizontal axis.
	viewOffsetX := (cam.PanX / hfa) * (hfa / apertureX)
	viewOffsetY := (cam.PanY / vfa) * (vfa / apertureY)
	filmOffsetX := ((cam.OffsetX / hfa) * (hfa / apertureX)) / squeeze
	filmOffsetY := (cam.OffsetY / vfa) * (vfa / apertureY)

	shiftX := (-viewOffsetX + filmOffsetX) * portWidth * horizontalFactor
	shiftY := (-viewOffsetY + filmOffsetY) * portHeight * verticalFactor

	left := (portWidth-filmWidth)*0.5 + shiftX
	right := portWidth - (portWidth-filmWidth)*0.5 + shiftX
	bottom := (portHeight-filmHeight)*0.5 + shiftY
	top := portHeight - (portHeight-filmHeight)*0.5 + shiftY

	return FilmRect{
		Width:      filmWidth,
		Height:     filmHeight,
		LowerLeft:  Point{X: left, Y: bottom},
		UpperRight: Point{X: right, Y: top},
	}
}

// FilmRectScreen computes the film-gate rectangle with the corners in
// normalized -1..1 screen space. Width and Height stay in pixels.
func FilmRectScreen(cam Camera, vp Viewport) FilmRect {
	px := FilmRectPixels(cam, vp)

	portWidth := float64(vp.Width)
	portHeight := float64(vp.Height)

	left := ((px.LowerLeft.X - portWidth/2) / portWidth) * 2.0
	bottom := ((px.LowerLeft.Y - portHeight/2) / portHeight) * 2.0
	right := ((px.UpperRight.X - portWidth/2) / portWidth) * 2.0
	top := ((px.UpperRight.Y - portHeight/2) / portHeight) * 2.0

	return FilmRect{
		Width:      px.Width,
		Height:     px.Height,
		LowerLeft:  Point{X: left, Y: bottom},
		UpperRight: Point{X: right, Y: top},
	}
}

// MapPoint maps a point in normalized -1..1 film coordinates into the
// rectangle's space, interpolating each axis independently between the
// lower-left and upper-right corners. (-1,-1) is exactly the lower-left
// corner, (1,1) the upper-right, (0,0) the center.
func (r FilmRect) MapPoint(x, y float64) (float64, float64) {
	// Convert from -1..1 to 0..1.
	tx := (x + 1.0) * 0.5
	ty := (y + 1.0) * 0.5
	return lerp(r.LowerLeft.X, r.UpperRight.X, tx), lerp(r.LowerLeft.Y, r.UpperRight.Y, ty)
}

// MapSize converts a size expressed as a percentage of the film-back
// height (100 = full height) into the rectangle's space, by mapping a
// synthetic point offset by the percentage and measuring the delta.
func (r FilmRect) MapSize(pct float64) float64 {
	_, y := r.MapPoint(-1.0, -1.0+pct*0.01*2.0)
	return y - r.LowerLeft.Y
}

func lerp(a, b, t float64) float64 {
	return (1.0-t)*a + t*b
}
