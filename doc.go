// Package hud implements the geometry and formatting core of a camera
// heads-up-display overlay.
//
// # Overview
//
// hud computes where a camera's film gate lands inside a viewport, maps
// overlay elements ("fields") from normalized film coordinates into pixel
// or screen space, formats their text against a runtime value dictionary,
// and estimates the speed of a moving point by finite differencing. The
// package is the host-independent half of a viewport HUD: a host 3D
// application supplies camera parameters, viewport dimensions, and field
// records each frame, and issues the actual draw calls from the resolved
// output.
//
// # Quick Start
//
//	cam := hud.Camera{
//	    ApertureX:   1.41732, // 36mm film back, in inches
//	    ApertureY:   0.94488, // 24mm
//	    LensSqueeze: 1.0,
//	    FilmFit:     hud.FitFill,
//	    Overscan:    1.0,
//	}
//	vp := hud.Viewport{Width: 1920, Height: 1080}
//
//	rect := hud.FilmRectPixels(cam, vp)
//	x, y := rect.MapPoint(-1, 1) // upper-left gate corner in pixels
//
// Fields are resolved one at a time:
//
//	res, err := hud.ResolveField(field, rect, values)
//	if err != nil {
//	    // invalid field type
//	}
//	if !res.Skip {
//	    // draw res.Text at res.X, res.Y with res.Size
//	}
//
// # Coordinate Systems
//
// Three spaces are involved:
//   - Normalized film coordinates: -1..1 on both axes, (0,0) at film-back
//     center. Field positions live here.
//   - Pixel space: 0..width, 0..height of the viewport, origin lower-left.
//   - Screen space: -1..1 across the viewport, the usual NDC convention.
//
// FilmRectPixels and FilmRectScreen produce the film-gate rectangle in
// the latter two spaces; FilmRect.MapPoint interpolates normalized film
// coordinates into whichever space the rectangle was computed in.
//
// # Concurrency
//
// All computations are pure functions over their inputs, with no shared
// mutable state; they are safe to call concurrently.
package hud
