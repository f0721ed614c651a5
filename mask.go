package hud

// Triangle is one screen-space triangle of the gate or mask overlay.
// The host draws these with a filled-triangle primitive.
type Triangle struct {
	A, B, C Point
}

// outerExtent is how far past the screen bounds the surround geometry
// reaches. Overshoot costs nothing; the viewport clips it.
const outerExtent = 1.0

// GateTriangles builds the eight triangles that darken the viewport
// outside the film gate. The rectangle must be in screen space
// (FilmRectScreen). Triangles overshoot the screen bounds so that the
// surround stays closed for any gate position.
func GateTriangles(rect FilmRect) []Triangle {
	llx, lly := rect.MapPoint(-1, -1)
	ulx, uly := rect.MapPoint(-1, 1)
	lrx, lry := rect.MapPoint(1, -1)
	urx, ury := rect.MapPoint(1, 1)

	lo := -1.0
	hi := 1.0 + outerExtent

	ll := Point{X: llx, Y: lly}
	ul := Point{X: ulx, Y: uly}
	lr := Point{X: lrx, Y: lry}
	ur := Point{X: urx, Y: ury}

	return []Triangle{
		// Left of the gate.
		{Point{X: lo, Y: lo}, Point{X: lo, Y: hi}, ul},
		{ul, ll, Point{X: lo, Y: lo}},
		// Above the gate.
		{Point{X: lo, Y: hi}, Point{X: hi, Y: hi}, ul},
		{ul, Point{X: hi, Y: hi}, ur},
		// Right of the gate.
		{ur, Point{X: hi, Y: hi}, Point{X: hi, Y: lo}},
		{lr, ur, Point{X: hi, Y: lo}},
		// Below the gate.
		{ll, lr, Point{X: hi, Y: lo}},
		{Point{X: lo, Y: lo}, ll, Point{X: hi, Y: lo}},
	}
}

// MaskTriangles builds the letterbox triangles previewing a target
// delivery aspect ratio inside the film gate. The rectangle must be in
// screen space. top and bottom select which bars are produced; the bars
// run from the gate edge to the aspect-ratio line.
func MaskTriangles(rect FilmRect, aspectRatio float64, top, bottom bool) []Triangle {
	// How far up the gate the target aspect reaches, in normalized film
	// coordinates.
	aspect := (rect.Width / rect.Height) / aspectRatio

	llx, lly := rect.MapPoint(-1, -1)
	ulx, uly := rect.MapPoint(-1, 1)
	lrx, lry := rect.MapPoint(1, -1)
	urx, ury := rect.MapPoint(1, 1)

	ll := Point{X: llx, Y: lly}
	ul := Point{X: ulx, Y: uly}
	lr := Point{X: lrx, Y: lry}
	ur := Point{X: urx, Y: ury}

	var tris []Triangle
	if bottom {
		sx, sy := rect.MapPoint(1.0, -1.0*aspect)
		tris = append(tris,
			Triangle{ll, Point{X: ll.X, Y: sy}, Point{X: sx, Y: sy}},
			Triangle{ll, Point{X: sx, Y: sy}, lr},
		)
	}
	if top {
		sx, sy := rect.MapPoint(1.0, 1.0*aspect)
		tris = append(tris,
			Triangle{ul, Point{X: ul.X, Y: sy}, Point{X: sx, Y: sy}},
			Triangle{ul, Point{X: sx, Y: sy}, ur},
		)
	}
	return tris
}
