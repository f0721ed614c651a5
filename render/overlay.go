// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"math"

	"github.com/gogpu/hud"
)

// MaskOptions configures the delivery aspect-ratio mask of a preview.
type MaskOptions struct {
	Enable      bool
	AspectRatio float64
	Top         bool
	Bottom      bool
	Color       hud.RGBA
	Alpha       float64
}

// Options configures one Overlay call. The zero value draws fields only,
// with unit size multipliers and no gate or mask.
type Options struct {
	// Background fills the canvas before drawing when its alpha is
	// nonzero; a transparent zero value leaves prior content in place.
	Background hud.RGBA

	ShowGate  bool
	GateColor hud.RGBA
	GateAlpha float64

	Mask MaskOptions

	// Multipliers scale field sizes globally. The zero value means unit.
	Multipliers hud.Multipliers
}

func (o Options) multipliers() hud.Multipliers {
	if o.Multipliers == (hud.Multipliers{}) {
		return hud.UnitMultipliers()
	}
	return o.Multipliers
}

// Overlay renders the HUD for one camera state into the canvas: mask
// bars first, then the gate surround, then every field in list order.
// 3D fields are skipped; the preview has no world-to-screen transform.
// A resolver error aborts the render.
func Overlay(c *Canvas, cam hud.Camera, fields []hud.Field, vals hud.Values, opts Options) error {
	w, h := c.Size()
	vp := hud.Viewport{Width: w, Height: h}
	if !vp.Valid() {
		return fmt.Errorf("render: canvas size %dx%d is not drawable", w, h)
	}

	if opts.Background.A > 0 {
		c.Fill(opts.Background)
	}

	rectPx := hud.FilmRectPixels(cam, vp)
	rectScreen := hud.FilmRectScreen(cam, vp)

	if opts.Mask.Enable {
		tris := hud.MaskTriangles(rectScreen, opts.Mask.AspectRatio, opts.Mask.Top, opts.Mask.Bottom)
		c.drawScreenTriangles(tris, opts.Mask.Color.WithAlpha(opts.Mask.Alpha))
	}
	if opts.ShowGate {
		tris := hud.GateTriangles(rectScreen)
		c.drawScreenTriangles(tris, opts.GateColor.WithAlpha(opts.GateAlpha))
	}

	mult := opts.multipliers()
	for i, f := range fields {
		res, err := hud.ResolveFieldScaled(f, rectPx, vals, mult)
		if err != nil {
			return fmt.Errorf("render: field %d: %w", i, err)
		}
		if res.Skip {
			continue
		}
		hud.Logger().Debug("drawing field",
			"index", i, "type", res.Type.String(), "x", res.X, "y", res.Y)
		switch res.Type {
		case hud.FieldText2D:
			c.drawText(res)
		case hud.FieldPoint2D:
			c.drawPoint(res)
		case hud.FieldLine2D:
			c.drawLine(res)
		}
	}
	return nil
}

// toPixel converts screen coordinates (-1..1, Y up) to image pixels
// (Y down).
func (c *Canvas) toPixel(x, y float64) (float64, float64) {
	w, h := c.Size()
	px := (x + 1) * 0.5 * float64(w)
	py := float64(h) - (y+1)*0.5*float64(h)
	return px, py
}

// flipY converts a film-rectangle pixel Y (origin bottom-left) to an
// image pixel Y (origin top-left).
func (c *Canvas) flipY(y float64) float64 {
	_, h := c.Size()
	return float64(h) - y
}

func (c *Canvas) drawScreenTriangles(tris []hud.Triangle, col hud.RGBA) {
	cc := col.Color()
	for _, tri := range tris {
		ax, ay := c.toPixel(tri.A.X, tri.A.Y)
		bx, by := c.toPixel(tri.B.X, tri.B.Y)
		cx, cy := c.toPixel(tri.C.X, tri.C.Y)
		c.fillPath([][2]float64{{ax, ay}, {bx, by}, {cx, cy}}, cc)
	}
}

func (c *Canvas) drawPoint(res hud.ResolvedField) {
	col := res.Color.WithAlpha(res.Color.A * res.Alpha).Color()
	half := res.Size * 0.5
	c.fillRect(res.X-half, c.flipY(res.Y)-half, res.Size, res.Size, col)
}

func (c *Canvas) drawLine(res hud.ResolvedField) {
	col := res.Color.WithAlpha(res.Color.A * res.Alpha).Color()

	x0, y0 := res.X, c.flipY(res.Y)
	x1, y1 := res.X2, c.flipY(res.Y2)
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit direction and its normal, scaled to half the stroke width.
	ux, uy := dx/length, dy/length
	width := res.Size
	if width < 1 {
		width = 1
	}
	nx, ny := -uy*width*0.5, ux*width*0.5

	on, off := dashPattern(res.LineStyle, width)
	for pos := 0.0; pos < length; pos += on + off {
		end := pos + on
		if end > length {
			end = length
		}
		sx, sy := x0+ux*pos, y0+uy*pos
		ex, ey := x0+ux*end, y0+uy*end
		c.fillQuad(sx+nx, sy+ny, ex+nx, ey+ny, ex-nx, ey-ny, sx-nx, sy-ny, col)
	}
}

// dashPattern returns the painted and skipped run lengths for a line
// style, in pixels. A solid line paints one run covering everything.
func dashPattern(style hud.LineStyle, width float64) (on, off float64) {
	switch style {
	case hud.LineShortDot:
		return width, width
	case hud.LineShortDash:
		return width * 3, width * 2
	case hud.LineDash:
		return width * 6, width * 4
	case hud.LineDot:
		return width * 1.5, width * 1.5
	}
	return math.Inf(1), 0
}
