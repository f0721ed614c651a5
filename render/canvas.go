// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws resolved HUD overlays into images on the CPU.
//
// It exists so a preset can be checked outside any host viewport: build a
// Canvas, call Overlay with a camera and field list, save a PNG. The
// rasterization is a preview, not a viewport reproduction; text uses a
// builtin bitmap face scaled to the resolved size.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/hud"
)

// Canvas is a CPU render target for overlay previews.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas of the given pixel size, filled transparent.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the underlying image. The canvas keeps drawing into it.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill paints the whole canvas with one color, replacing prior content.
func (c *Canvas) Fill(col hud.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := png.Encode(f, c.img); err != nil {
		f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// fillPath rasterizes one closed polygon with antialiasing and draws it
// source-over. Coordinates are in pixels, origin top-left.
func (c *Canvas) fillPath(pts [][2]float64, col color.Color) {
	if len(pts) < 3 {
		return
	}
	w, h := c.Size()
	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Over
	r.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		r.LineTo(float32(p[0]), float32(p[1]))
	}
	r.ClosePath()
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// fillQuad draws an axis-independent quadrilateral.
func (c *Canvas) fillQuad(x0, y0, x1, y1, x2, y2, x3, y3 float64, col color.Color) {
	c.fillPath([][2]float64{{x0, y0}, {x1, y1}, {x2, y2}, {x3, y3}}, col)
}

// fillRect draws an axis-aligned rectangle.
func (c *Canvas) fillRect(x, y, w, h float64, col color.Color) {
	c.fillQuad(x, y, x+w, y, x+w, y+h, x, y+h, col)
}
