// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/hud"
)

// drawText renders a resolved text field with the builtin bitmap face,
// scaled so the glyph height matches the resolved font size. The field's
// position is the baseline anchor; horizontal alignment offsets it by
// the measured width.
func (c *Canvas) drawText(res hud.ResolvedField) {
	if res.Text == "" || res.Size <= 0 {
		return
	}

	face := basicfont.Face7x13
	adv := font.MeasureString(face, res.Text).Ceil()
	if adv == 0 {
		return
	}

	// Render at the face's native size into a scratch image, then scale
	// to the resolved size. Nearest-neighbor keeps the bitmap look.
	src := image.NewRGBA(image.Rect(0, 0, adv, face.Height))
	d := font.Drawer{
		Dst:  src,
		Src:  image.NewUniform(res.Color.WithAlpha(res.Color.A * res.Alpha).Color()),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(res.Text)

	scale := res.Size / float64(face.Height)
	dw := float64(adv) * scale
	dh := res.Size

	x := res.X
	switch res.HAlign {
	case hud.HAlignCenter:
		x -= dw / 2
	case hud.HAlignRight:
		x -= dw
	}
	// The baseline sits at ascent height inside the scratch image.
	y := c.flipY(res.Y) - float64(face.Ascent)*scale

	dst := image.Rect(int(x), int(y), int(x+dw), int(y+dh))
	xdraw.NearestNeighbor.Scale(c.img, dst, src, src.Bounds(), xdraw.Over, nil)
}
