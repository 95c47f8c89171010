// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render rasterizes ppath regions to PNG images for visual
// inspection of boolean-operation results, using
// golang.org/x/image/vector rather than a hand-rolled scanline
// rasterizer: the engine's own job is geometry, not antialiasing, and
// vector.Rasterizer already does the latter well.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/cogentcore/pathbool/geom"
	"github.com/cogentcore/pathbool/paint/ppath"
	"golang.org/x/image/vector"
)

// Options controls how a PathItem is rasterized.
type Options struct {
	Width, Height int
	Fill          color.Color
	Background    color.Color
}

// DefaultOptions returns Options sized to item's bounds with a 10-unit
// margin, filled black on white.
func DefaultOptions(item ppath.PathItem) Options {
	b := item.Bounds()
	w := int(b.Size().X) + 20
	h := int(b.Size().Y) + 20
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Options{Width: w, Height: h, Fill: color.Black, Background: color.White}
}

// Rasterize draws item into a fresh RGBA image per opts.
func Rasterize(item ppath.PathItem, opts Options) *image.RGBA {
	r := vector.NewRasterizer(opts.Width, opts.Height)
	offset := geom.Vec2(10, 10).Sub(item.Bounds().Min)

	for _, p := range itemPaths(item) {
		segs := p.Segments()
		if len(segs) == 0 {
			continue
		}
		first := segs[0].Point.Add(offset)
		r.MoveTo(float32(first.X), float32(first.Y))
		for i := 0; i < len(segs); i++ {
			s := segs[i]
			n := s.Next()
			if n == nil {
				break
			}
			c1 := s.Point.Add(s.HandleOut).Add(offset)
			c2 := n.Point.Add(n.HandleIn).Add(offset)
			end := n.Point.Add(offset)
			r.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(end.X), float32(end.Y))
			if n == segs[0] {
				break
			}
		}
		r.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, opts.Width, opts.Height))
	r.Draw(mask, mask.Bounds(), image.NewUniform(color.Opaque), image.Point{})

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	fg := opts.Fill
	if fg == nil {
		fg = color.Black
	}
	draw.DrawMask(img, img.Bounds(), image.NewUniform(fg), image.Point{}, mask, image.Point{}, draw.Over)
	return img
}

func itemPaths(item ppath.PathItem) []*ppath.Path {
	if cp, ok := item.(*ppath.CompoundPath); ok {
		return cp.Children
	}
	if p, ok := item.(*ppath.Path); ok {
		return []*ppath.Path{p}
	}
	return nil
}

// WritePNG rasterizes item with opts and encodes it as a PNG to w.
func WritePNG(w io.Writer, item ppath.PathItem, opts Options) error {
	img := Rasterize(item, opts)
	return png.Encode(w, img)
}
