package plot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/akeil/planar"
)

// Sketch paints shapes as plain colored outlines without axes,
// labels or legend. It is meant for small preview tiles where chart
// decorations would be unreadable anyway.
//
// The first shape is drawn solid, all following shapes dashed,
// with colors from the palette. Single points become dots.
func Sketch(shapes []planar.Shape, width, height int) (*image.RGBA, error) {
	if len(shapes) == 0 {
		return nil, planar.NewInvalidParameter("nothing to sketch")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.ZP, draw.Src)

	toPixel := fitViewport(shapes, width, height)
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetLineWidth(2)

	for i, s := range shapes {
		c := palette[i%len(palette)]
		gc.SetStrokeColor(c)
		gc.SetFillColor(withAlpha(c, 0x30))
		if i == 0 {
			gc.SetLineDash(nil, 0)
		} else {
			gc.SetLineDash([]float64{6, 4}, 0)
		}

		paintShape(gc, s, toPixel)
	}

	return img, nil
}

// WriteSketch paints the shapes and writes the result in PNG format.
func WriteSketch(shapes []planar.Shape, width, height int, w io.Writer) error {
	img, err := Sketch(shapes, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func paintShape(gc *draw2dimg.GraphicContext, s planar.Shape, toPixel func(planar.Point) (float64, float64)) {
	if s.IsPoint() {
		x, y := toPixel(s.Points[0])
		draw2dkit.Circle(gc, x, y, 4)
		gc.FillStroke()
		return
	}

	for i, p := range s.Points {
		x, y := toPixel(p)
		if i == 0 {
			gc.MoveTo(x, y)
		} else {
			gc.LineTo(x, y)
		}
	}

	if len(s.Points) >= 3 {
		gc.Close()
		gc.FillStroke()
	} else {
		gc.Stroke()
	}
}

// fitViewport maps data coordinates to pixels, preserving the aspect
// ratio and flipping the y-axis (pixel y grows downwards).
func fitViewport(shapes []planar.Shape, width, height int) func(planar.Point) (float64, float64) {
	var all planar.PointSet
	for _, s := range shapes {
		all = append(all, s.Points...)
	}
	b := all.Bounds()

	span := math.Max(b.Width, b.Height)
	pad := math.Max(span*0.1, minPad)
	span += 2 * pad

	c := b.Center()
	scale := math.Min(float64(width), float64(height)) / span

	cx := float64(width) / 2
	cy := float64(height) / 2

	return func(p planar.Point) (float64, float64) {
		x := cx + (p.X-c.X)*scale
		y := cy - (p.Y-c.Y)*scale
		return x, y
	}
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), a}
}
