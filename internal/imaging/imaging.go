package imaging

import (
	"image"
	"image/color"
	stddraw "image/draw"

	"golang.org/x/image/draw"
)

// Resize creates a copy of the given image, scaled to width x height.
func Resize(i image.Image, width, height int) image.Image {
	size := image.Rect(0, 0, width, height)

	dst := image.NewRGBA(size)
	// bilinear keeps thin chart lines visible when scaling down
	s := draw.ApproxBiLinear
	s.Scale(dst, size, i, i.Bounds(), draw.Over, nil)
	return dst
}

// Thumbnail scales the image down so that its longer side is maxSide,
// preserving the aspect ratio. Images that already fit are returned as-is.
func Thumbnail(i image.Image, maxSide int) image.Image {
	b := i.Bounds()
	w := b.Dx()
	h := b.Dy()
	if w <= maxSide && h <= maxSide {
		return i
	}

	if w > h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}

	return Resize(i, w, h)
}

// Montage arranges tiles in a grid with the given number of columns
// and returns the combined image. Each cell is tileW x tileH,
// the gap (in pixels) is left empty between cells and around the border.
// Tiles smaller than their cell are centered.
func Montage(tiles []image.Image, cols, tileW, tileH, gap int, bg color.Color) image.Image {
	if cols < 1 {
		cols = 1
	}
	rows := (len(tiles) + cols - 1) / cols

	w := cols*tileW + (cols+1)*gap
	h := rows*tileH + (rows+1)*gap
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	stddraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.ZP, stddraw.Src)

	for n, tile := range tiles {
		col := n % cols
		row := n / cols
		x := gap + col*(tileW+gap)
		y := gap + row*(tileH+gap)

		tb := tile.Bounds()
		x += (tileW - tb.Dx()) / 2
		y += (tileH - tb.Dy()) / 2

		cell := image.Rect(x, y, x+tb.Dx(), y+tb.Dy())
		stddraw.Draw(dst, cell, tile, tb.Min, stddraw.Over)
	}

	return dst
}
