package plot

import (
	"image"
	"image/png"
	"io"

	"github.com/vdobler/chart/imgg"

	"github.com/akeil/planar/internal/logging"
)

// Image renders the figure to an in-memory RGBA image.
func (f *Figure) Image() (*image.RGBA, error) {
	ch, err := f.build()
	if err != nil {
		return nil, err
	}

	logging.Debug("Render figure %q to %vx%v image", f.Title, f.Width, f.Height)
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	g := imgg.AddTo(img, 0, 0, f.Width, f.Height, white, nil, nil)
	ch.Plot(g)

	return img, nil
}

// WritePNG renders the figure and writes it in PNG format.
func (f *Figure) WritePNG(w io.Writer) error {
	img, err := f.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
