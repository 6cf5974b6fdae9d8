package plot

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/akeil/planar"
	"github.com/akeil/planar/internal/imaging"
	"github.com/akeil/planar/internal/logging"
)

const (
	tileWidth  = 240
	tileHeight = 180
	tileGap    = 10
)

// ContactSheet sketches each figure's shapes as a small tile
// and arranges the tiles in a grid, written in PNG format.
// Use it to eyeball a whole series of transformations at once.
func ContactSheet(figures []*Figure, cols int, w io.Writer) error {
	if len(figures) == 0 {
		return planar.NewInvalidParameter("contact sheet has no figures")
	}

	logging.Debug("Render contact sheet with %v tiles", len(figures))
	tiles := make([]image.Image, 0, len(figures))
	for _, f := range figures {
		tile, err := sketchTile(f.Shapes())
		if err != nil {
			return planar.Wrap(err, "cannot sketch figure %q", f.Title)
		}
		tiles = append(tiles, tile)
	}

	m := imaging.Montage(tiles, cols, tileWidth, tileHeight, tileGap, color.White)
	return png.Encode(w, m)
}

func sketchTile(shapes []planar.Shape) (image.Image, error) {
	// sketch at double size and scale down, lines stay smooth this way
	img, err := Sketch(shapes, 2*tileWidth, 2*tileHeight)
	if err != nil {
		return nil, err
	}
	return imaging.Thumbnail(img, tileWidth), nil
}
