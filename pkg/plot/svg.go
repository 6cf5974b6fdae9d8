package plot

import (
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/vdobler/chart/svgg"

	"github.com/akeil/planar/internal/logging"
)

// WriteSVG renders the figure and writes it in SVG format.
func (f *Figure) WriteSVG(w io.Writer) error {
	ch, err := f.build()
	if err != nil {
		return err
	}

	logging.Debug("Render figure %q to SVG", f.Title)
	g := svg.New(w)
	g.StartviewUnit(100, 100, "%", 0, 0, f.Width, f.Height)
	g.Rect(0, 0, f.Width, f.Height, "fill: #ffffff")
	sgr := svgg.AddTo(g, 0, 0, f.Width, f.Height, "", 12, white)
	ch.Plot(sgr)
	g.End()

	return nil
}
