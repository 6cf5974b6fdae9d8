// Package plot renders shapes and their transformations to images.
//
// The central type is the Figure, a set of shapes drawn on a common
// coordinate grid with axes, tics and a legend.
// Figures can be written as PNG or SVG, combined into a PDF document
// or arranged on a contact sheet for a quick overview.
package plot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/vdobler/chart"
)

// palette holds the series colors, assigned round-robin.
var palette = []color.Color{
	color.NRGBA{0x37, 0x7e, 0xb8, 0xff},
	color.NRGBA{0x4d, 0xaf, 0x4a, 0xff},
	color.NRGBA{0x98, 0x4e, 0xa3, 0xff},
	color.NRGBA{0xff, 0x7f, 0x00, 0xff},
	color.NRGBA{0xa6, 0x56, 0x28, 0xff},
	color.NRGBA{0xf7, 0x81, 0xbf, 0xff},
	color.NRGBA{0x99, 0x99, 0x99, 0xff},
	color.NRGBA{0xe4, 0x1a, 0x1c, 0xff},
}

var white = color.RGBA{0xff, 0xff, 0xff, 0xff}

// Autostyle styles the i-th series of a chart.
func Autostyle(i int) chart.Style {
	c := palette[i%len(palette)]
	s := chart.Symbol[i%len(chart.Symbol)]
	return chart.Style{
		Symbol:      s,
		SymbolSize:  .5,
		SymbolColor: c,
		LineStyle:   chart.SolidLine,
		LineWidth:   1,
		LineColor:   c,
	}
}

// originalStyle marks the shape before the transformation,
// a solid blue outline with filled markers.
var originalStyle = chart.Style{
	Symbol:      '0',
	SymbolSize:  .75,
	SymbolColor: palette[0],
	LineStyle:   chart.SolidLine,
	LineWidth:   2,
	LineColor:   palette[0],
}

// transformedStyle marks the result of the transformation,
// a dashed red outline.
var transformedStyle = chart.Style{
	Symbol:      '0',
	SymbolSize:  .75,
	SymbolColor: palette[7],
	LineStyle:   chart.DashedLine,
	LineWidth:   2,
	LineColor:   palette[7],
}

// Format is one of the supported output formats.
type Format int

const (
	PNG Format = iota
	SVG
	PDF
)

// ParseFormat converts a string like "png" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	case "pdf":
		return PDF, nil
	default:
		return PNG, fmt.Errorf("invalid format %q", s)
	}
}

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case SVG:
		return "svg"
	case PDF:
		return "pdf"
	default:
		return "UNKNOWN"
	}
}

// Ext returns the file extension for this format, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

func (f *Format) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	x, err := ParseFormat(s)
	if err != nil {
		return err
	}

	*f = x
	return nil
}

func (f Format) MarshalJSON() ([]byte, error) {
	s := f.String()
	if s == "UNKNOWN" {
		return nil, fmt.Errorf("invalid format %v", int(f))
	}

	buf := bytes.NewBufferString(`"`)
	buf.WriteString(s)
	buf.WriteString(`"`)

	return buf.Bytes(), nil
}
