package plot

import (
	"bytes"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/planar/internal/logging"
)

const tsFormat = "2006-01-02 15:04:05"

// Document is a PDF report with one page per figure.
type Document struct {
	Title   string
	figures []*Figure
}

// NewDocument creates an empty PDF report.
func NewDocument(title string) *Document {
	return &Document{Title: title}
}

// Add appends a figure to the report.
func (d *Document) Add(f *Figure) {
	d.figures = append(d.figures, f)
}

// NumFigures returns the number of figures added so far.
func (d *Document) NumFigures() int {
	return len(d.figures)
}

// Write renders all figures and writes the complete PDF document.
func (d *Document) Write(w io.Writer) error {
	logging.Debug("Render PDF document %q with %v figures", d.Title, len(d.figures))
	pdf := d.setupPDF("A4")

	for _, f := range d.figures {
		err := addFigurePage(pdf, f)
		if err != nil {
			return err
		}
	}

	return pdf.Output(w)
}

func (d *Document) setupPDF(pageSize string) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, pageSize, fontDir)

	pdf.SetMargins(24, 24, 24) // left, top, right
	pdf.AliasNbPages("{totalPages}")
	pdf.SetFont("helvetica", "", 8)
	pdf.SetTextColor(127, 127, 127)
	pdf.SetProducer("planar", true)

	pdf.SetTitle(d.Title, true)
	now := time.Now().UTC()
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-20)
		pdf.SetX(24)
		pdf.Cellf(0, 10, "%d / {totalPages}  |  %v (%v)",
			pdf.PageNo(),
			d.Title,
			now.Local().Format(tsFormat))
	})

	return pdf
}

func addFigurePage(pdf *gofpdf.Fpdf, f *Figure) error {
	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}

	// render to PNG
	var buf bytes.Buffer
	err := f.WritePNG(&buf)
	if err != nil {
		return err
	}

	pdf.AddPage()

	// place the figure title as a headline
	pdf.SetFont("helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 16, f.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("helvetica", "", 8)
	pdf.SetTextColor(127, 127, 127)

	pdf.RegisterImageOptionsReader(name, opts, &buf)

	// The figure is scaled to the (usable) page width
	wPage, _ := pdf.GetPageSize()
	left, top, right, _ := pdf.GetMargins()
	w := wPage - left - right

	x := left
	y := top + 20
	h := 0.0
	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, x, y, w, h, flow, opts, link, linkStr)

	return nil
}
