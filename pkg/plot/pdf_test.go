package plot

import (
	"bytes"
	"strings"
	"testing"
)

func TestDocumentWrite(t *testing.T) {
	d := NewDocument("Transformations")

	f := NewFigure("Translation")
	f.AddOriginal(square())
	f.AddTransformed(square().Translate(2, 2))
	d.Add(f)

	g := NewFigure("Rotation")
	g.AddOriginal(square())
	g.AddTransformed(square().Rotate(90))
	d.Add(g)

	if d.NumFigures() != 2 {
		t.Fatalf("expected 2 figures, got %v", d.NumFigures())
	}

	var buf bytes.Buffer
	err := d.Write(&buf)
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Error("output does not start with a PDF header")
	}
	if buf.Len() < 1024 {
		t.Errorf("PDF output suspiciously small: %v bytes", buf.Len())
	}
}

func TestDocumentWithBadFigure(t *testing.T) {
	d := NewDocument("broken")
	d.Add(NewFigure("no shapes"))

	var buf bytes.Buffer
	err := d.Write(&buf)
	if err == nil {
		t.Error("expected an error for a document with an empty figure")
	}
}

func TestFormat(t *testing.T) {
	f, err := ParseFormat("svg")
	if err != nil {
		t.Fatal(err)
	}
	if f != SVG {
		t.Errorf("unexpected format %v", f)
	}
	if f.Ext() != ".svg" {
		t.Errorf("unexpected extension %q", f.Ext())
	}

	_, err = ParseFormat("gif")
	if err == nil {
		t.Error("expected an error for an unsupported format")
	}
}
