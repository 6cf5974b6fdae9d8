package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/akeil/planar/internal/fs"
	"github.com/akeil/planar/pkg/exercise"
	"github.com/akeil/planar/pkg/plot"
)

const sheetCols = 4

func doDemo(format, outDir, sheet string, numbers []int) error {
	f, err := plot.ParseFormat(format)
	if err != nil {
		return err
	}

	xs, err := selectExercises(numbers)
	if err != nil {
		return err
	}

	err = os.MkdirAll(outDir, 0755)
	if err != nil {
		return err
	}

	var group errgroup.Group
	for _, x := range xs {
		x := x
		group.Go(func() error {
			return renderExercise(x, f, outDir)
		})
	}

	err = group.Wait()
	if err != nil {
		return err
	}

	if sheet != "" {
		return writeSheet(xs, sheet)
	}
	return nil
}

func selectExercises(numbers []int) ([]exercise.Exercise, error) {
	if len(numbers) == 0 {
		return exercise.All(), nil
	}

	xs := make([]exercise.Exercise, 0, len(numbers))
	for _, n := range numbers {
		x, err := exercise.Find(n)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, nil
}

func renderExercise(x exercise.Exercise, f plot.Format, outDir string) error {
	fmt.Printf("%v render exercise %v %q\n", ellipsis, x.Number, x.Title)

	fig, err := x.Figure()
	if err != nil {
		fmt.Printf("%v Failed to build the figure for exercise %v: %v\n", crossmark, x.Number, err)
		return err
	}

	path := filepath.Join(outDir, fmt.Sprintf("exercise-%02d%v", x.Number, f.Ext()))
	err = fs.WriteAtomic(path, func(w io.Writer) error {
		return writeFigure(w, fig, f, x.Title)
	})
	if err != nil {
		fmt.Printf("%v Failed to write %q: %v\n", crossmark, path, err)
		return err
	}

	if f == plot.PDF {
		err = pdfapi.ValidateFile(path, nil)
		if err != nil {
			fmt.Printf("%v %q is not a valid PDF: %v\n", crossmark, path, err)
			return err
		}
	}

	fmt.Printf("%v exercise %v saved as %q.\n", checkmark, x.Number, path)
	return nil
}

func writeFigure(w io.Writer, fig *plot.Figure, f plot.Format, title string) error {
	switch f {
	case plot.PNG:
		return fig.WritePNG(w)
	case plot.SVG:
		return fig.WriteSVG(w)
	case plot.PDF:
		doc := plot.NewDocument(title)
		doc.Add(fig)
		return doc.Write(w)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

func writeSheet(xs []exercise.Exercise, path string) error {
	fmt.Printf("%v contact sheet with %v figures\n", ellipsis, len(xs))

	figs := make([]*plot.Figure, 0, len(xs))
	for _, x := range xs {
		fig, err := x.Figure()
		if err != nil {
			return err
		}
		figs = append(figs, fig)
	}

	err := fs.WriteAtomic(path, func(w io.Writer) error {
		return plot.ContactSheet(figs, sheetCols, w)
	})
	if err != nil {
		fmt.Printf("%v Failed to write %q: %v\n", crossmark, path, err)
		return err
	}

	fmt.Printf("%v contact sheet saved as %q.\n", checkmark, path)
	return nil
}
