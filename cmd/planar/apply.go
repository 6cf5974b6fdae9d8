package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/akeil/planar"
	"github.com/akeil/planar/internal/fs"
	"github.com/akeil/planar/pkg/plot"
)

func doApply(shapePath, scriptPath string, steps, points []string, trace, matrix bool, plotPath, format string) error {
	shape, err := loadShape(shapePath, points)
	if err != nil {
		return err
	}

	err = shape.Validate()
	if err != nil {
		return err
	}

	pl, err := loadPipeline(scriptPath, steps)
	if err != nil {
		return err
	}

	err = pl.Validate()
	if err != nil {
		return err
	}

	var shapes []planar.Shape
	if trace {
		shapes, err = pl.Trace(shape)
		if err != nil {
			return err
		}
	} else {
		result, err := pl.Apply(shape)
		if err != nil {
			return err
		}
		shapes = []planar.Shape{shape, result}
	}

	err = showShapes(shapes, format)
	if err != nil {
		return err
	}

	if matrix {
		err = showMatrix(pl)
		if err != nil {
			return err
		}
	}

	if plotPath != "" {
		return savePlot(shapes, plotPath)
	}
	return nil
}

func showMatrix(pl planar.Pipeline) error {
	m, err := pl.Matrix()
	if err != nil {
		return err
	}

	fmt.Println("Matrix:")
	fmt.Println(m)
	fmt.Printf("Determinant: %g\n", m.Determinant())

	if inv, ok := m.Inverse(); ok {
		fmt.Println("Inverse:")
		fmt.Println(inv)
	} else {
		fmt.Println("Inverse: none, the matrix is singular")
	}

	return nil
}

func loadShape(path string, args []string) (planar.Shape, error) {
	if path != "" && len(args) != 0 {
		return planar.Shape{}, planar.NewInvalidParameter("pass either a shape file or point arguments, not both")
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return planar.Shape{}, err
		}
		defer f.Close()
		return planar.ReadShape(f)
	}

	if len(args) == 0 {
		return planar.Shape{}, planar.NewInvalidParameter("no input shape, pass x,y points or use --shape")
	}

	pts := make([]planar.Point, 0, len(args))
	for _, arg := range args {
		p, err := planar.ParsePoint(arg)
		if err != nil {
			return planar.Shape{}, err
		}
		pts = append(pts, p)
	}
	return planar.NewShape("Input", pts...), nil
}

func loadPipeline(path string, args []string) (planar.Pipeline, error) {
	if path != "" && len(args) != 0 {
		return nil, planar.NewInvalidParameter("pass either a script file or --step flags, not both")
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return planar.ReadPipeline(f)
	}

	if len(args) == 0 {
		return nil, planar.NewInvalidParameter("no steps, use --step or --script")
	}

	pl := make(planar.Pipeline, 0, len(args))
	for _, arg := range args {
		st, err := planar.ParseStep(arg)
		if err != nil {
			return nil, err
		}
		pl = append(pl, st)
	}
	return pl, nil
}

func showShapes(shapes []planar.Shape, format string) error {
	switch format {
	case "text":
		showText(shapes)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(shapes)
	default:
		return fmt.Errorf("unsupported format, choose one of 'text', 'json'")
	}
}

func showText(shapes []planar.Shape) {
	for _, s := range shapes {
		fmt.Println(s.Name)
		for _, p := range s.Points {
			fmt.Printf("  %v\n", p)
		}
	}
}

func savePlot(shapes []planar.Shape, path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := plot.ParseFormat(ext)
	if err != nil {
		return err
	}

	fig := plot.NewFigure("Transformation")
	if len(shapes) == 2 {
		fig.AddOriginal(shapes[0])
		fig.AddTransformed(shapes[1])
	} else {
		fig.AddTrace(shapes)
	}

	err = fs.WriteAtomic(path, func(w io.Writer) error {
		return writeFigure(w, fig, f, "Transformation")
	})
	if err != nil {
		return err
	}

	if f == plot.PDF {
		err = pdfapi.ValidateFile(path, nil)
		if err != nil {
			return err
		}
	}

	fmt.Printf("%v figure saved as %q.\n", checkmark, path)
	return nil
}
