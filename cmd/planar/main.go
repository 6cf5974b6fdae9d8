package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/akeil/planar"
)

const (
	checkmark = "✓"
	crossmark = "✗"
	ellipsis  = "…"
)

func main() {
	app := kingpin.New("planar", "2D transformation tool")
	app.HelpFlag.Short('h')

	logLevel := app.Flag("log", "Log level").Default("warning").Envar("PLANAR_LOG").String()

	list := app.Command("list", "List the built-in exercises").Default()
	var (
		long = list.Flag("long", "Show the steps for each exercise").Short('l').Bool()
	)

	demo := app.Command("demo", "Render figures for the built-in exercises")
	var (
		format = demo.Flag("format", "Image format (png, svg or pdf)").Short('f').Default("png").String()
		outDir = demo.Flag("output", "Output directory").Short('o').Default(".").String()
		sheet  = demo.Flag("sheet", "Write a contact sheet (PNG) to this file").String()
		nums   = demo.Arg("number", "Render only the given exercises").Ints()
	)

	apply := app.Command("apply", "Apply transformation steps to a shape")
	var (
		shapePath  = apply.Flag("shape", "Read the shape from a JSON file").Short('s').String()
		scriptPath = apply.Flag("script", "Read the steps from a JSON file").String()
		steps      = apply.Flag("step", "A step like 'rotate:90' or 'scale:2@1,1' (repeatable)").Strings()
		trace      = apply.Flag("trace", "Show the shape after each step").Bool()
		matrix     = apply.Flag("matrix", "Show the composed matrix, its determinant and inverse").Short('m').Bool()
		plotPath   = apply.Flag("plot", "Write a figure to this file (.png, .svg or .pdf)").Short('p').String()
		outFormat  = apply.Flag("format", "Output format (text or json)").Short('f').Default("text").String()
		points     = apply.Arg("point", "Input points as x,y pairs").Strings()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	planar.SetLogLevel(*logLevel)

	var err error
	switch command {
	case "list":
		err = doList(*long)
	case "demo":
		err = doDemo(*format, *outDir, *sheet, *nums)
	case "apply":
		err = doApply(*shapePath, *scriptPath, *steps, *points, *trace, *matrix, *plotPath, *outFormat)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
