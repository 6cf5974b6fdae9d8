package main

import (
	"fmt"

	"github.com/akeil/planar/pkg/exercise"
)

func doList(long bool) error {
	fmt.Println("Transformation Exercises")
	fmt.Println("------------------------")

	for _, x := range exercise.All() {
		if long {
			showLong(x)
		} else {
			showLine(x)
		}
	}

	return nil
}

func showLine(x exercise.Exercise) {
	fmt.Printf("%2d  %-32v %-10v %v\n",
		x.Number,
		x.Title,
		count(len(x.Shape.Points), "point"),
		count(len(x.Steps), "step"))
}

func showLong(x exercise.Exercise) {
	fmt.Printf("%2d  %v\n", x.Number, x.Title)
	fmt.Printf("    %v\n", x.Description)
	for i, s := range x.Steps {
		fmt.Printf("    %v. %v\n", i+1, s)
	}
	fmt.Println()
}

func count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %v", noun)
	}
	return fmt.Sprintf("%v %vs", n, noun)
}
