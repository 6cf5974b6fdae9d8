// Package planar implements 2D geometric transformations
// with homogeneous coordinates.
//
// The basic transformations (translate, scale, rotate, shear, reflect)
// are built as 3x3 matrices and combined with matrix multiplication.
// A combined matrix is applied to points, point sets or named shapes
// in a single pass.
//
// The related packages pkg/plot and pkg/exercise render shapes
// to images and hold a set of worked examples.
package planar

import (
	"strings"

	"github.com/akeil/planar/internal/logging"
)

// SetLogLevel controls the amount of log output.
// Accepted levels are "debug", "info", "warning" and "error",
// anything else turns logging off.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
