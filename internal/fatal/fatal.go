// Package fatal is the single abort path for the binaries. Libraries return
// errors; main turns them into a logged exit after bound cleanup has run.
package fatal

import (
	"fmt"

	"github.com/xlab/closer"

	"spritebox/internal/logging"
)

// exit is swapped in tests.
var exit = closer.Exit

// OnExit registers cleanup that runs on both normal and fatal exit, most recent first.
func OnExit(fn func()) {
	closer.Bind(fn)
}

// Check aborts when err is non-nil.
func Check(err error) {
	if err == nil {
		return
	}
	logging.Logger().Helper()
	logging.Error("%+v", err)
	exit(1)
}

// If aborts with the formatted message when cond holds.
func If(cond bool, format string, args ...interface{}) {
	if !cond {
		return
	}
	logging.Logger().Helper()
	logging.Error("%s", fmt.Sprintf(format, args...))
	exit(1)
}

// Quit runs bound cleanup and exits with status 0.
func Quit() {
	exit(0)
}
