//go:build debug

package debuglog

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[voronoi DEBUG] ", log.LstdFlags)

// Printf logs a debug message. Built as a no-op unless the binary is built
// with -tags debug.
func Printf(format string, v ...any) {
	logger.Printf(format, v...)
}
