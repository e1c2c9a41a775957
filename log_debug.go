//go:build debug

package plinegeom

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[plinegeom DEBUG] ", log.LstdFlags)

// Debug logs debug messages if the logger is enabled.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
