//go:build !debug

package plinegeom

// Debug logs debug messages if the logger is enabled.
func logDebugf(format string, v ...interface{}) {}
