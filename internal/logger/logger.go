package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Colorized printing functions for the different log levels, built on
// fatih/color. These are package-level variables holding functions that behave
// like fmt.Printf but with text colored appropriately for the level.

// Info logs informational messages in green.
// Green is used for success and progress messages the operator should notice.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta.
// Used for recoverable problems such as invalid input that will be re-prompted.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red.
// Red marks the fatal stage failures that terminate a run.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan when enabled, otherwise is a no-op.
// It is assigned during Init based on the --debug flag.
var Debug func(format string, a ...any)

// Init configures debug logging. When enableDebug is false, Debug is a no-op
// so debug call sites cost nothing in normal runs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

func init() {
	// Callers may log before Init runs (e.g. from package init paths);
	// default to the quiet configuration until the flag is known.
	Init(false)
}
