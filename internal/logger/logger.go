package logger

import (
	"io"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// output is where every console message goes. It defaults to color.Output,
// the colorable stdout, and is swapped out by tests through SetOutput.
var output io.Writer = color.Output

// Colors for the different log levels.
// Status lines share the Info color but carry no level prefix, since they are
// the progress messages a user watches while the package manager runs.
var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

// Info logs informational messages in green color.
func Info(format string, a ...any) {
	infoColor.Fprintf(output, format, a...)
}

// Warn logs warning messages in bright magenta color.
func Warn(format string, a ...any) {
	warnColor.Fprintf(output, format, a...)
}

// Error logs error messages in red color.
func Error(format string, a ...any) {
	errorColor.Fprintf(output, format, a...)
}

// Status prints one progress line, e.g. "Trying pip3 first...".
func Status(line string) {
	infoColor.Fprintln(output, line)
}

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is reassigned by Init based on the --debug flag.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
// When enabled, Debug prints cyan-colored messages to the current output.
// When disabled, Debug is a no-op that silently drops its arguments.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = func(format string, a ...any) {
			debugColor.Fprintf(output, format, a...)
		}
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// SetOutput redirects all console logging to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}
