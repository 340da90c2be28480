package output

import (
	"io"
	"os"
)

// IsTTY reports whether the writer is a character device.
// Used to decide whether colors and borders should be rendered.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// ColorEnabled reports whether colored output should be used for the writer.
// Honors the NO_COLOR convention (https://no-color.org).
func ColorEnabled(writer io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTTY(writer)
}
