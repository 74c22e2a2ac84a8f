package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ParseColorMode normalizes a --color value. Empty means ColorAuto; any
// other unknown mode is a user error.
func ParseColorMode(mode string) (string, error) {
	switch normalized := strings.ToLower(strings.TrimSpace(mode)); normalized {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return normalized, nil
	default:
		return "", NewUserError(fmt.Sprintf("invalid --color %q: want never, always or auto", mode))
	}
}

// ResolveColorMode reports whether styled output should be used for a
// parsed color mode. ColorAuto defers to isTTY.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether writer is a terminal, including Cygwin and MSYS
// pseudo-terminals on Windows.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
