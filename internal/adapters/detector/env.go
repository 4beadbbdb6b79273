// Package detector decides whether diagnostics and logs should be colored.
package detector

import (
	"os"

	"golang.org/x/term"
)

// ColorMode is the user's color preference.
type ColorMode int

const (
	// ColorAuto colors output when stderr is an interactive terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output.
	ColorAlways
	// ColorNever disables colored output.
	ColorNever
)

// ParseColorMode maps a flag value to a ColorMode. Unknown values mean ColorAuto.
func ParseColorMode(flag string) ColorMode {
	switch flag {
	case "always", "true":
		return ColorAlways
	case "never", "false":
		return ColorNever
	default:
		return ColorAuto
	}
}

// DetectColors reports whether stderr supports colored output.
// NO_COLOR and TERM=dumb disable colors even on a terminal.
func DetectColors() bool {
	return detectColors(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv)
}

func detectColors(isTTY bool, getenv func(string) string) bool {
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}

// ResolveColors applies the user's preference to the detected capability.
func ResolveColors(detected bool, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return detected
	}
}
