package cmd

import (
	"os"

	"golang.org/x/term"
)

// terminalWidth returns the width of stdout, or fallback when stdout is not a terminal
func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
