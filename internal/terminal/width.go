package terminal

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/term"
)

// DetectWidth returns the column count of f, falling back to the COLUMNS
// environment variable. Zero means the width could not be determined.
func DetectWidth(f *os.File) int {
	if f != nil && term.IsTerminal(f.Fd()) {
		if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
			return w
		}
	}
	return columnsFromEnv()
}

func columnsFromEnv() int {
	value := strings.TrimSpace(os.Getenv("COLUMNS"))
	if value == "" {
		return 0
	}
	w, err := strconv.Atoi(value)
	if err != nil || w <= 0 {
		return 0
	}
	return w
}
