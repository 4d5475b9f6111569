package record

import (
	"fmt"
	"strings"
)

// Format selects how records are written to the output stream.
type Format int

const (
	Human Format = iota
	CSV
	JSON
	Raw
	HTML
)

var formatNames = []string{"human", "csv", "json", "raw", "html"}

func (f Format) String() string {
	if int(f) >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat resolves a format name, ignoring case and surrounding space.
func ParseFormat(value string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	for i, candidate := range formatNames {
		if candidate == name {
			return Format(i), nil
		}
	}
	return Human, fmt.Errorf("unknown format %q (want one of %s)", value, strings.Join(formatNames, ", "))
}
