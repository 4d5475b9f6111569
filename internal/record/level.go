package record

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Level is the severity of a log record. The zero value is Trace.
type Level int

const (
	Trace Level = iota
	Verbose
	Debug
	Info
	Warn
	Error
	Fatal
	Assert
	None
)

var levelNames = map[Level]string{
	Trace:   "T",
	Verbose: "V",
	Debug:   "D",
	Info:    "I",
	Warn:    "W",
	Error:   "E",
	Fatal:   "F",
	Assert:  "A",
	None:    "-",
}

// String returns the single letter used in rendered output.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "-"
}

// ParseLevel accepts the display letter or the full level name, ignoring
// case. Anything else maps to None.
func ParseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "t", "trace":
		return Trace
	case "v", "verbose":
		return Verbose
	case "d", "debug":
		return Debug
	case "i", "info":
		return Info
	case "w", "warn", "warning":
		return Warn
	case "e", "error":
		return Error
	case "f", "fatal":
		return Fatal
	case "a", "assert":
		return Assert
	default:
		return None
	}
}

// MarshalJSON encodes the level as its display letter.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a letter or full level name.
func (l *Level) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode level: %w", err)
	}
	*l = ParseLevel(raw)
	return nil
}
