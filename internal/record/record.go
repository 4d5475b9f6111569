// Package record defines the log record model shared by the feeder and the
// terminal renderer, along with the record's own machine-readable encodings.
package record

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const csvTimestampLayout = "2006-01-02 15:04:05.000"

// ErrNotSerializable is returned by Record.Format for formats that are not
// plain record encodings.
var ErrNotSerializable = errors.New("format is not a record encoding")

// Record is one structured log line.
type Record struct {
	Timestamp *time.Time
	Tag       string
	Process   string
	Thread    string
	Level     Level
	Message   string
	Raw       string
}

// wireRecord mirrors the NDJSON payload.
type wireRecord struct {
	Timestamp string `json:"timestamp,omitempty"`
	Tag       string `json:"tag"`
	Process   string `json:"process"`
	Thread    string `json:"thread"`
	Level     Level  `json:"level"`
	Message   string `json:"message"`
	Raw       string `json:"raw,omitempty"`
}

// Format serializes the record as a single line in the given format.
func (r Record) Format(f Format) (string, error) {
	switch f {
	case CSV:
		return r.csv()
	case JSON:
		payload, err := json.Marshal(r)
		if err != nil {
			return "", fmt.Errorf("encode record: %w", err)
		}
		return string(payload), nil
	case Raw:
		if r.Raw != "" {
			return r.Raw, nil
		}
		return r.Message, nil
	default:
		return "", fmt.Errorf("%s: %w", f, ErrNotSerializable)
	}
}

func (r Record) csv() (string, error) {
	var ts string
	if r.Timestamp != nil {
		ts = r.Timestamp.Format(csvTimestampLayout)
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{ts, r.Tag, r.Process, r.Thread, r.Level.String(), r.Message}); err != nil {
		return "", fmt.Errorf("encode csv: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("encode csv: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// MarshalJSON encodes the record using RFC3339 timestamps and level letters.
func (r Record) MarshalJSON() ([]byte, error) {
	wire := wireRecord{
		Tag:     r.Tag,
		Process: r.Process,
		Thread:  r.Thread,
		Level:   r.Level,
		Message: r.Message,
		Raw:     r.Raw,
	}
	if r.Timestamp != nil {
		wire.Timestamp = r.Timestamp.Format(time.RFC3339Nano)
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes a record. Unparseable timestamps are treated as
// absent rather than failing the whole record.
func (r *Record) UnmarshalJSON(data []byte) error {
	wire := wireRecord{Level: None}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*r = Record{
		Tag:     wire.Tag,
		Process: wire.Process,
		Thread:  wire.Thread,
		Level:   wire.Level,
		Message: wire.Message,
		Raw:     wire.Raw,
	}
	if ts, ok := parseTime(wire.Timestamp); ok {
		r.Timestamp = &ts
	}
	return nil
}

func parseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	if t, err := time.ParseInLocation(csvTimestampLayout, value, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}
