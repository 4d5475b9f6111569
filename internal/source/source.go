// Package source feeds records to the renderer from newline-delimited JSON.
package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/five82/droidcat/internal/record"
)

const (
	scannerInitial = 64 * 1024
	scannerMax     = 1024 * 1024
)

// Decoder reads one record per line. Lines that are not JSON objects become
// records carrying the line as message, so nothing is silently lost.
type Decoder struct {
	scanner *bufio.Scanner
	tail    int      // records to keep before the first Next; zero streams
	backlog []string // served before the scanner
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scannerInitial), scannerMax)
	return &Decoder{scanner: scanner}
}

// NewTailDecoder returns a Decoder over the last n records of r. The first
// call to Next reads r to the end, holding only n lines in memory.
func NewTailDecoder(r io.Reader, n int) (*Decoder, error) {
	if n <= 0 {
		return nil, fmt.Errorf("tail %d records: count must be positive", n)
	}
	d := NewDecoder(r)
	d.tail = n
	return d, nil
}

func (d *Decoder) fillBacklog(n int) error {
	ring := make([]string, 0, n)
	oldest := 0
	for {
		line, ok := d.scanLine()
		if !ok {
			break
		}
		if len(ring) < n {
			ring = append(ring, line)
			continue
		}
		ring[oldest] = line
		oldest = (oldest + 1) % n
	}
	if err := d.scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	d.backlog = append(ring[oldest:len(ring):len(ring)], ring[:oldest]...)
	return nil
}

// Next returns the next record, or io.EOF at the end of the stream. Blank
// lines are skipped.
func (d *Decoder) Next() (record.Record, error) {
	if n := d.tail; n > 0 {
		d.tail = 0
		if err := d.fillBacklog(n); err != nil {
			return record.Record{}, err
		}
	}
	if len(d.backlog) > 0 {
		line := d.backlog[0]
		d.backlog = d.backlog[1:]
		return ParseLine(line), nil
	}
	if line, ok := d.scanLine(); ok {
		return ParseLine(line), nil
	}
	if err := d.scanner.Err(); err != nil {
		return record.Record{}, fmt.Errorf("read input: %w", err)
	}
	return record.Record{}, io.EOF
}

// scanLine returns the next non-blank line without its carriage return.
func (d *Decoder) scanLine() (string, bool) {
	for d.scanner.Scan() {
		line := strings.TrimRight(d.scanner.Text(), "\r")
		if strings.TrimSpace(line) != "" {
			return line, true
		}
	}
	return "", false
}

// ParseLine decodes a single JSON record, falling back to a plain record.
func ParseLine(line string) record.Record {
	if strings.HasPrefix(strings.TrimSpace(line), "{") {
		var r record.Record
		if err := json.Unmarshal([]byte(line), &r); err == nil {
			return r
		}
	}
	return record.Record{Level: record.None, Message: line, Raw: line}
}
