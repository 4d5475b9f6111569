package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/five82/droidcat/internal/logging"
	"github.com/five82/droidcat/internal/record"
)

var (
	// ErrUnsupportedFormat is returned by New for formats this sink cannot write.
	ErrUnsupportedFormat = errors.New("format is unsupported when writing to a terminal")
	// ErrInvalidWidth is returned by New for negative column widths.
	ErrInvalidWidth = errors.New("column width must not be negative")
)

// Options are fixed for the lifetime of a Terminal.
type Options struct {
	Format        record.Format
	Color         bool
	HideTimestamp bool
	NoDimm        bool
	ShortenTags   bool
	ShowDate      bool
	TagWidth      int // zero picks a width from Width
	ShowTimeDiff  bool
	TimeDiffWidth int // zero always shows the placeholder
	Highlight     []string
	Width         int // terminal columns; zero when unknown
}

// Terminal renders records to a writer, keeping the column layout stable
// across the stream. It is not safe for concurrent use.
type Terminal struct {
	out    *bufio.Writer
	styles styles

	format      record.Format
	date        dateFormat
	diffWidth   int
	tagWidth    int
	width       int
	shortenTags bool
	timeDiff    bool
	highlight   []*regexp.Regexp

	processWidth  int
	threadWidth   int
	tagTimestamps map[string]time.Time
}

// New builds a Terminal writing to w.
func New(w io.Writer, opts Options) (*Terminal, error) {
	if opts.Format == record.HTML {
		return nil, fmt.Errorf("%s: %w", opts.Format, ErrUnsupportedFormat)
	}
	if opts.TagWidth < 0 {
		return nil, fmt.Errorf("tag width %d: %w", opts.TagWidth, ErrInvalidWidth)
	}
	if opts.TimeDiffWidth < 0 {
		return nil, fmt.Errorf("time diff width %d: %w", opts.TimeDiffWidth, ErrInvalidWidth)
	}

	logger := logging.New("terminal")
	highlight := make([]*regexp.Regexp, 0, len(opts.Highlight))
	for _, pattern := range opts.Highlight {
		re, err := regexp.Compile(pattern)
		if err != nil {
			logger.Debug("dropping highlight pattern", "pattern", pattern, "err", err)
			continue
		}
		highlight = append(highlight, re)
	}

	diffWidth := 0
	if opts.ShowTimeDiff {
		diffWidth = opts.TimeDiffWidth
	}

	tagWidth := opts.TagWidth
	if tagWidth == 0 {
		tagWidth = tagWidthFor(opts.Width)
	}

	out := bufio.NewWriter(w)
	return &Terminal{
		out:           out,
		styles:        newStyles(opts.Color, dimmColor(opts.NoDimm)),
		format:        opts.Format,
		date:          selectDateFormat(opts.ShowDate, opts.HideTimestamp),
		diffWidth:     diffWidth,
		tagWidth:      tagWidth,
		width:         max(opts.Width, 0),
		shortenTags:   opts.ShortenTags,
		timeDiff:      opts.ShowTimeDiff,
		highlight:     highlight,
		tagTimestamps: make(map[string]time.Time),
	}, nil
}

// Render writes one record and flushes. Human output may span several
// physical lines.
func (t *Terminal) Render(r record.Record) error {
	switch t.format {
	case record.CSV, record.JSON, record.Raw:
		line, err := r.Format(t.format)
		if err != nil {
			return fmt.Errorf("format record: %w", err)
		}
		fmt.Fprintln(t.out, line)
		return t.flush()
	case record.Human:
		return t.renderHuman(r)
	default:
		panic(fmt.Sprintf("terminal: unexpected format %s", t.format))
	}
}

// line holds the rendered columns of one record.
type line struct {
	timestamp string
	diff      string
	tag       string
	pid       string
	tid       string
	level     string
	message   string

	levelColor  string
	highlighted bool
	boldMessage bool
	boldTag     bool
	boldPid     bool
	boldTid     bool
}

func (t *Terminal) renderHuman(r record.Record) error {
	var l line
	if r.Timestamp != nil {
		l.timestamp = t.date.format(*r.Timestamp)
		if t.timeDiff {
			if last, ok := t.tagTimestamps[r.Tag]; ok {
				l.diff = formatDiff(r.Timestamp.Sub(last), t.diffWidth)
			}
		}
	}

	tag := r.Tag
	if isSessionStart(r.Message) {
		l.diff = ""
		clear(t.tagTimestamps)
		if t.width > 0 {
			fmt.Fprintln(t.out, strings.Repeat("─", t.width))
		}
		tag = r.Message
	}
	l.tag = fitTag(tag, t.tagWidth, t.shortenTags)

	t.processWidth = max(t.processWidth, runeLen(r.Process))
	l.pid = padRight(r.Process, t.processWidth)
	switch {
	case r.Thread != "":
		t.threadWidth = max(t.threadWidth, runeLen(r.Thread))
		l.tid = " " + padLeft(r.Thread, t.threadWidth)
	case t.threadWidth > 0:
		l.tid = strings.Repeat(" ", t.threadWidth+1)
	}

	l.level = " " + r.Level.String() + " "
	l.levelColor = levelColor(r.Level, t.styles.dimm)
	l.message = r.Message
	l.boldMessage = t.highlights(r.Message, &l.highlighted)
	l.boldTag = t.highlights(l.tag, &l.highlighted)
	l.boldPid = t.highlights(l.pid, &l.highlighted)
	l.boldTid = t.highlights(l.tid, &l.highlighted)

	preamble := t.preamble(l)
	columns := t.width - t.preambleWidth()
	messageLen := runeLen(r.Message)
	if t.width > 0 && columns > 0 && messageLen > columns {
		rest := r.Message
		for first := true; rest != ""; first = false {
			chunk, tail := cutRunes(rest, columns)
			sign := "├"
			switch {
			case first:
				sign = "┌"
			case tail == "":
				sign = "└"
			}
			t.writeLine(preamble, l, sign, chunk)
			rest = tail
		}
	} else {
		t.writeLine(preamble, l, " ", r.Message)
	}

	if t.timeDiff && r.Timestamp != nil && r.Tag != "" {
		t.tagTimestamps[r.Tag] = *r.Timestamp
	}
	return t.flush()
}

// highlights reports whether s matches any highlight pattern, marking the
// line as highlighted when it does.
func (t *Terminal) highlights(s string, highlighted *bool) bool {
	for _, re := range t.highlight {
		if re.MatchString(s) {
			*highlighted = true
			return true
		}
	}
	return false
}

// preamble renders everything left of the wrap sign.
func (t *Terminal) preamble(l line) string {
	s := t.styles
	var b strings.Builder
	b.WriteString(s.timestamp(padRight(l.timestamp, t.date.width), l.highlighted))
	b.WriteByte(' ')
	b.WriteString(s.cell(padLeft(l.diff, t.diffWidth), s.dimm, false))
	b.WriteByte(' ')
	b.WriteString(s.cell(l.tag, hashedColor(l.tag), l.boldTag))
	b.WriteString(" (")
	b.WriteString(s.cell(l.pid, hashedColor(l.pid), l.boldPid))
	b.WriteString(s.cell(l.tid, hashedColor(l.tid), l.boldTid))
	b.WriteString(") ")
	b.WriteString(s.badge(l.level, l.levelColor))
	return b.String()
}

// preambleWidth is the number of columns taken before the message text.
func (t *Terminal) preambleWidth() int {
	width := t.date.width + 1 + t.diffWidth + 1 + t.tagWidth + 1 + 1 + t.processWidth
	if t.threadWidth > 0 {
		width++
	}
	width += t.threadWidth + 1 + 1 + 3 + 3
	// Windows reports one column more than it can draw.
	if runtime.GOOS == "windows" {
		width++
	}
	return width
}

func (t *Terminal) writeLine(preamble string, l line, sign, chunk string) {
	fmt.Fprintf(t.out, "%s %s %s\n",
		preamble,
		t.styles.cell(sign, l.levelColor, false),
		t.styles.cell(chunk, l.levelColor, l.boldMessage),
	)
}

func (t *Terminal) flush() error {
	if err := t.out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
