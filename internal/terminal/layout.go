package terminal

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	diffPlaceholder = "-.---"
	sessionMarker   = "--------- beginning of"
	defaultTagWidth = 35
)

// dateFormat is a time layout plus the fixed column width it renders into.
type dateFormat struct {
	layout string
	width  int
}

func selectDateFormat(showDate, hideTimestamp bool) dateFormat {
	switch {
	case showDate && hideTimestamp:
		return dateFormat{layout: "01-02", width: 5}
	case showDate:
		return dateFormat{layout: "01-02 15:04:05.000000000", width: 18}
	case hideTimestamp:
		return dateFormat{}
	default:
		return dateFormat{layout: "15:04:05.000000000", width: 12}
	}
}

func (d dateFormat) format(ts time.Time) string {
	if d.width == 0 {
		return ""
	}
	return fitWidth(ts.Format(d.layout), d.width)
}

// tagWidthFor picks the tag column width for a terminal of the given width.
// Zero means the width is unknown.
func tagWidthFor(columns int) int {
	switch {
	case columns <= 0:
		return defaultTagWidth
	case columns <= 80:
		return 15
	case columns <= 90:
		return 20
	case columns <= 100:
		return 25
	case columns <= 110:
		return 30
	default:
		return defaultTagWidth
	}
}

// fitTag shortens an over-width tag and right-aligns it in width columns.
func fitTag(tag string, width int, shorten bool) string {
	if runeLen(tag) > width {
		if shorten {
			tag = stripVowels(tag)
		}
		if runeLen(tag) > width {
			tag, _ = cutRunes(tag, width)
		}
	}
	return padLeft(tag, width)
}

func stripVowels(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			return -1
		}
		return r
	}, s)
}

// formatDiff renders an elapsed time as seconds.millis, or the placeholder
// when the text does not fit in width.
func formatDiff(elapsed time.Duration, width int) string {
	ms := elapsed.Milliseconds()
	if ms < 0 {
		ms = -ms
	}
	diff := fmt.Sprintf("%d.%03d", ms/1000, ms%1000)
	if runeLen(diff) > width {
		return diffPlaceholder
	}
	return diff
}

func isSessionStart(message string) bool {
	return strings.Contains(message, sessionMarker)
}

// fitWidth cuts or blank-pads s to exactly width runes.
func fitWidth(s string, width int) string {
	if runeLen(s) > width {
		head, _ := cutRunes(s, width)
		return head
	}
	return padRight(s, width)
}

// cutRunes splits s after n runes. Invalid UTF-8 bytes count as one rune
// each and are kept as they are.
func cutRunes(s string, n int) (head, tail string) {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}

// runeLen approximates display width by counting runes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func padRight(s string, width int) string {
	if n := runeLen(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := runeLen(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
