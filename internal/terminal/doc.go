// Package terminal renders log records as aligned, width-aware terminal lines.
//
// # Overview
//
// A Terminal is built once per session and then fed records one at a time.
// It keeps a small amount of layout state between records so columns stay
// aligned across the stream:
//
//   - processWidth / threadWidth: running maxima of the process and thread
//     fields. They only grow; earlier lines are never repainted.
//   - tagTimestamps: the last timestamp seen per tag, used for the elapsed
//     time column. Cleared on every session boundary.
//
// Everything else (date layout, tag width, highlight patterns, colors) is
// fixed at construction.
//
// # Line Layout
//
// Human output has one physical line per message chunk:
//
//	TIMESTAMP DIFF            TAG (PID TID)  L  S MESSAGE
//	14:05:06.789    0.120  ActivityManager (1234 1250)  W  ┌ Slow operation ...
//
// TIMESTAMP and DIFF are fixed width. TAG is right-aligned in the tag column;
// PID is left-aligned and TID right-aligned in their running widths. L is the
// level badge and S the wrap sign:
//
//   - " " message fits on one line
//   - "┌" first chunk of a wrapped message
//   - "├" middle chunk
//   - "└" last chunk
//
// # Tag Column
//
// Without an explicit width the tag column follows the terminal width:
//
//	columns <= 80   15
//	columns <= 90   20
//	columns <= 100  25
//	columns <= 110  30
//	otherwise       35 (also when the width is unknown)
//
// Over-width tags optionally lose their lowercase vowels and are then cut.
//
// # Colors
//
// Tag, process and thread colors come from HashColor, an XOR fold of the
// field text remapped away from indices that are hard to read on dark
// backgrounds. The message takes the level color. A highlight match on any
// field makes that field bold and turns the timestamp bold yellow.
//
// # Session Boundaries
//
// A message containing "--------- beginning of" starts a new logcat buffer.
// The Terminal prints a horizontal rule across the terminal, forgets all tag
// timestamps and shows the marker text in the tag column.
//
// # Known Approximations
//
// Widths are counted in runes. Wide glyphs and control characters in a
// message are not measured by display width, so wrapped lines containing
// them may overflow. Invalid UTF-8 bytes count as one column each and are
// written unchanged, whether or not the message wraps.
//
// # Errors
//
// New fails with ErrUnsupportedFormat for record.HTML. Render returns write
// errors from the underlying writer; it does not retry.
package terminal
