package terminal

import "github.com/muesli/termenv"

// styles paints rendered cells with xterm-256 colors. When disabled every
// helper returns its input unchanged. Text is wrapped in SGR sequences and
// never rewritten, so tabs and newlines pass through as in monochrome.
type styles struct {
	enabled bool
	profile termenv.Profile
	dimm    string
}

// newStyles pins the xterm-256 profile regardless of the output.
func newStyles(enabled bool, dimm string) styles {
	return styles{enabled: enabled, profile: termenv.ANSI256, dimm: dimm}
}

// cell paints column text, bold first so the sequence reads 1;38;5;N.
func (s styles) cell(text, color string, bold bool) string {
	if !s.enabled {
		return text
	}
	style := s.profile.String(text)
	if bold {
		style = style.Bold()
	}
	return style.Foreground(s.profile.Color(color)).String()
}

// badge paints the level badge black on the level color.
func (s styles) badge(text, color string) string {
	if !s.enabled {
		return text
	}
	return s.profile.String(text).
		Foreground(s.profile.Color(colorBlack)).
		Background(s.profile.Color(color)).
		String()
}

// timestamp is bold yellow on highlighted lines and dim otherwise.
func (s styles) timestamp(text string, highlighted bool) string {
	if highlighted {
		return s.cell(text, colorYellow, true)
	}
	return s.cell(text, s.dimm, false)
}
