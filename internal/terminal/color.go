package terminal

import (
	"runtime"
	"strconv"

	"github.com/five82/droidcat/internal/record"
)

// xterm-256 indices of the fixed colors.
const (
	colorBlack  = "0"
	colorRed    = "1"
	colorGreen  = "2"
	colorYellow = "3"
	colorWhite  = "7"
	colorDimm   = "243"
)

const hashSeed uint16 = 42

// colorAdjustment shifts a hashed index in [lo, hi] by offset. The ranges
// cover indices that are unreadable on dark backgrounds.
type colorAdjustment struct {
	lo, hi uint8
	offset uint8
}

// Order matters: the first matching range wins.
var colorAdjustments = []colorAdjustment{
	{lo: 0, hi: 1, offset: 2},
	{lo: 16, hi: 21, offset: 6},
	{lo: 52, hi: 55, offset: 4},
	{lo: 126, hi: 129, offset: 4},
	{lo: 163, hi: 165, offset: 3},
	{lo: 200, hi: 201, offset: 3},
	{lo: 207, hi: 207, offset: 1},
	{lo: 232, hi: 240, offset: 9},
}

// HashColor maps a string to a stable xterm-256 color index.
func HashColor(s string) uint8 {
	acc := hashSeed
	for i := 0; i < len(s); i++ {
		acc ^= uint16(s[i])
	}
	c := uint8(acc & 0xff)
	for _, adj := range colorAdjustments {
		if c >= adj.lo && c <= adj.hi {
			return c + adj.offset
		}
	}
	return c
}

func hashedColor(s string) string {
	return strconv.Itoa(int(HashColor(s)))
}

// dimmColor is the muted color used for low severities and plain timestamps.
func dimmColor(noDimm bool) string {
	if noDimm || runtime.GOOS == "windows" {
		return colorWhite
	}
	return colorDimm
}

func levelColor(level record.Level, dimm string) string {
	switch level {
	case record.Info:
		return colorGreen
	case record.Warn:
		return colorYellow
	case record.Error, record.Fatal, record.Assert:
		return colorRed
	default:
		return dimm
	}
}
