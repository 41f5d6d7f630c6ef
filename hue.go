package colorscan

import (
	"math"
	"slices"
)

// Color is the HSV decomposition of a color key. Only Hue takes part in
// ordering; the remaining fields are informational.
type Color struct {
	Key        string
	Red        float64 // 0-255, NaN when the key has no hex digits there
	Green      float64
	Blue       float64
	Hue        float64 // [0, 360)
	Saturation float64
	Value      float64
	Chroma     float64
	Luma       float64
}

// ParseColor decomposes key as if it were "#rrggbb". Keys of any other shape
// (rgb/rgba calls) are sliced at the same positions; channels without leading
// hex digits come out NaN, which leaves Hue at 0. It never fails.
func ParseColor(key string) Color {
	c := Color{
		Key:   key,
		Red:   hexChannel(key, 1),
		Green: hexChannel(key, 3),
		Blue:  hexChannel(key, 5),
	}

	r, g, b := c.Red/255, c.Green/255, c.Blue/255
	maxC, minC := nanMax(r, g, b), nanMin(r, g, b)

	c.Chroma = maxC - minC
	c.Value = maxC
	c.Luma = 0.3*r + 0.59*g + 0.11*b

	// NaN compares false here, so malformed keys keep hue and saturation 0.
	if c.Value > 0 {
		c.Saturation = c.Chroma / c.Value
		if c.Saturation > 0 {
			switch maxC {
			case r:
				c.Hue = 60 * (((g - minC) - (b - minC)) / c.Chroma)
				if c.Hue < 0 {
					c.Hue += 360
				}
			case g:
				c.Hue = 120 + 60*(((b-minC)-(r-minC))/c.Chroma)
			case b:
				c.Hue = 240 + 60*(((r-minC)-(g-minC))/c.Chroma)
			}
		}
	}

	return c
}

// SortByHue returns keys ordered by ascending hue. Equal hues keep their input
// order.
func SortByHue(keys []string) []string {
	colors := make([]Color, len(keys))
	for i, key := range keys {
		colors[i] = ParseColor(key)
	}

	slices.SortStableFunc(colors, func(a, b Color) int {
		switch {
		case a.Hue < b.Hue:
			return -1
		case a.Hue > b.Hue:
			return 1
		}
		return 0
	})

	sorted := make([]string, len(colors))
	for i, c := range colors {
		sorted[i] = c.Key
	}
	return sorted
}

// hexChannel parses the two characters of key starting at offset. Like a
// lenient integer parse it reads leading hex digits and stops at the first
// other character; no digits at all yields NaN.
func hexChannel(key string, offset int) float64 {
	if offset >= len(key) {
		return math.NaN()
	}
	end := min(offset+2, len(key))

	n, digits := 0, 0
	for _, ch := range []byte(key[offset:end]) {
		d, ok := hexDigit(ch)
		if !ok {
			break
		}
		n = n*16 + d
		digits++
	}
	if digits == 0 {
		return math.NaN()
	}
	return float64(n)
}

func hexDigit(ch byte) (int, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10, true
	}
	return 0, false
}

// nanMax and nanMin return NaN if any argument is NaN.
func nanMax(vals ...float64) float64 {
	out := math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) {
			return math.NaN()
		}
		out = math.Max(out, v)
	}
	return out
}

func nanMin(vals ...float64) float64 {
	out := math.Inf(1)
	for _, v := range vals {
		if math.IsNaN(v) {
			return math.NaN()
		}
		out = math.Min(out, v)
	}
	return out
}
