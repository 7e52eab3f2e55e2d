package render

import "fmt"

// RGB is an 8-bit color.
type RGB struct{ R, G, B uint8 }

func (c RGB) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// palettes holds the bundled color scales as ordered stops, low to high.
var palettes = map[string][]RGB{
	"Blues": {
		hex(0xf7fbff), hex(0xdeebf7), hex(0xc6dbef), hex(0x9ecae1), hex(0x6baed6),
		hex(0x4292c6), hex(0x2171b5), hex(0x08519c), hex(0x08306b),
	},
	"Greens": {
		hex(0xf7fcf5), hex(0xe5f5e0), hex(0xc7e9c0), hex(0xa1d99b), hex(0x74c476),
		hex(0x41ab5d), hex(0x238b45), hex(0x006d2c), hex(0x00441b),
	},
	"Teal": {
		hex(0xd1eeea), hex(0xa8dbd9), hex(0x85c4c9), hex(0x68abb8), hex(0x4f90a6),
		hex(0x3b738f), hex(0x2a5674),
	},
	"Viridis": {
		hex(0x440154), hex(0x482878), hex(0x3e4989), hex(0x31688e), hex(0x26828e),
		hex(0x35b779), hex(0x6ece58), hex(0xb5de2b), hex(0xfde725),
	},
	"Cividis": {
		hex(0x00224e), hex(0x123570), hex(0x3b496c), hex(0x575d6d), hex(0x707173),
		hex(0x8a8678), hex(0xa59c74), hex(0xc3b369), hex(0xe1cc55), hex(0xfee838),
	},
	"RdYlGn": {
		hex(0xa50026), hex(0xd73027), hex(0xf46d43), hex(0xfdae61), hex(0xfee08b),
		hex(0xffffbf), hex(0xd9ef8b), hex(0xa6d96a), hex(0x66bd63), hex(0x1a9850),
		hex(0x006837),
	},
}

func hex(v uint32) RGB {
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// Palette returns the named scale's stops, optionally reversed. Unknown
// names fall back to Blues so a typo degrades instead of failing.
func Palette(name string, reversed bool) []RGB {
	stops, ok := palettes[name]
	if !ok {
		stops = palettes["Blues"]
	}
	if !reversed {
		return stops
	}
	out := make([]RGB, len(stops))
	for i, s := range stops {
		out[len(stops)-1-i] = s
	}
	return out
}

// Interpolate samples the scale at t in [0,1], blending linearly between
// adjacent stops.
func Interpolate(stops []RGB, t float64) RGB {
	if len(stops) == 0 {
		return RGB{}
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}
	pos := t * float64(len(stops)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := stops[i], stops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + frac*(float64(y)-float64(x)) + 0.5)
	}
	return RGB{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B)}
}
