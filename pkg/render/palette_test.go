package render

import "testing"

func TestPaletteLookup(t *testing.T) {
	blues := Palette("Blues", false)
	if len(blues) != 9 {
		t.Fatalf("expected 9 stops, got %d", len(blues))
	}
	if got := blues[0].Hex(); got != "#f7fbff" {
		t.Errorf("first stop: got %s", got)
	}
	if got := blues[len(blues)-1].Hex(); got != "#08306b" {
		t.Errorf("last stop: got %s", got)
	}
}

func TestPaletteReversed(t *testing.T) {
	fwd := Palette("Viridis", false)
	rev := Palette("Viridis", true)
	if len(fwd) != len(rev) {
		t.Fatalf("length mismatch: %d vs %d", len(fwd), len(rev))
	}
	for i := range fwd {
		if fwd[i] != rev[len(rev)-1-i] {
			t.Errorf("stop %d not mirrored", i)
		}
	}
}

func TestPaletteUnknownFallsBack(t *testing.T) {
	got := Palette("NotAScheme", false)
	want := Palette("Blues", false)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unknown scheme did not fall back to Blues")
		}
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	stops := []RGB{{0, 0, 0}, {200, 100, 50}}
	if got := Interpolate(stops, -0.5); got != stops[0] {
		t.Errorf("t<0: got %v", got)
	}
	if got := Interpolate(stops, 1.5); got != stops[1] {
		t.Errorf("t>1: got %v", got)
	}
	mid := Interpolate(stops, 0.5)
	if mid != (RGB{100, 50, 25}) {
		t.Errorf("midpoint: got %v", mid)
	}
}

func TestInterpolateEmpty(t *testing.T) {
	if got := Interpolate(nil, 0.5); got != (RGB{}) {
		t.Errorf("empty stops: got %v", got)
	}
}

func TestParseHex(t *testing.T) {
	c, ok := parseHex("#E5E5E5")
	if !ok || c != (RGB{0xe5, 0xe5, 0xe5}) {
		t.Errorf("got %v ok=%v", c, ok)
	}
	if _, ok := parseHex("red"); ok {
		t.Error("expected parse failure for named color")
	}
	if _, ok := parseHex("#fff"); ok {
		t.Error("expected parse failure for short form")
	}
}
