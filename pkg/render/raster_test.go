package render

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wdm0006/usmap/pkg/usmap"
)

func smallConfig() usmap.Config {
	cfg := usmap.DefaultConfig()
	cfg.Width = 440
	cfg.Height = 320
	return cfg
}

func TestCellColorsShowMissing(t *testing.T) {
	m := renderMap(t, smallConfig())
	colors := m.cellColors()
	if len(colors) != len(gridCells) {
		t.Fatalf("expected fills for all %d states, got %d", len(gridCells), len(colors))
	}
	if colors["WY"] != (RGB{0xe5, 0xe5, 0xe5}) {
		t.Errorf("missing state fill: %v", colors["WY"])
	}
	if colors["CA"] == colors["WY"] {
		t.Error("mapped state should not use the missing color")
	}
}

func TestCellColorsHideMissing(t *testing.T) {
	cfg := smallConfig()
	cfg.ShowMissing = false
	m := renderMap(t, cfg)
	colors := m.cellColors()
	if len(colors) != 3 {
		t.Fatalf("expected fills for 3 mapped states, got %d", len(colors))
	}
	if _, ok := colors["WY"]; ok {
		t.Error("unmapped state should have no fill")
	}
}

func TestCellColorsBadMissingColorFallsBack(t *testing.T) {
	cfg := smallConfig()
	cfg.MissingColor = "lightgray"
	m := renderMap(t, cfg)
	if got := m.cellColors()["WY"]; got != (RGB{0xe5, 0xe5, 0xe5}) {
		t.Errorf("fallback fill: %v", got)
	}
}

func TestSavePNG(t *testing.T) {
	m := renderMap(t, smallConfig())
	path := filepath.Join(t.TempDir(), "map.png")
	if err := m.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 440 || b.Dy() != 320 {
		t.Errorf("image size: %dx%d", b.Dx(), b.Dy())
	}
}

func TestSaveJPEG(t *testing.T) {
	m := renderMap(t, smallConfig())
	path := filepath.Join(t.TempDir(), "map.jpg")
	if err := m.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty jpeg")
	}
}

func TestSaveSVG(t *testing.T) {
	cfg := smallConfig()
	cfg.Title = "A < B"
	m := renderMap(t, cfg)
	path := filepath.Join(t.TempDir(), "map.svg")
	if err := m.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(b)
	if !strings.HasPrefix(out, "<svg") {
		t.Error("not an svg document")
	}
	if !strings.Contains(out, "A &lt; B") {
		t.Error("title not escaped")
	}
	if strings.Count(out, "<rect") < len(gridCells) {
		t.Errorf("expected a rect per state, found %d", strings.Count(out, "<rect"))
	}
}

func TestSavePDF(t *testing.T) {
	m := renderMap(t, smallConfig())
	path := filepath.Join(t.TempDir(), "map.pdf")
	if err := m.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(b), "%PDF") {
		t.Error("not a pdf document")
	}
}
