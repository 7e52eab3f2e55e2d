package render

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wdm0006/usmap/pkg/usmap"
)

func sampleRecords() []usmap.Record {
	return []usmap.Record{
		{Code: "CA", Value: 100, Name: "California"},
		{Code: "NY", Value: 50, Name: "New York"},
		{Code: "TX", Value: 75, Name: "Texas"},
	}
}

func renderMap(t *testing.T, cfg usmap.Config) *Map {
	t.Helper()
	art, err := New().Render(sampleRecords(), cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return art.(*Map)
}

func TestRenderAppliesScale(t *testing.T) {
	cfg := usmap.DefaultConfig()
	cfg.ScaleType = usmap.ScaleLog
	m := renderMap(t, cfg)
	if len(m.scaled) != 3 {
		t.Fatalf("expected 3 scaled values, got %d", len(m.scaled))
	}
	if got := m.scaled[0]; math.Abs(got-2) > 1e-12 {
		t.Errorf("log10(100): got %v", got)
	}
}

func TestRenderDropsUnbinnedRecords(t *testing.T) {
	cfg := usmap.DefaultConfig()
	cfg.ScaleType = usmap.ScaleCustom
	cfg.CustomBins = []float64{60, 80} // only TX's 75 lands in a bin
	m := renderMap(t, cfg)
	if len(m.records) != 1 || m.records[0].Code != "TX" {
		t.Fatalf("expected only TX to survive, got %v", m.records)
	}
}

func TestFigureContents(t *testing.T) {
	cfg := usmap.DefaultConfig()
	cfg.Title = "Population"
	cfg.ValueLabel = "People"
	m := renderMap(t, cfg)
	fig := m.figure()

	if len(fig.Data) != 1 {
		t.Fatalf("expected one trace, got %d", len(fig.Data))
	}
	tr := fig.Data[0]
	if tr.Type != "choropleth" || tr.LocationMode != "USA-states" {
		t.Errorf("trace type/mode: %s/%s", tr.Type, tr.LocationMode)
	}
	if len(tr.Locations) != 3 || tr.Locations[0] != "CA" {
		t.Errorf("locations: %v", tr.Locations)
	}
	if tr.Text[1] != "New York" {
		t.Errorf("hover text: %v", tr.Text)
	}
	if tr.Colorbar.Title != "People" {
		t.Errorf("colorbar title: %s", tr.Colorbar.Title)
	}
	if fig.Layout.Title.Text != "Population" {
		t.Errorf("layout title: %s", fig.Layout.Title.Text)
	}
	if fig.Layout.Geo.Scope != "usa" || fig.Layout.Geo.Projection.Type != "albers usa" {
		t.Errorf("geo: %+v", fig.Layout.Geo)
	}
	if fig.Layout.Width != 1200 || fig.Layout.Height != 700 {
		t.Errorf("size: %dx%d", fig.Layout.Width, fig.Layout.Height)
	}
	if fig.Layout.PaperColor != "" {
		t.Errorf("light style should not set paper color, got %s", fig.Layout.PaperColor)
	}
}

func TestFigureDarkStyle(t *testing.T) {
	cfg := usmap.DefaultConfig()
	cfg.Style = usmap.StyleDark
	fig := renderMap(t, cfg).figure()
	if fig.Layout.PaperColor != "#111111" {
		t.Errorf("paper color: %s", fig.Layout.PaperColor)
	}
	if fig.Layout.Geo.LakeColor != "#1f1f1f" {
		t.Errorf("lake color: %s", fig.Layout.Geo.LakeColor)
	}
	if fig.Layout.Font.Color != "#f2f2f2" {
		t.Errorf("font color: %s", fig.Layout.Font.Color)
	}
}

func TestWriteHTML(t *testing.T) {
	cfg := usmap.DefaultConfig()
	cfg.Title = "Revenue & Growth"
	m := renderMap(t, cfg)

	var buf bytes.Buffer
	if err := m.WriteHTML(&buf); err != nil {
		t.Fatalf("write html: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"cdn.plot.ly/plotly-2.32.0.min.js",
		`"locationmode":"USA-states"`,
		`"CA"`,
		"Plotly.newPlot",
		"Revenue &amp; Growth", // title escaped in <title>
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestSaveCoercesUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	m := renderMap(t, usmap.DefaultConfig())
	path := filepath.Join(dir, "map.xyz")
	if err := m.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".html"); err != nil {
		t.Fatalf("expected %s.html to exist: %v", path, err)
	}
}
