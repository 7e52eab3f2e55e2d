// Package render provides the default Renderer implementations: an
// interactive plotly.js choropleth for web output and a tile-grid
// cartogram for static images.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/wdm0006/usmap/pkg/usmap"
)

// Choropleth is the default Renderer.
type Choropleth struct{}

func New() *Choropleth { return &Choropleth{} }

// Render prepares an artifact over the records. Scale transforms are
// applied here; records whose transformed value is undefined (outside
// every custom bin) are left off the map.
func (c *Choropleth) Render(records []usmap.Record, cfg usmap.Config) (usmap.Artifact, error) {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Value
	}
	scaled := usmap.ApplyScale(values, cfg)

	m := &Map{cfg: cfg}
	for i, r := range records {
		if math.IsNaN(scaled[i]) {
			continue
		}
		m.records = append(m.records, r)
		m.scaled = append(m.scaled, scaled[i])
	}
	return m, nil
}

// Map is a rendered choropleth. Save picks the output family from the
// path extension: .html/.htm produce the interactive document,
// .png/.jpg/.jpeg/.svg/.pdf the static tile-grid image, and anything
// else is coerced to interactive by appending .html.
type Map struct {
	records []usmap.Record
	cfg     usmap.Config
	scaled  []float64
}

func (m *Map) Save(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".html", ".htm":
		return m.saveHTML(path)
	case ".png", ".jpg", ".jpeg":
		return m.saveRaster(path)
	case ".svg":
		return m.saveSVG(path)
	case ".pdf":
		return m.savePDF(path)
	default:
		return m.saveHTML(path + ".html")
	}
}

// Show writes the interactive document to a temporary file and opens it
// in the default browser.
func (m *Map) Show() error {
	f, err := os.CreateTemp("", "usmap-*.html")
	if err != nil {
		return err
	}
	if err := m.WriteHTML(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return openBrowser(f.Name())
}

func (m *Map) saveHTML(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.WriteHTML(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

var htmlTmpl = template.Must(template.New("usmap").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.32.0.min.js"></script>
</head>
<body>
<div id="usmap"></div>
<script>
var fig = {{.Figure}};
Plotly.newPlot("usmap", fig.data, fig.layout, {responsive: true});
</script>
</body>
</html>
`))

// WriteHTML writes the self-contained interactive document to w.
func (m *Map) WriteHTML(w io.Writer) error {
	fig, err := json.Marshal(m.figure())
	if err != nil {
		return err
	}
	return htmlTmpl.Execute(w, struct {
		Title  string
		Figure template.JS
	}{Title: m.cfg.Title, Figure: template.JS(fig)})
}

type figure struct {
	Data   []trace `json:"data"`
	Layout layout  `json:"layout"`
}

type trace struct {
	Type          string     `json:"type"`
	Locations     []string   `json:"locations"`
	Z             []float64  `json:"z"`
	LocationMode  string     `json:"locationmode"`
	Colorscale    [][2]any   `json:"colorscale"`
	Text          []string   `json:"text"`
	HoverTemplate string     `json:"hovertemplate"`
	Colorbar      colorbar   `json:"colorbar"`
}

type colorbar struct {
	Title string `json:"title"`
}

type layout struct {
	Title      layoutTitle `json:"title"`
	Geo        geo         `json:"geo"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Font       font        `json:"font"`
	PaperColor string      `json:"paper_bgcolor,omitempty"`
}

type layoutTitle struct {
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	XAnchor string  `json:"xanchor"`
	Font    font    `json:"font"`
}

type geo struct {
	Scope      string     `json:"scope"`
	Projection projection `json:"projection"`
	ShowLakes  bool       `json:"showlakes"`
	LakeColor  string     `json:"lakecolor"`
	BgColor    string     `json:"bgcolor,omitempty"`
}

type projection struct {
	Type string `json:"type"`
}

type font struct {
	Family string `json:"family,omitempty"`
	Size   int    `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
}

func (m *Map) figure() figure {
	locations := make([]string, len(m.records))
	text := make([]string, len(m.records))
	for i, r := range m.records {
		locations[i] = r.Code
		text[i] = r.Name
	}

	stops := Palette(m.cfg.EffectiveScheme(), m.cfg.ReverseScale)
	scale := make([][2]any, len(stops))
	for i, s := range stops {
		scale[i] = [2]any{float64(i) / float64(len(stops)-1), s.Hex()}
	}

	fig := figure{
		Data: []trace{{
			Type:         "choropleth",
			Locations:    locations,
			Z:            m.scaled,
			LocationMode: "USA-states",
			Colorscale:   scale,
			Text:         text,
			HoverTemplate: "<b>%{text}</b><br>" +
				m.cfg.ValueLabel + ": %{z:,.2f}<extra></extra>",
			Colorbar: colorbar{Title: m.cfg.ValueLabel},
		}},
		Layout: layout{
			Title: layoutTitle{
				Text:    m.cfg.Title,
				X:       0.5,
				XAnchor: "center",
				Font:    font{Size: 24, Family: "Arial, sans-serif"},
			},
			Geo: geo{
				Scope:      "usa",
				Projection: projection{Type: "albers usa"},
				ShowLakes:  true,
				LakeColor:  "rgb(255, 255, 255)",
			},
			Width:  m.cfg.Width,
			Height: m.cfg.Height,
			Font:   font{Family: "Arial, sans-serif", Size: 12},
		},
	}
	if m.cfg.Style == usmap.StyleDark {
		fig.Layout.PaperColor = "#111111"
		fig.Layout.Geo.BgColor = "#111111"
		fig.Layout.Geo.LakeColor = "#1f1f1f"
		fig.Layout.Font.Color = "#f2f2f2"
	}
	return fig
}

func openBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
