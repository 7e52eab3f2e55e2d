package render

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/wdm0006/usmap/pkg/usmap"
)

// cellColors assigns every state a fill: mapped states get a palette
// color from their scaled value, the rest get the missing color when
// ShowMissing is set (and are skipped otherwise).
func (m *Map) cellColors() map[string]RGB {
	stops := Palette(m.cfg.EffectiveScheme(), m.cfg.ReverseScale)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range m.scaled {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	out := make(map[string]RGB, len(gridCells))
	if m.cfg.ShowMissing {
		miss, ok := parseHex(m.cfg.MissingColor)
		if !ok {
			miss = RGB{0xe5, 0xe5, 0xe5}
		}
		for code := range gridCells {
			out[code] = miss
		}
	}
	for i, r := range m.records {
		t := 0.5
		if hi > lo {
			t = (m.scaled[i] - lo) / (hi - lo)
		}
		out[r.Code] = Interpolate(stops, t)
	}
	return out
}

// parseHex reads a #rrggbb color string.
func parseHex(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	var v uint32
	if _, err := fmt.Sscanf(s, "%06x", &v); err != nil {
		return RGB{}, false
	}
	return hex(v), true
}

type geometry struct {
	cellW, cellH float64
	padX, padY   float64
	top          float64 // title band
	gap          float64
}

func (m *Map) geometry() geometry {
	g := geometry{padX: 40, padY: 30, top: 60, gap: 4}
	g.cellW = (float64(m.cfg.Width) - 2*g.padX) / gridCols
	g.cellH = (float64(m.cfg.Height) - g.top - 2*g.padY) / gridRows
	return g
}

func (m *Map) background() RGB {
	if m.cfg.Style == usmap.StyleDark {
		return RGB{0x11, 0x11, 0x11}
	}
	return RGB{0xff, 0xff, 0xff}
}

func (m *Map) saveRaster(path string) error {
	img := image.NewRGBA(image.Rect(0, 0, m.cfg.Width, m.cfg.Height))
	bg := m.background()
	for y := 0; y < m.cfg.Height; y++ {
		for x := 0; x < m.cfg.Width; x++ {
			img.Set(x, y, color.RGBA{bg.R, bg.G, bg.B, 0xff})
		}
	}

	g := m.geometry()
	for code, fill := range m.cellColors() {
		cl := gridCells[code]
		x0 := int(g.padX + float64(cl.Col)*g.cellW + g.gap/2)
		y0 := int(g.top + g.padY + float64(cl.Row)*g.cellH + g.gap/2)
		x1 := int(g.padX + float64(cl.Col+1)*g.cellW - g.gap/2)
		y1 := int(g.top + g.padY + float64(cl.Row+1)*g.cellH - g.gap/2)
		c := color.RGBA{fill.R, fill.G, fill.B, 0xff}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				img.Set(x, y, c)
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if strings.ToLower(filepath.Ext(path)) == ".png" {
		return png.Encode(f, img)
	}
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func (m *Map) saveSVG(path string) error {
	var b strings.Builder
	bg := m.background()
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n",
		m.cfg.Width, m.cfg.Height)
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", bg.Hex())

	textColor := "#333333"
	if m.cfg.Style == usmap.StyleDark {
		textColor = "#f2f2f2"
	}
	fmt.Fprintf(&b,
		`<text x="%d" y="40" text-anchor="middle" font-family="Arial, sans-serif" font-size="24" fill="%s">%s</text>`+"\n",
		m.cfg.Width/2, textColor, svgEscape(m.cfg.Title))

	g := m.geometry()
	for code, fill := range m.cellColors() {
		cl := gridCells[code]
		x := g.padX + float64(cl.Col)*g.cellW + g.gap/2
		y := g.top + g.padY + float64(cl.Row)*g.cellH + g.gap/2
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			x, y, g.cellW-g.gap, g.cellH-g.gap, fill.Hex())
		fmt.Fprintf(&b,
			`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="Arial, sans-serif" font-size="%.0f" fill="%s">%s</text>`+"\n",
			x+(g.cellW-g.gap)/2, y+(g.cellH-g.gap)/2+4, math.Min(g.cellW, g.cellH)/3, textColor, code)
	}
	b.WriteString("</svg>\n")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func (m *Map) savePDF(path string) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(m.cfg.Width), Ht: float64(m.cfg.Height)},
	})
	pdf.AddPage()

	bg := m.background()
	pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	pdf.Rect(0, 0, float64(m.cfg.Width), float64(m.cfg.Height), "F")

	if m.cfg.Style == usmap.StyleDark {
		pdf.SetTextColor(0xf2, 0xf2, 0xf2)
	} else {
		pdf.SetTextColor(0x33, 0x33, 0x33)
	}
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(float64(m.cfg.Width), 50, m.cfg.Title, "", 0, "C", false, 0, "")

	g := m.geometry()
	for code, fill := range m.cellColors() {
		cl := gridCells[code]
		x := g.padX + float64(cl.Col)*g.cellW + g.gap/2
		y := g.top + g.padY + float64(cl.Row)*g.cellH + g.gap/2
		pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
		pdf.Rect(x, y, g.cellW-g.gap, g.cellH-g.gap, "F")
		pdf.SetFont("Helvetica", "", math.Min(g.cellW, g.cellH)/3)
		pdf.Text(x+(g.cellW-g.gap)/2-8, y+(g.cellH-g.gap)/2+4, code)
	}
	return pdf.OutputFileAndClose(path)
}

func svgEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
