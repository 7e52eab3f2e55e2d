package usmap

// ScaleType selects the value transform applied before color mapping.
type ScaleType string

const (
	ScaleLinear ScaleType = "linear"
	ScaleLog    ScaleType = "log"
	ScaleCustom ScaleType = "custom"
)

// Style selects a bundled look: default color scheme plus template.
type Style string

const (
	StyleProfessional Style = "professional"
	StyleLight        Style = "light"
	StyleDark         Style = "dark"
	StyleColorblind   Style = "colorblind"
)

// styleSchemes are the default palettes bundled with each style.
var styleSchemes = map[Style]string{
	StyleProfessional: "Blues",
	StyleLight:        "Teal",
	StyleDark:         "Viridis",
	StyleColorblind:   "Cividis",
}

// Config holds the rendering options. Fixed fields cover the recognized
// keys; Extra carries unrecognized options through to the renderer
// untouched.
type Config struct {
	ColorScheme  string
	ScaleType    ScaleType
	Title        string
	ValueLabel   string
	ShowMissing  bool
	MissingColor string
	Style        Style
	Width        int
	Height       int
	ReverseScale bool
	CustomBins   []float64
	Extra        map[string]any
}

// DefaultConfig returns the options every session starts from.
func DefaultConfig() Config {
	return Config{
		ColorScheme:  "Blues",
		ScaleType:    ScaleLinear,
		Title:        "US States Data Visualization",
		ValueLabel:   "Value",
		ShowMissing:  true,
		MissingColor: "#E5E5E5",
		Style:        StyleProfessional,
		Width:        1200,
		Height:       700,
		ReverseScale: false,
		Extra:        map[string]any{},
	}
}

// Overrides is a partial Config. Nil fields leave the current value
// untouched; set fields overwrite it.
type Overrides struct {
	ColorScheme  *string
	ScaleType    *ScaleType
	Title        *string
	ValueLabel   *string
	ShowMissing  *bool
	MissingColor *string
	Style        *Style
	Width        *int
	Height       *int
	ReverseScale *bool
	CustomBins   []float64
	Extra        map[string]any
}

func (c *Config) merge(o Overrides) {
	if o.ColorScheme != nil {
		c.ColorScheme = *o.ColorScheme
	}
	if o.ScaleType != nil {
		c.ScaleType = *o.ScaleType
	}
	if o.Title != nil {
		c.Title = *o.Title
	}
	if o.ValueLabel != nil {
		c.ValueLabel = *o.ValueLabel
	}
	if o.ShowMissing != nil {
		c.ShowMissing = *o.ShowMissing
	}
	if o.MissingColor != nil {
		c.MissingColor = *o.MissingColor
	}
	if o.Style != nil {
		c.Style = *o.Style
	}
	if o.Width != nil {
		c.Width = *o.Width
	}
	if o.Height != nil {
		c.Height = *o.Height
	}
	if o.ReverseScale != nil {
		c.ReverseScale = *o.ReverseScale
	}
	if o.CustomBins != nil {
		c.CustomBins = append([]float64(nil), o.CustomBins...)
	}
	if c.Extra == nil {
		c.Extra = map[string]any{}
	}
	for k, v := range o.Extra {
		c.Extra[k] = v
	}
}

// EffectiveScheme resolves the palette to render with. An explicitly set
// scheme wins unless it is itself one of the bundled style defaults, in
// which case the session's style picks its own default.
func (c Config) EffectiveScheme() string {
	bundled := false
	for _, s := range styleSchemes {
		if c.ColorScheme == s {
			bundled = true
			break
		}
	}
	if c.ColorScheme != "" && !bundled {
		return c.ColorScheme
	}
	if s, ok := styleSchemes[c.Style]; ok {
		return s
	}
	return c.ColorScheme
}
