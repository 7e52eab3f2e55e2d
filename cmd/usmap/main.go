package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wdm0006/usmap/pkg/render"
	"github.com/wdm0006/usmap/pkg/usmap"
)

var version = "0.1.0-dev"

// Config file hooks. JSON always works; TOML and YAML are wired in by
// the build-tagged files in this package.
var (
	tomlUnmarshal func([]byte, any) error
	yamlUnmarshal func([]byte, any) error
)

type Config struct {
	Input struct {
		Path        string `json:"path" toml:"path" yaml:"path"`
		StateColumn string `json:"state_column" toml:"state_column" yaml:"state_column"`
		ValueColumn string `json:"value_column" toml:"value_column" yaml:"value_column"`
	} `json:"input" toml:"input" yaml:"input"`
	Output struct {
		Path   string `json:"path" toml:"path" yaml:"path"`
		Export string `json:"export" toml:"export" yaml:"export"`
		Show   bool   `json:"show" toml:"show" yaml:"show"`
	} `json:"output" toml:"output" yaml:"output"`
	Plot struct {
		Title        string    `json:"title" toml:"title" yaml:"title"`
		ValueLabel   string    `json:"value_label" toml:"value_label" yaml:"value_label"`
		ColorScheme  string    `json:"color_scheme" toml:"color_scheme" yaml:"color_scheme"`
		Style        string    `json:"style" toml:"style" yaml:"style"`
		ScaleType    string    `json:"scale_type" toml:"scale_type" yaml:"scale_type"`
		CustomBins   []float64 `json:"custom_bins" toml:"custom_bins" yaml:"custom_bins"`
		Width        int       `json:"width" toml:"width" yaml:"width"`
		Height       int       `json:"height" toml:"height" yaml:"height"`
		ReverseScale bool      `json:"reverse_scale" toml:"reverse_scale" yaml:"reverse_scale"`
		MissingColor string    `json:"missing_color" toml:"missing_color" yaml:"missing_color"`
	} `json:"plot" toml:"plot" yaml:"plot"`
}

func loadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if tomlUnmarshal == nil {
			return nil, fmt.Errorf("built without toml support (build with -tags toml)")
		}
		err = tomlUnmarshal(b, &cfg)
	case ".yaml", ".yml":
		if yamlUnmarshal == nil {
			return nil, fmt.Errorf("built without yaml support (build with -tags yaml)")
		}
		err = yamlUnmarshal(b, &cfg)
	default:
		err = json.Unmarshal(b, &cfg)
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	configPath := flag.String("config", "", "Path to plot config (JSON; TOML/YAML with build tags)")
	input := flag.String("input", "", "Path to input data (csv/tsv/xlsx; csv may be gzipped)")
	stateCol := flag.String("state-col", "", "State column name (auto-detected if empty)")
	valueCol := flag.String("value-col", "", "Value column name (auto-detected if empty)")
	output := flag.String("o", "", "Output path (.html interactive; .png/.jpg/.svg/.pdf static)")
	exportPath := flag.String("export", "", "Export normalized data (.csv/.tsv/.jsonl/.parquet)")
	title := flag.String("title", "", "Plot title")
	label := flag.String("label", "", "Value label")
	scheme := flag.String("scheme", "", "Color scheme (Blues, Teal, Viridis, Cividis, RdYlGn, Greens)")
	style := flag.String("style", "", "Style preset (professional, light, dark, colorblind)")
	scale := flag.String("scale", "", "Scale type (linear, log, custom)")
	bins := flag.String("bins", "", "Custom bin edges for -scale custom, comma separated")
	width := flag.Int("width", 0, "Plot width in pixels")
	height := flag.Int("height", 0, "Plot height in pixels")
	reverse := flag.Bool("reverse", false, "Reverse the color scale")
	stats := flag.Bool("stats", false, "Print a summary of the normalized data")
	show := flag.Bool("show", false, "Open the rendered map in a browser")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *showVersion {
		fmt.Println("usmap", version)
		return
	}

	cfg := &Config{}
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	// Flags override the config file.
	if *input != "" {
		cfg.Input.Path = *input
	}
	if *stateCol != "" {
		cfg.Input.StateColumn = *stateCol
	}
	if *valueCol != "" {
		cfg.Input.ValueColumn = *valueCol
	}
	if *output != "" {
		cfg.Output.Path = *output
	}
	if *exportPath != "" {
		cfg.Output.Export = *exportPath
	}
	if *show {
		cfg.Output.Show = true
	}

	if cfg.Input.Path == "" {
		fmt.Fprintln(os.Stderr, "no input provided; try -input <file> or -version")
		os.Exit(2)
	}

	sess, err := usmap.Open(cfg.Input.Path,
		usmap.WithColumns(cfg.Input.StateColumn, cfg.Input.ValueColumn),
		usmap.WithRenderer(render.New()),
		usmap.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sess.Customize(overrides(cfg, *title, *label, *scheme, *style, *scale, *bins, *width, *height, *reverse))

	if *stats {
		sess.Summary(os.Stdout)
	}
	if cfg.Output.Export != "" {
		if err := sess.Export(cfg.Output.Export); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger.Info("data exported", "path", cfg.Output.Export)
	}
	if cfg.Output.Path != "" || cfg.Output.Show {
		if _, err := sess.Plot(cfg.Output.Path, cfg.Output.Show); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if cfg.Output.Path != "" {
			logger.Info("map saved", "path", cfg.Output.Path)
		}
	}
}

// overrides folds the config file's plot section and the CLI flags into
// one Overrides value, flags winning.
func overrides(cfg *Config, title, label, scheme, style, scale, bins string, width, height int, reverse bool) usmap.Overrides {
	var o usmap.Overrides

	pick := func(flagVal, cfgVal string) *string {
		if flagVal != "" {
			return &flagVal
		}
		if cfgVal != "" {
			return &cfgVal
		}
		return nil
	}
	o.Title = pick(title, cfg.Plot.Title)
	o.ValueLabel = pick(label, cfg.Plot.ValueLabel)
	o.ColorScheme = pick(scheme, cfg.Plot.ColorScheme)
	o.MissingColor = pick("", cfg.Plot.MissingColor)

	if s := pick(style, cfg.Plot.Style); s != nil {
		st := usmap.Style(*s)
		o.Style = &st
	}
	if s := pick(scale, cfg.Plot.ScaleType); s != nil {
		sc := usmap.ScaleType(*s)
		o.ScaleType = &sc
	}
	if bins != "" {
		for _, part := range strings.Split(bins, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "bad bin edge %q\n", part)
				os.Exit(2)
			}
			o.CustomBins = append(o.CustomBins, v)
		}
	} else if len(cfg.Plot.CustomBins) > 0 {
		o.CustomBins = cfg.Plot.CustomBins
	}
	if width > 0 {
		o.Width = &width
	} else if cfg.Plot.Width > 0 {
		o.Width = &cfg.Plot.Width
	}
	if height > 0 {
		o.Height = &height
	} else if cfg.Plot.Height > 0 {
		o.Height = &cfg.Plot.Height
	}
	if reverse || cfg.Plot.ReverseScale {
		t := true
		o.ReverseScale = &t
	}
	return o
}
