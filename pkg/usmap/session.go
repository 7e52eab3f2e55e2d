package usmap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wdm0006/usmap/pkg/io/csvio"
	"github.com/wdm0006/usmap/pkg/io/jsonlio"
	"github.com/wdm0006/usmap/pkg/io/parquetio"
	tbl "github.com/wdm0006/usmap/pkg/table"
)

// Artifact is a rendered map. Save persists it to a path, with the
// format chosen by extension; Show displays it interactively.
type Artifact interface {
	Save(path string) error
	Show() error
}

// Renderer turns normalized records plus configuration into an Artifact.
// Implementations live outside this package (see pkg/render) so they can
// be swapped or stubbed without touching the normalization core.
type Renderer interface {
	Render(records []Record, cfg Config) (Artifact, error)
}

// Session owns one dataset's normalized records and rendering
// configuration. Sessions are not safe for concurrent use; each caller
// gets its own.
type Session struct {
	raw      *tbl.Table
	stateCol string
	valueCol string
	records  []Record
	cfg      Config
	warnings []string
	logger   *slog.Logger
	renderer Renderer
}

type Option func(*Session)

// WithColumns pins the state and value columns, skipping auto-detection.
// Either name may be empty to keep detection for that column.
func WithColumns(state, value string) Option {
	return func(s *Session) {
		s.stateCol = state
		s.valueCol = value
	}
}

// WithRenderer injects the renderer used by Plot.
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithLogger routes warnings to l instead of the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithOverrides applies configuration overrides at construction.
func WithOverrides(o Overrides) Option {
	return func(s *Session) { s.cfg.merge(o) }
}

// Open loads a tabular file and prepares a session over it.
func Open(path string, opts ...Option) (*Session, error) {
	t, err := LoadPath(path)
	if err != nil {
		return nil, err
	}
	return newSession(t, opts...)
}

// FromTable prepares a session over an in-memory table. The table is
// copied; later pipeline steps never alias the caller's data.
func FromTable(t *tbl.Table, opts ...Option) (*Session, error) {
	return newSession(t.Clone(), opts...)
}

func newSession(t *tbl.Table, opts ...Option) (*Session, error) {
	s := &Session{raw: t, cfg: DefaultConfig(), logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.stateCol == "" {
		s.stateCol = DetectStateColumn(t)
	}
	if s.valueCol == "" {
		vc, err := DetectValueColumn(t, s.stateCol)
		if err != nil {
			return nil, err
		}
		s.valueCol = vc
	}

	warn, err := Validate(t, s.stateCol, s.valueCol)
	if err != nil {
		return nil, err
	}
	if warn != nil {
		s.warnings = append(s.warnings, warn.String())
		s.logger.Warn("unrecognized state codes",
			"codes", warn.Codes, "distinct", warn.Distinct,
			"column", s.stateCol)
	}

	s.records, err = Normalize(context.Background(), t, s.stateCol, s.valueCol)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Customize merges overrides into the session configuration and returns
// the session for chaining.
func (s *Session) Customize(o Overrides) *Session {
	s.cfg.merge(o)
	return s
}

// Config returns a copy of the current configuration.
func (s *Session) Config() Config { return s.cfg }

// StateColumn returns the detected or specified state column name.
func (s *Session) StateColumn() string { return s.stateCol }

// ValueColumn returns the detected or specified value column name.
func (s *Session) ValueColumn() string { return s.valueCol }

// Records returns the normalized records, one per distinct valid state,
// sorted by code.
func (s *Session) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Warnings returns the non-fatal messages collected while preparing the
// session.
func (s *Session) Warnings() []string {
	return append([]string(nil), s.warnings...)
}

// Statistics recomputes the descriptive snapshot from the current
// records. Nothing is cached.
func (s *Session) Statistics() Statistics {
	return computeStatistics(s.records)
}

// Plot renders the normalized records with the configured renderer. When
// savePath is non-empty the artifact is persisted there; when show is
// set it is displayed interactively.
func (s *Session) Plot(savePath string, show bool) (Artifact, error) {
	if s.renderer == nil {
		return nil, fmt.Errorf("no renderer configured; use WithRenderer")
	}
	art, err := s.renderer.Render(s.Records(), s.cfg)
	if err != nil {
		return nil, err
	}
	if savePath != "" {
		if err := art.Save(savePath); err != nil {
			return nil, err
		}
	}
	if show {
		if err := art.Show(); err != nil {
			return nil, err
		}
	}
	return art, nil
}

// Export serializes the normalized records, format by extension:
// .csv/.tsv (delimited text, optionally .gz), .jsonl, .parquet.
func (s *Session) Export(path string) error {
	t := recordsTable(s.records)
	switch ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, ".gz"))); ext {
	case ".csv":
		return csvio.WriteAll(path, t, csvio.WriterOptions{})
	case ".tsv":
		return csvio.WriteAll(path, t, csvio.WriterOptions{Delimiter: '\t'})
	case ".jsonl":
		return jsonlio.WriteAll(path, t)
	case ".parquet":
		return parquetio.WriteAll(path, t)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// summaryPrinter groups digits in the report, 39029342 -> 39,029,342.00.
var summaryPrinter = message.NewPrinter(language.AmericanEnglish)

// Summary writes the boxed text report of the current statistics to w.
func (s *Session) Summary(w io.Writer) {
	st := s.Statistics()
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "US MAP DATA SUMMARY")
	fmt.Fprintf(w, "%s\n", rule)
	fmt.Fprintf(w, "States with data: %d/%d\n", st.Count, st.TotalStates)
	fmt.Fprintf(w, "Missing states: %d\n", st.MissingStates)
	fmt.Fprintf(w, "\n%s Statistics:\n", s.cfg.ValueLabel)
	summaryPrinter.Fprintf(w, "  Mean:   %.2f\n", st.Mean)
	summaryPrinter.Fprintf(w, "  Median: %.2f\n", st.Median)
	summaryPrinter.Fprintf(w, "  Std:    %.2f\n", st.Std)
	summaryPrinter.Fprintf(w, "  Min:    %.2f\n", st.Min)
	summaryPrinter.Fprintf(w, "  Max:    %.2f\n", st.Max)
	fmt.Fprintf(w, "%s\n\n", rule)
}
