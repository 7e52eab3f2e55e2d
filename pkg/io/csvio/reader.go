package csvio

import (
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"

	iox "github.com/wdm0006/usmap/pkg/io/ioutils"
	tbl "github.com/wdm0006/usmap/pkg/table"
)

type ReaderOptions struct {
	Delimiter  rune // 0 = sniff, default ','
	SampleRows int  // rows inspected for kind inference; default 100
}

// Load reads a delimited text file (optionally gzipped) into a Table.
// The first record is the header.
func Load(path string, opt ReaderOptions) (*tbl.Table, error) {
	rc, err := iox.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	if opt.Delimiter == 0 {
		opt.Delimiter = sniffDelimiter(path)
	}
	return Read(rc, opt)
}

// Read parses delimited text from r into a Table.
func Read(r io.Reader, opt ReaderOptions) (*tbl.Table, error) {
	cr := csv.NewReader(r)
	if opt.Delimiter != 0 {
		cr.Comma = opt.Delimiter
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return FromRecords(records, opt.SampleRows)
}

// FromRecords builds a Table from raw string records, treating the first
// record as the header and inferring column kinds from a sample. Shared
// with the spreadsheet reader, which produces the same shape.
func FromRecords(records [][]string, sampleRows int) (*tbl.Table, error) {
	if len(records) == 0 {
		return tbl.New()
	}

	header := records[0]
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(strings.ToValidUTF8(h, "?"))
	}
	if len(names) > 0 {
		names[0] = strings.TrimPrefix(names[0], "\uFEFF")
	}
	rows := records[1:]

	sample := sampleRows
	if sample <= 0 {
		sample = 100
	}
	if sample > len(rows) {
		sample = len(rows)
	}
	kinds := inferKinds(names, rows[:sample])

	cols := make([]*tbl.Column, len(names))
	for i, n := range names {
		cols[i] = tbl.NewColumn(n, kinds[i])
	}
	for _, rec := range rows {
		for i := range cols {
			if i >= len(rec) {
				cols[i].AppendNull()
				continue
			}
			val := strings.TrimSpace(strings.ToValidUTF8(rec[i], "?"))
			if val == "" {
				cols[i].AppendNull()
				continue
			}
			switch kinds[i] {
			case tbl.KindFloat:
				if x, err := strconv.ParseFloat(val, 64); err == nil {
					_ = cols[i].Append(x)
				} else {
					cols[i].AppendNull()
				}
			case tbl.KindInt:
				if x, err := strconv.ParseInt(val, 10, 64); err == nil {
					_ = cols[i].Append(x)
				} else {
					cols[i].AppendNull()
				}
			case tbl.KindBool:
				if x, err := strconv.ParseBool(strings.ToLower(val)); err == nil {
					_ = cols[i].Append(x)
				} else {
					cols[i].AppendNull()
				}
			default:
				_ = cols[i].Append(val)
			}
		}
	}
	return tbl.New(cols...)
}

var numRe = regexp.MustCompile(`^[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?$`)

// inferKinds samples rows per column, preferring numeric kinds when every
// sampled non-empty value parses. A single non-numeric value demotes the
// column to string so codes like "OR" and "ID" never masquerade as data.
func inferKinds(names []string, rows [][]string) []tbl.Kind {
	kinds := make([]tbl.Kind, len(names))
	for c := range names {
		num, integer, boolean, total := 0, 0, 0, 0
		for _, row := range rows {
			if c >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[c])
			if v == "" {
				continue
			}
			total++
			if numRe.MatchString(v) {
				num++
				if !strings.ContainsAny(v, ".eE") {
					integer++
				}
				continue
			}
			if lv := strings.ToLower(v); lv == "true" || lv == "false" {
				boolean++
			}
		}
		switch {
		case total == 0:
			kinds[c] = tbl.KindString
		case num == total:
			if integer == num {
				kinds[c] = tbl.KindInt
			} else {
				kinds[c] = tbl.KindFloat
			}
		case boolean == total:
			kinds[c] = tbl.KindBool
		default:
			kinds[c] = tbl.KindString
		}
	}
	return kinds
}

func sniffDelimiter(path string) rune {
	rc, err := iox.Open(path)
	if err != nil {
		return ','
	}
	defer func() { _ = rc.Close() }()
	buf := make([]byte, 4096)
	n, _ := rc.Read(buf)
	sample := buf[:n]
	candidates := []byte{',', '\t', ';', '|'}
	best, bestCount := byte(','), -1
	for _, c := range candidates {
		cnt := 0
		for _, b := range sample {
			if b == c {
				cnt++
			}
		}
		if cnt > bestCount {
			bestCount, best = cnt, c
		}
	}
	return rune(best)
}
