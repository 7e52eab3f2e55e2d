package usmap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wdm0006/usmap/pkg/io/csvio"
	iox "github.com/wdm0006/usmap/pkg/io/ioutils"
	"github.com/wdm0006/usmap/pkg/io/xlsxio"
	tbl "github.com/wdm0006/usmap/pkg/table"
)

// LoadPath reads a tabular file into a Table, dispatching on extension.
// Delimited text may be gzipped; the first row is always the header.
func LoadPath(path string) (*tbl.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	switch ext := strings.ToLower(filepath.Ext(iox.StripGz(path))); ext {
	case ".csv", ".txt":
		return csvio.Load(path, csvio.ReaderOptions{})
	case ".tsv":
		return csvio.Load(path, csvio.ReaderOptions{Delimiter: '\t'})
	case ".xlsx":
		return xlsxio.Load(path, xlsxio.ReaderOptions{})
	case ".xls":
		// Legacy binary workbooks are not OOXML; excelize cannot read them.
		return nil, fmt.Errorf("%w: %s (convert .xls to .xlsx)", ErrUnsupportedFormat, ext)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}
