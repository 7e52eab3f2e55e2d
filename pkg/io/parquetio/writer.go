package parquetio

import (
	"encoding/json"
	"fmt"

	local "github.com/xitongsys/parquet-go-source/local"
	pw "github.com/xitongsys/parquet-go/writer"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

func parquetSchemaJSON(t *tbl.Table) string {
	type field struct {
		Tag string `json:"Tag"`
	}
	type schema struct {
		Tag    string  `json:"Tag"`
		Fields []field `json:"Fields"`
	}
	sc := schema{Tag: "name=schema, repetitiontype=REQUIRED"}
	for c := 0; c < t.Cols(); c++ {
		col := t.ColumnAt(c)
		tag := "name=" + col.Name() + ", repetitiontype=OPTIONAL, type="
		switch col.Kind() {
		case tbl.KindFloat:
			tag += "DOUBLE"
		case tbl.KindInt:
			tag += "INT64"
		case tbl.KindBool:
			tag += "BOOLEAN"
		default:
			tag += "BYTE_ARRAY, convertedtype=UTF8"
		}
		sc.Fields = append(sc.Fields, field{Tag: tag})
	}
	b, _ := json.Marshal(sc)
	return string(b)
}

// WriteAll writes a Table to a Parquet file using the JSONWriter.
func WriteAll(path string, t *tbl.Table) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	writer, err := pw.NewJSONWriter(parquetSchemaJSON(t), fw, 4)
	if err != nil {
		_ = fw.Close()
		return fmt.Errorf("parquet writer init: %w", err)
	}
	defer func() { _ = writer.WriteStop(); _ = fw.Close() }()

	names := t.ColumnNames()
	for r := 0; r < t.Rows(); r++ {
		rec := make(map[string]any, len(names))
		for c, n := range names {
			if v, ok := t.ColumnAt(c).Value(r); ok {
				rec[n] = v
			}
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := writer.Write(string(b)); err != nil {
			return err
		}
	}
	return nil
}
