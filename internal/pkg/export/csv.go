package export

import (
	"bytes"
	"strings"
)

// writeCSV renders records as delimited text. The header row carries the raw
// column names; every data value is quoted with embedded quotes doubled, so
// commas and newlines inside values survive a round trip.
func writeCSV(columns []string, records []Record) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(strings.Join(columns, ","))
	buf.WriteString("\n")

	for _, record := range records {
		for i, col := range columns {
			if i > 0 {
				buf.WriteString(",")
			}
			buf.WriteString(quoteField(cellString(record[col])))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
