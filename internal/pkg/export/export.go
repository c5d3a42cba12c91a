// Package export converts flat record lists into downloadable files. Column
// order is always an explicit caller-supplied list, never map iteration
// order.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
)

// Format identifies a target export format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
	// FormatJSON is the fallback for unrecognized format tags
	FormatJSON Format = "json"
)

// Record is one flat row, field name to scalar value
type Record map[string]interface{}

// File is a rendered export ready to be sent to the client
type File struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Export serializes records into the requested format. The empty-input check
// happens before any format-specific work; an unrecognized format falls back
// to a JSON body carrying the records and their count.
func Export(columns []string, records []Record, format Format, baseName string) (*File, error) {
	if len(records) == 0 {
		return nil, apperrors.ErrNoExportData
	}
	if len(columns) == 0 {
		return nil, apperrors.ErrNoExportColumns
	}

	switch format {
	case FormatCSV:
		data, err := writeCSV(columns, records)
		if err != nil {
			return nil, err
		}
		return newFile(data, "text/csv", baseName, "csv"), nil
	case FormatXLSX:
		data, err := writeXLSX(columns, records)
		if err != nil {
			return nil, err
		}
		return newFile(data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", baseName, "xlsx"), nil
	case FormatPDF:
		data, err := writePDF(columns, records, baseName)
		if err != nil {
			return nil, err
		}
		return newFile(data, "application/pdf", baseName, "pdf"), nil
	default:
		data, err := json.Marshal(map[string]interface{}{
			"count": len(records),
			"data":  records,
		})
		if err != nil {
			return nil, fmt.Errorf("error encoding export fallback: %w", err)
		}
		return newFile(data, "application/json", baseName, "json"), nil
	}
}

func newFile(data []byte, contentType, baseName, ext string) *File {
	return &File{
		Data:        data,
		ContentType: contentType,
		Filename:    fmt.Sprintf("%s_%d.%s", baseName, time.Now().UnixMilli(), ext),
	}
}

// cellString renders a record value for tabular output
func cellString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case time.Time:
		return value.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", value)
	}
}
