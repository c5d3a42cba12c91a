package export

import (
	"encoding/csv"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
)

var testColumns = []string{"title", "publicationYear"}

func testRecords() []Record {
	return []Record{
		{"title": "A, B", "publicationYear": 2020},
		{"title": `He said "hi"`, "publicationYear": 2019},
	}
}

func TestExportEmptyRecords(t *testing.T) {
	_, err := Export(testColumns, nil, FormatCSV, "publications")
	assert.ErrorIs(t, err, apperrors.ErrNoExportData)

	// The empty check runs before any format-specific work
	_, err = Export(testColumns, []Record{}, Format("bogus"), "publications")
	assert.ErrorIs(t, err, apperrors.ErrNoExportData)
}

func TestExportFilenamePattern(t *testing.T) {
	file, err := Export(testColumns, testRecords(), FormatCSV, "publications")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^publications_\d{13}\.csv$`), file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)
}

func TestExportCSVQuoting(t *testing.T) {
	file, err := Export(testColumns, testRecords(), FormatCSV, "publications")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(file.Data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "title,publicationYear", lines[0])
	assert.Equal(t, `"A, B","2020"`, lines[1])
	assert.Equal(t, `"He said ""hi""","2019"`, lines[2])
}

func TestExportCSVRoundTrip(t *testing.T) {
	file, err := Export(testColumns, testRecords(), FormatCSV, "publications")
	require.NoError(t, err)

	parsed, err := csv.NewReader(strings.NewReader(string(file.Data))).ReadAll()
	require.NoError(t, err)

	require.Len(t, parsed, 3)
	assert.Equal(t, []string{"title", "publicationYear"}, parsed[0])
	assert.Equal(t, []string{"A, B", "2020"}, parsed[1])
	assert.Equal(t, []string{`He said "hi"`, "2019"}, parsed[2])
}

func TestExportCSVIdempotent(t *testing.T) {
	first, err := Export(testColumns, testRecords(), FormatCSV, "publications")
	require.NoError(t, err)
	second, err := Export(testColumns, testRecords(), FormatCSV, "publications")
	require.NoError(t, err)

	// Only the embedded timestamp in the filename may differ
	assert.Equal(t, first.Data, second.Data)
}

func TestExportJSONFallback(t *testing.T) {
	file, err := Export(testColumns, testRecords(), Format("yaml"), "publications")
	require.NoError(t, err)
	assert.Equal(t, "application/json", file.ContentType)

	var body struct {
		Count int      `json:"count"`
		Data  []Record `json:"data"`
	}
	require.NoError(t, json.Unmarshal(file.Data, &body))
	assert.Equal(t, 2, body.Count)
	assert.Len(t, body.Data, 2)
	assert.Equal(t, "A, B", body.Data[0]["title"])
}

func TestExportXLSX(t *testing.T) {
	file, err := Export(testColumns, testRecords(), FormatXLSX, "publications")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(file.Filename, ".xlsx"))
	// XLSX containers are zip archives
	assert.Equal(t, []byte{'P', 'K'}, file.Data[:2])
}

func TestExportPDF(t *testing.T) {
	file, err := Export(testColumns, testRecords(), FormatPDF, "publications")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))
	assert.True(t, strings.HasPrefix(string(file.Data), "%PDF"))
}

func TestHumanizeColumn(t *testing.T) {
	cases := map[string]string{
		"publicationYear": "Publication Year",
		"title":           "Title",
		"facultyName":     "Faculty Name",
		"":                "",
	}

	for in, want := range cases {
		assert.Equal(t, want, humanizeColumn(in))
	}
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "2020", cellString(2020))
	assert.Equal(t, "12.5", cellString(12.5))
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "true", cellString(true))
}
