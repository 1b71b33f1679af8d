package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/devappscraper/internal/records"
)

func testRecords() []records.Record {
	return []records.Record{
		{
			ApplicationNumber: "1/2/2024",
			Address:           "1 Example Street",
			Description:       "Single storey dwelling",
			ReceivedDate:      "2024-02-01",
			InformationURL:    "https://council.example/a.pdf",
			CommentURL:        "https://council.example/comments",
			ScrapeDate:        "2026-07-30",
		},
		{
			ApplicationNumber: "5/9/2024",
			Address:           "22 Other Road",
			Description:       "No Description Provided",
			ReceivedDate:      "",
			InformationURL:    "https://council.example/a.pdf",
			CommentURL:        "https://council.example/comments",
			ScrapeDate:        "2026-07-30",
		},
	}
}

func TestNewCSVExporter(t *testing.T) {
	exporter := NewCSVExporter()
	assert.NotNil(t, exporter)
	assert.NotNil(t, exporter.options)
	assert.Equal(t, ",", exporter.options.Delimiter)
}

func TestCSVExporter_Export(t *testing.T) {
	exporter := NewCSVExporter()

	var buf bytes.Buffer
	err := exporter.Export(testRecords(), &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ApplicationNumber,Address,Description,ReceivedDate,InformationURL,CommentURL,ScrapeDate", lines[0])
	assert.Contains(t, lines[1], "1/2/2024")
	assert.Contains(t, lines[1], "1 Example Street")
	assert.Contains(t, lines[2], "5/9/2024")
}

func TestCSVExporter_ExportToString(t *testing.T) {
	exporter := NewCSVExporter()

	result, err := exporter.ExportToString(testRecords())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(result), "\n")
	require.Len(t, lines, 3)
}

func TestCSVExporter_WithDelimiter(t *testing.T) {
	exporter := NewCSVExporter().WithDelimiter(";")

	result, err := exporter.ExportToString(testRecords())
	require.NoError(t, err)

	assert.Contains(t, result, "ApplicationNumber;Address;Description")
	assert.Contains(t, result, "1/2/2024;1 Example Street")
}

func TestCSVExporter_EmptyRecordSet(t *testing.T) {
	exporter := NewCSVExporter()
	result, err := exporter.ExportToString(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(result), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "ApplicationNumber,Address,Description,ReceivedDate,InformationURL,CommentURL,ScrapeDate", lines[0])
}

func TestCSVExporter_NoHeader(t *testing.T) {
	opts := DefaultExportOptions()
	opts.IncludeHeader = false
	exporter := NewCSVExporterWithOptions(opts)

	result, err := exporter.ExportToString(testRecords())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(result), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "1/2/2024")
}

func TestCSVExporter_WithCommaInField(t *testing.T) {
	recs := []records.Record{{ApplicationNumber: "1/2/2024", Address: "Unit 1, 2 Smith St"}}

	exporter := NewCSVExporter()
	result, err := exporter.ExportToString(recs)
	require.NoError(t, err)

	// encoding/csv automatically quotes fields with commas
	assert.Contains(t, result, "\"Unit 1, 2 Smith St\"")
}

func TestCSVExporter_ContentType(t *testing.T) {
	exporter := NewCSVExporter()
	assert.Equal(t, "text/csv", exporter.ContentType())
}

func TestCSVExporter_FileExtension(t *testing.T) {
	exporter := NewCSVExporter()
	assert.Equal(t, ".csv", exporter.FileExtension())

	tsvExporter := NewCSVExporter().WithDelimiter("\t")
	assert.Equal(t, ".tsv", tsvExporter.FileExtension())
}
