// Package export provides development application record export functionality.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/coregx/devappscraper/internal/records"
)

// CSVExporter exports records to CSV format.
//
// CSV (Comma-Separated Values) is a simple text format for tabular data.
//
// Features:
//   - Configurable delimiter (comma, semicolon, tab, etc.)
//   - Proper quoting and escaping
//   - Standard RFC 4180 compliant
//
// Example usage:
//
//	exporter := export.NewCSVExporter()
//	err := exporter.Export(recs, file)
type CSVExporter struct {
	options *ExportOptions
}

// NewCSVExporter creates a new CSV exporter with default options.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{
		options: DefaultExportOptions(),
	}
}

// NewCSVExporterWithOptions creates a new CSV exporter with custom options.
func NewCSVExporterWithOptions(options *ExportOptions) *CSVExporter {
	if options == nil {
		options = DefaultExportOptions()
	}
	return &CSVExporter{
		options: options,
	}
}

// WithDelimiter returns a new CSVExporter with a custom delimiter.
//
// Common delimiters:
//   - "," - Comma (default)
//   - ";" - Semicolon (European standard)
//   - "\t" - Tab (TSV format)
func (e *CSVExporter) WithDelimiter(delimiter string) *CSVExporter {
	opts := *e.options
	opts.Delimiter = delimiter
	return &CSVExporter{options: &opts}
}

// Export writes recs to w in CSV format.
func (e *CSVExporter) Export(recs []records.Record, w io.Writer) error {
	csvWriter := csv.NewWriter(w)

	if len(e.options.Delimiter) > 0 {
		csvWriter.Comma = rune(e.options.Delimiter[0])
	}

	if e.options.IncludeHeader {
		if err := csvWriter.Write(recordFields()); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, r := range recs {
		if err := csvWriter.Write(recordRow(r)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}

	return nil
}

// ExportToString exports recs to a CSV string.
func (e *CSVExporter) ExportToString(recs []records.Record) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(recs, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ContentType returns the MIME content type for CSV.
func (e *CSVExporter) ContentType() string {
	return "text/csv"
}

// FileExtension returns the file extension for CSV.
func (e *CSVExporter) FileExtension() string {
	if e.options.Delimiter == "\t" {
		return ".tsv"
	}
	return ".csv"
}
