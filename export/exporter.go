// Package export provides development application record export
// functionality for various formats.
//
// Supported formats:
//   - CSV (Comma-Separated Values)
//   - JSON (JavaScript Object Notation)
//   - Excel (.xlsx)
//
// Example:
//
//	recs, err := sink.All() // e.g. a store.JSONLFile
//	err = export.NewCSVExporter().Export(recs, csvFile)
//	err = export.NewJSONExporter().Export(recs, jsonFile)
package export

import (
	"io"

	"github.com/coregx/devappscraper/internal/records"
)

// RecordExporter is the interface for exporting a run's extracted records
// to different formats.
//
// This interface enables:
//   - Multiple export formats (CSV, JSON, Excel, etc.)
//   - Custom exporter implementations
//   - Easy testing with mocks
//   - Dependency injection
//
// Example usage:
//
//	exporter := export.NewCSVExporter()
//	err := exporter.Export(recs, writer)
type RecordExporter interface {
	// Export writes recs to w in the format implemented by the exporter.
	Export(recs []records.Record, w io.Writer) error

	// ExportToString exports recs to a string.
	//
	// This is a convenience method for formats that produce text output.
	ExportToString(recs []records.Record) (string, error)

	// ContentType returns the MIME content type of the exported format.
	//
	// Examples:
	//   - CSV: "text/csv"
	//   - JSON: "application/json"
	//   - Excel: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentType() string

	// FileExtension returns the recommended file extension for the format.
	//
	// Examples:
	//   - CSV: ".csv"
	//   - JSON: ".json"
	//   - Excel: ".xlsx"
	FileExtension() string
}

// ExportOptions contains options for record export.
type ExportOptions struct {
	// Delimiter is the field delimiter for CSV export (e.g., ",", ";", "\t").
	// Default: ","
	Delimiter string

	// IncludeHeader indicates whether to emit a header row naming each
	// field. Applicable to CSV and Excel export.
	// Default: true
	IncludeHeader bool

	// PrettyPrint indicates whether to format output for readability.
	// Applicable to JSON export.
	// Default: false
	PrettyPrint bool
}

// DefaultExportOptions returns default export options.
func DefaultExportOptions() *ExportOptions {
	return &ExportOptions{
		Delimiter:     ",",
		IncludeHeader: true,
		PrettyPrint:   false,
	}
}

// recordFields returns the fixed column order every tabular exporter (CSV,
// Excel) writes records in.
func recordFields() []string {
	return []string{
		"ApplicationNumber",
		"Address",
		"Description",
		"ReceivedDate",
		"InformationURL",
		"CommentURL",
		"ScrapeDate",
	}
}

// recordRow flattens r into recordFields order.
func recordRow(r records.Record) []string {
	return []string{
		r.ApplicationNumber,
		r.Address,
		r.Description,
		r.ReceivedDate,
		r.InformationURL,
		r.CommentURL,
		r.ScrapeDate,
	}
}
