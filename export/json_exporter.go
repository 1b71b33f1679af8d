// Package export provides development application record export functionality.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/coregx/devappscraper/internal/records"
)

// JSONExporter exports records to JSON format.
//
// Output format:
//
//	{
//	  "count": 2,
//	  "records": [
//	    {"applicationNumber": "1/2/2024", "address": "1 Example Street", ...},
//	    ...
//	  ]
//	}
//
// Example usage:
//
//	exporter := export.NewJSONExporter().WithPrettyPrint(true)
//	err := exporter.Export(recs, file)
type JSONExporter struct {
	options *ExportOptions
}

// NewJSONExporter creates a new JSON exporter with default options.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{
		options: DefaultExportOptions(),
	}
}

// NewJSONExporterWithOptions creates a new JSON exporter with custom options.
func NewJSONExporterWithOptions(options *ExportOptions) *JSONExporter {
	if options == nil {
		options = DefaultExportOptions()
	}
	return &JSONExporter{
		options: options,
	}
}

// WithPrettyPrint returns a new JSONExporter with pretty printing enabled/disabled.
func (e *JSONExporter) WithPrettyPrint(pretty bool) *JSONExporter {
	opts := *e.options
	opts.PrettyPrint = pretty
	return &JSONExporter{options: &opts}
}

// recordSetJSON is the JSON structure for a record export.
type recordSetJSON struct {
	Count   int         `json:"count"`
	Records []recordJSON `json:"records"`
}

// recordJSON is the JSON structure for a single record.
type recordJSON struct {
	ApplicationNumber string `json:"applicationNumber"`
	Address           string `json:"address"`
	Description       string `json:"description"`
	ReceivedDate      string `json:"receivedDate,omitempty"`
	InformationURL    string `json:"informationUrl"`
	CommentURL        string `json:"commentUrl"`
	ScrapeDate        string `json:"scrapeDate"`
}

// Export writes recs to w in JSON format.
func (e *JSONExporter) Export(recs []records.Record, w io.Writer) error {
	jsonData := e.buildJSON(recs)

	encoder := json.NewEncoder(w)
	if e.options.PrettyPrint {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(jsonData); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// buildJSON builds the JSON structure from recs.
func (e *JSONExporter) buildJSON(recs []records.Record) *recordSetJSON {
	out := &recordSetJSON{
		Count:   len(recs),
		Records: make([]recordJSON, len(recs)),
	}

	for i, r := range recs {
		out.Records[i] = recordJSON{
			ApplicationNumber: r.ApplicationNumber,
			Address:           r.Address,
			Description:       r.Description,
			ReceivedDate:      r.ReceivedDate,
			InformationURL:    r.InformationURL,
			CommentURL:        r.CommentURL,
			ScrapeDate:        r.ScrapeDate,
		}
	}

	return out
}

// ExportToString exports recs to a JSON string.
func (e *JSONExporter) ExportToString(recs []records.Record) (string, error) {
	var buf bytes.Buffer
	if err := e.Export(recs, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ContentType returns the MIME content type for JSON.
func (e *JSONExporter) ContentType() string {
	return "application/json"
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}
