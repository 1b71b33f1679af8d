// Package export provides development application record export functionality.
package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/coregx/devappscraper/internal/records"
)

// ExcelExporter exports records to Excel format (XLSX).
//
// Excel export provides rich formatting and layout capabilities.
//
// Features:
//   - Full Excel XLSX format support
//   - A bold, shaded header row
//   - Auto-fit column widths
//
// Limitations:
//   - Binary format (larger than CSV/JSON)
//   - Requires excelize library
//
// Example usage:
//
//	exporter := export.NewExcelExporter()
//	err := exporter.Export(recs, file)
type ExcelExporter struct {
	options   *ExportOptions
	sheetName string
}

// NewExcelExporter creates a new Excel exporter with default options.
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{
		options:   DefaultExportOptions(),
		sheetName: "Applications",
	}
}

// NewExcelExporterWithOptions creates a new Excel exporter with custom options.
func NewExcelExporterWithOptions(options *ExportOptions) *ExcelExporter {
	if options == nil {
		options = DefaultExportOptions()
	}
	return &ExcelExporter{
		options:   options,
		sheetName: "Applications",
	}
}

// WithSheetName returns a new ExcelExporter with a custom sheet name.
func (e *ExcelExporter) WithSheetName(name string) *ExcelExporter {
	return &ExcelExporter{
		options:   e.options,
		sheetName: name,
	}
}

// Export writes recs to w in Excel format.
func (e *ExcelExporter) Export(recs []records.Record, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := e.setupSheet(f); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E0E0E0"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	rowOffset := 0
	if e.options.IncludeHeader {
		if err := e.writeRow(f, 1, recordFields()); err != nil {
			return err
		}
		if err := f.SetCellStyle(e.sheetName, "A1", fmt.Sprintf("%s1", lastColumnName()), headerStyle); err != nil {
			return fmt.Errorf("failed to style header row: %w", err)
		}
		rowOffset = 1
	}

	for i, r := range recs {
		if err := e.writeRow(f, rowOffset+i+1, recordRow(r)); err != nil {
			return err
		}
	}

	_ = e.autoFitColumns(f, recs)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}

	return nil
}

// setupSheet creates the sheet and removes the default Sheet1 if needed.
func (e *ExcelExporter) setupSheet(f *excelize.File) error {
	index, err := f.NewSheet(e.sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	if e.sheetName != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	return nil
}

// writeRow writes one row of string values starting at column A.
func (e *ExcelExporter) writeRow(f *excelize.File, row int, values []string) error {
	for c, v := range values {
		cellName, err := excelize.CoordinatesToCellName(c+1, row)
		if err != nil {
			return fmt.Errorf("invalid cell coordinates (%d,%d): %w", row, c, err)
		}
		if err := f.SetCellValue(e.sheetName, cellName, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cellName, err)
		}
	}
	return nil
}

// autoFitColumns adjusts column widths based on content.
func (e *ExcelExporter) autoFitColumns(f *excelize.File, recs []records.Record) error {
	fields := recordFields()
	for c := range fields {
		width := e.calculateColumnWidth(fields[c], c, recs)

		colName, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			continue
		}

		if err := f.SetColWidth(e.sheetName, colName, colName, width); err != nil {
			return err
		}
	}
	return nil
}

// calculateColumnWidth calculates the optimal width for column col, whose
// header is heading.
func (e *ExcelExporter) calculateColumnWidth(heading string, col int, recs []records.Record) float64 {
	const minWidth, maxWidth = 10.0, 50.0

	width := float64(len(heading)) * 1.2
	for _, r := range recs {
		row := recordRow(r)
		if col >= len(row) {
			continue
		}
		cellWidth := float64(len(row[col])) * 1.2
		if cellWidth > width {
			width = cellWidth
		}
	}

	if width < minWidth {
		return minWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}

func lastColumnName() string {
	name, _ := excelize.ColumnNumberToName(len(recordFields()))
	return name
}

// ExportToString is not applicable for Excel (binary format).
func (e *ExcelExporter) ExportToString(recs []records.Record) (string, error) {
	return "", fmt.Errorf("Excel format is binary; use Export() with a bytes.Buffer instead")
}

// ExportToBytes exports recs to Excel format as bytes.
func (e *ExcelExporter) ExportToBytes(recs []records.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Export(recs, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ContentType returns the MIME content type for Excel.
func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExtension returns the file extension for Excel.
func (e *ExcelExporter) FileExtension() string {
	return ".xlsx"
}
