// Package records validates and formats the final per-row record from a
// page's projected columns.
package records

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/coregx/devappscraper/internal/gridbuild"
	"github.com/coregx/devappscraper/internal/tablerows"
)

// Record is one extracted development application.
type Record struct {
	ApplicationNumber string
	Address           string
	Description       string
	ReceivedDate      string
	InformationURL    string
	CommentURL        string
	ScrapeDate        string
}

var applicationNumberPattern = regexp.MustCompile(`^[0-9]+/[0-9]+/[0-9]+$`)

// NoDescription is emitted for Description when a row has no bound
// description cell, or its text is empty after joining.
const NoDescription = "No Description Provided"

// Extract builds a Record for each row that carries a non-empty,
// well-formed application number and a non-empty address, skipping all
// others. pdfURL becomes InformationURL, commentURL becomes CommentURL
// verbatim, and scrapeDate (already formatted YYYY-MM-DD by the caller)
// becomes ScrapeDate on every emitted record. Skipped rows produce a
// diagnostic string rather than an error.
func Extract(rows []tablerows.MappedRow, pdfURL, commentURL, scrapeDate string) ([]Record, []string) {
	var out []Record
	var diagnostics []string

	for _, row := range rows {
		appNo := concatText(row.ApplicationNumber)
		if !applicationNumberPattern.MatchString(appNo) {
			diagnostics = append(diagnostics, fmt.Sprintf("skipped row: malformed application number %q", appNo))
			continue
		}

		address := joinText(row.Address)
		if address == "" {
			diagnostics = append(diagnostics, fmt.Sprintf("skipped row %s: missing address", appNo))
			continue
		}

		description := joinText(row.Description)
		if description == "" {
			description = NoDescription
		}

		receivedDate := ""
		if d, ok := parseReceivedDate(concatText(row.ReceivedDate)); ok {
			receivedDate = d
		}

		out = append(out, Record{
			ApplicationNumber: appNo,
			Address:           address,
			Description:       description,
			ReceivedDate:      receivedDate,
			InformationURL:    pdfURL,
			CommentURL:        commentURL,
			ScrapeDate:        scrapeDate,
		})
	}

	return out, diagnostics
}

// concatText concatenates a cell's element texts with no separator and
// trims the result. A nil cell yields the empty string.
func concatText(cell *gridbuild.Cell) string {
	if cell == nil {
		return ""
	}
	var b strings.Builder
	for _, el := range cell.Elements {
		b.WriteString(el.Text)
	}
	return strings.TrimSpace(b.String())
}

// joinText space-joins a cell's element texts, collapsing any internal
// whitespace run to a single space, and trims the result. A nil cell
// yields the empty string.
func joinText(cell *gridbuild.Cell) string {
	if cell == nil {
		return ""
	}
	var parts []string
	for _, el := range cell.Elements {
		parts = append(parts, el.Text)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// parseReceivedDate parses s strictly as D/MM/YYYY (a single- or
// double-digit day, a zero-padded two-digit month, a four-digit year) and
// returns it formatted as YYYY-MM-DD. The layout's fixed-width month and
// year fields reject inputs like "7/3/19" by construction.
func parseReceivedDate(s string) (string, bool) {
	t, err := time.Parse("2/01/2006", s)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
