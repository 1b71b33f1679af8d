// Package tablerows groups a page's cells into rows, discovers the
// heading cells that name each logical column, and projects each row's
// data cell for every bound heading.
package tablerows

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/coregx/devappscraper/internal/geometry"
	"github.com/coregx/devappscraper/internal/gridbuild"
)

// HeadingBinding is the per-document mapping from logical columns to the
// heading cell that names them. It is populated at most once per field and
// persists across pages of the same document.
type HeadingBinding struct {
	ApplicationNumber *gridbuild.Cell
	ReceivedDate      *gridbuild.Cell
	Address           *gridbuild.Cell
	Description       *gridbuild.Cell
}

// Ready reports whether the binding carries the two mandatory columns.
// ReceivedDate and Description are optional.
func (b *HeadingBinding) Ready() bool {
	return b.ApplicationNumber != nil && b.Address != nil
}

var (
	applicationNumberHeading = regexp.MustCompile(`^(developmentnumber|developmentno\.|appno)`)
	receivedDateHeading      = regexp.MustCompile(`^(dateofapplication|dateofregistration|dateregistered)`)
	addressHeading           = regexp.MustCompile(`^(propertyaddress|locationofdevelopment)`)
	descriptionHeading       = regexp.MustCompile(`^(natureofdevelopment|descriptionofdev)`)
)

// headingKey concatenates a cell's element texts with no separator, strips
// all whitespace, and lowercases: the normalized form the heading regexes
// match against.
func headingKey(c gridbuild.Cell) string {
	var b strings.Builder
	for _, el := range c.Elements {
		b.WriteString(el.Text)
	}
	return strings.ToLower(strings.Join(strings.Fields(b.String()), ""))
}

// DiscoverHeadings scans cells and fills any still-empty field of binding
// with the first cell whose normalized text matches that field's regex.
// Already-bound fields are left untouched, which is what makes heading
// discovery sticky across pages.
func DiscoverHeadings(binding *HeadingBinding, cells []gridbuild.Cell) {
	for i := range cells {
		key := headingKey(cells[i])
		if binding.ApplicationNumber == nil && applicationNumberHeading.MatchString(key) {
			binding.ApplicationNumber = &cells[i]
		}
		if binding.ReceivedDate == nil && receivedDateHeading.MatchString(key) {
			binding.ReceivedDate = &cells[i]
		}
		if binding.Address == nil && addressHeading.MatchString(key) {
			binding.Address = &cells[i]
		}
		if binding.Description == nil && descriptionHeading.MatchString(key) {
			binding.Description = &cells[i]
		}
	}
}

// Row is one bucket of cells sharing a representative y, sorted by x.
type Row struct {
	Y     float64
	Cells []gridbuild.Cell
}

// BucketRows groups cells (assumed already sorted by y bucket then x, the
// order gridbuild.Build produces) into rows: a cell joins the first
// existing row whose representative y is within Tolerance, otherwise it
// starts a new row. Each row's cells are sorted by x.
func BucketRows(cells []gridbuild.Cell) []Row {
	var rows []Row

	for _, c := range cells {
		placed := false
		for i := range rows {
			if math.Abs(rows[i].Y-c.Bounds.Y) < geometry.Tolerance {
				rows[i].Cells = append(rows[i].Cells, c)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, Row{Y: c.Bounds.Y, Cells: []gridbuild.Cell{c}})
		}
	}

	for i := range rows {
		sort.SliceStable(rows[i].Cells, func(a, b int) bool {
			return rows[i].Cells[a].Bounds.X < rows[i].Cells[b].Bounds.X
		})
	}

	return rows
}

// MappedRow is one row's data cells projected onto the bound headings.
// Missing optional columns are nil.
type MappedRow struct {
	ApplicationNumber *gridbuild.Cell
	Address           *gridbuild.Cell
	Description       *gridbuild.Cell
	ReceivedDate      *gridbuild.Cell
}

// columnOverlapThreshold is the minimum horizontal overlap, as a
// percentage, a data cell must share with a heading cell to be that
// column's member for a row.
const columnOverlapThreshold = 90.0

// ProjectColumns maps each row onto binding's headings, taking for each
// heading the row's first cell whose horizontal overlap with that heading
// exceeds 90%. Rows with no application-number cell are silently dropped.
// The header row is kept: its heading cell overlaps itself, so its heading
// text is returned as that row's application number (records.Extract then
// rejects it as malformed).
func ProjectColumns(rows []Row, binding *HeadingBinding) []MappedRow {
	var out []MappedRow

	for _, row := range rows {
		mr := MappedRow{
			ApplicationNumber: projectColumn(row.Cells, binding.ApplicationNumber),
			Address:           projectColumn(row.Cells, binding.Address),
			Description:       projectColumn(row.Cells, binding.Description),
			ReceivedDate:      projectColumn(row.Cells, binding.ReceivedDate),
		}
		if mr.ApplicationNumber == nil {
			continue
		}
		out = append(out, mr)
	}

	return out
}

func projectColumn(cells []gridbuild.Cell, heading *gridbuild.Cell) *gridbuild.Cell {
	if heading == nil {
		return nil
	}
	for i := range cells {
		if geometry.HorizontalOverlapPercent(cells[i].Bounds, heading.Bounds) > columnOverlapThreshold {
			return &cells[i]
		}
	}
	return nil
}
