// Package pdf renders assessment reports as PDF documents. It is a pure
// renderer: callers pass a fully assembled Document and get back bytes.
package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-pdf/fpdf"
)

// FrequencyRow is one scored bucket shown in the report table.
type FrequencyRow struct {
	Code        string
	Name        string
	Points      int
	Description string
}

// Document is everything the renderer needs for one report.
type Document struct {
	OrgName      string
	TakerName    string
	BrandPrimary string // hex color like #2563eb, used for headings
	TotalPoints  int
	Frequencies  []FrequencyRow
	ProfileName  string
	Summary      string
	Narrative    string
	// Sections are extra titled blocks appended after the narrative,
	// rendered in title order.
	Sections map[string]string
}

// Render produces the PDF bytes for a document.
func Render(doc Document) ([]byte, error) {
	r, g, b := parseHexColor(doc.BrandPrimary)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s Report", doc.OrgName), false)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, doc.OrgName, "", 1, "L", false, 0, "")

	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Assessment report for %s", doc.TakerName), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	// Frequency table
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, "Your Frequencies", "", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(50, 8, "Frequency", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Points", "1", 0, "C", true, 0, "")
	pdf.CellFormat(105, 8, "Description", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range doc.Frequencies {
		y := pdf.GetY()
		pdf.CellFormat(50, 8, row.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, strconv.Itoa(row.Points), "1", 0, "C", false, 0, "")
		pdf.MultiCell(105, 8, row.Description, "1", "L", false)
		if pdf.GetY() < y+8 {
			pdf.SetY(y + 8)
		}
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(50, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, strconv.Itoa(doc.TotalPoints), "1", 0, "C", false, 0, "")
	pdf.CellFormat(105, 8, "", "1", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Profile narrative
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, fmt.Sprintf("Your Profile: %s", doc.ProfileName), "", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetTextColor(30, 30, 30)
	if doc.Summary != "" {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, doc.Summary, "", "L", false)
		pdf.Ln(3)
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, doc.Narrative, "", "L", false)

	// Extra sections, sorted by title for stable output
	titles := make([]string, 0, len(doc.Sections))
	for title := range doc.Sections {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	for _, title := range titles {
		pdf.Ln(6)
		pdf.SetTextColor(r, g, b)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
		pdf.SetTextColor(30, 30, 30)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, doc.Sections[title], "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// parseHexColor parses "#rrggbb" into RGB components. Anything malformed
// falls back to near-black so a bad brand color never breaks rendering.
func parseHexColor(s string) (int, int, int) {
	if len(s) != 7 || s[0] != '#' {
		return 30, 30, 30
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 30, 30, 30
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
