package report

import "github.com/resonara/resonara_backend/pkg/pdf"

// Document flattens an assembled narrative into the PDF renderer's input.
func (n *Narrative) Document() pdf.Document {
	doc := pdf.Document{
		OrgName:      n.OrgName,
		TakerName:    n.TakerName,
		BrandPrimary: n.Brand.Primary,
		TotalPoints:  n.TotalPoints,
	}
	for _, row := range n.Frequencies {
		doc.Frequencies = append(doc.Frequencies, pdf.FrequencyRow{
			Code:        row.Code,
			Name:        row.Name,
			Points:      row.Points,
			Description: row.Description,
		})
	}
	if n.Profile != nil {
		doc.ProfileName = n.Profile.Name
		doc.Summary = n.Profile.Summary
		doc.Narrative = n.Profile.Narrative
		doc.Sections = n.Profile.Sections
	}
	return doc
}
