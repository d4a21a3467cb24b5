package pdf

import (
	"bytes"
	"testing"
)

func sampleDocument() Document {
	return Document{
		OrgName:      "Acme Psychometrics",
		TakerName:    "Jordan Lee",
		BrandPrimary: "#2563eb",
		TotalPoints:  42,
		Frequencies: []FrequencyRow{
			{Code: "A", Name: "Anchor", Points: 18, Description: "Steady and grounded."},
			{Code: "B", Name: "Beacon", Points: 14, Description: "Draws others in."},
			{Code: "C", Name: "Current", Points: 10, Description: "Always in motion."},
		},
		ProfileName: "The Anchor",
		Summary:     "You hold things together.",
		Narrative:   "People with this profile are the quiet center of their groups.",
		Sections: map[string]string{
			"At Work":          "You bring calm to chaotic projects.",
			"In Relationships": "You are the one people call first.",
		},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	out, err := Render(sampleDocument())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Render produced empty output")
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header: %q", out[:8])
	}
}

func TestRenderWithoutSections(t *testing.T) {
	doc := sampleDocument()
	doc.Sections = nil

	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Render produced empty output")
	}
}

func TestRenderBadBrandColor(t *testing.T) {
	doc := sampleDocument()
	doc.BrandPrimary = "not-a-color"

	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render failed with malformed brand color: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Render produced empty output")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#2563eb", 37, 99, 235},
		{"#ffffff", 255, 255, 255},
		{"#000000", 0, 0, 0},
		{"2563eb", 30, 30, 30},
		{"#xyzxyz", 30, 30, 30},
		{"", 30, 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, g, b := parseHexColor(tt.in)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("parseHexColor(%q) = (%d,%d,%d), want (%d,%d,%d)",
					tt.in, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}
