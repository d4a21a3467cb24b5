package catalog

import "testing"

func TestGetKnownFrameworks(t *testing.T) {
	for _, key := range []string{"resonance", "elements"} {
		fw, err := Get(key)
		if err != nil {
			t.Fatalf("Get(%q): %v", key, err)
		}
		if len(fw.Frequencies) != 4 {
			t.Errorf("Get(%q): got %d frequencies, want 4", key, len(fw.Frequencies))
		}
		if len(fw.Profiles) != 4 {
			t.Errorf("Get(%q): got %d profiles, want 4", key, len(fw.Profiles))
		}
		for _, p := range fw.Profiles {
			if !fw.HasFrequency(p.Frequency) {
				t.Errorf("Get(%q): profile %q bound to unknown frequency %q", key, p.Code, p.Frequency)
			}
		}
	}
}

func TestGetUnknownFramework(t *testing.T) {
	if _, err := Get("astrology"); err == nil {
		t.Fatal("Get with unknown key: expected error, got nil")
	}
}

func TestDominant(t *testing.T) {
	fw, err := Get("resonance")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		totals map[string]int
		want   string
	}{
		{
			name:   "clear winner",
			totals: map[string]int{"A": 3, "B": 12, "C": 5, "D": 1},
			want:   "B",
		},
		{
			name:   "tie broken by declared order",
			totals: map[string]int{"A": 7, "B": 2, "C": 7, "D": 7},
			want:   "A",
		},
		{
			name:   "missing buckets count as zero",
			totals: map[string]int{"D": 1},
			want:   "D",
		},
		{
			name:   "empty totals fall back to first frequency",
			totals: map[string]int{},
			want:   "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fw.Dominant(tt.totals)
			if got.Code != tt.want {
				t.Errorf("Dominant(%v) = %q, want %q", tt.totals, got.Code, tt.want)
			}
		})
	}
}

func TestProfileForTotals(t *testing.T) {
	fw, err := Get("resonance")
	if err != nil {
		t.Fatal(err)
	}

	p, err := fw.ProfileForTotals(map[string]int{"A": 1, "B": 2, "C": 9, "D": 4})
	if err != nil {
		t.Fatal(err)
	}
	if p.Code != "cartographer" {
		t.Errorf("ProfileForTotals: got %q, want %q", p.Code, "cartographer")
	}
	if p.Narrative == "" {
		t.Error("ProfileForTotals: profile has empty narrative")
	}
}
