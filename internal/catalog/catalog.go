// Package catalog exposes the bundled scoring frameworks. A framework is a
// fixed set of frequencies (scoring buckets) plus the profiles (named
// archetypes) derived from them. Frameworks are loaded once from embedded
// JSON and are immutable at runtime.
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

//go:embed frameworks/*.json
var frameworkFS embed.FS

var ErrUnknownFramework = errors.New("unknown framework")

// Frequency is one scoring bucket of a framework.
type Frequency struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Profile is a named archetype bound to a dominant frequency.
type Profile struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Frequency string `json:"frequency"`
	Summary   string `json:"summary"`
	Narrative string `json:"narrative"`
}

// Framework is a complete scoring model.
type Framework struct {
	Key         string      `json:"key"`
	Name        string      `json:"name"`
	Frequencies []Frequency `json:"frequencies"`
	Profiles    []Profile   `json:"profiles"`
}

var frameworks map[string]*Framework

func init() {
	entries, err := frameworkFS.ReadDir("frameworks")
	if err != nil {
		panic(fmt.Sprintf("catalog: read embedded frameworks: %v", err))
	}

	frameworks = make(map[string]*Framework, len(entries))
	for _, e := range entries {
		raw, err := frameworkFS.ReadFile("frameworks/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("catalog: read %s: %v", e.Name(), err))
		}
		var fw Framework
		if err := json.Unmarshal(raw, &fw); err != nil {
			panic(fmt.Sprintf("catalog: parse %s: %v", e.Name(), err))
		}
		frameworks[fw.Key] = &fw
	}
}

// Get returns the framework for key, or ErrUnknownFramework.
func Get(key string) (*Framework, error) {
	fw, ok := frameworks[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFramework, key)
	}
	return fw, nil
}

// Keys returns the available framework keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(frameworks))
	for k := range frameworks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Frequency returns the frequency with the given code, if present.
func (f *Framework) Frequency(code string) (Frequency, bool) {
	for _, fr := range f.Frequencies {
		if fr.Code == code {
			return fr, true
		}
	}
	return Frequency{}, false
}

// HasFrequency reports whether code names one of the framework's buckets.
func (f *Framework) HasFrequency(code string) bool {
	_, ok := f.Frequency(code)
	return ok
}

// Dominant returns the frequency with the highest total. Ties are broken by
// the framework's declared frequency order, so results are deterministic.
func (f *Framework) Dominant(totals map[string]int) Frequency {
	best := f.Frequencies[0]
	bestPoints := totals[best.Code]
	for _, fr := range f.Frequencies[1:] {
		if totals[fr.Code] > bestPoints {
			best = fr
			bestPoints = totals[fr.Code]
		}
	}
	return best
}

// Profile returns the profile with the given code.
func (f *Framework) Profile(code string) (Profile, error) {
	for _, p := range f.Profiles {
		if p.Code == code {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("framework %q has no profile %q", f.Key, code)
}

// ProfileForTotals selects the profile bound to the dominant frequency of the
// given totals.
func (f *Framework) ProfileForTotals(totals map[string]int) (Profile, error) {
	dom := f.Dominant(totals)
	for _, p := range f.Profiles {
		if p.Frequency == dom.Code {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("framework %q has no profile for frequency %q", f.Key, dom.Code)
}
