// Package domain holds the small JSON-persisted value types shared between
// the ent schemas and the services.
package domain

// Option is one selectable answer for a question. Weights map frequency
// codes (e.g. "A".."D") to the points that choosing this option contributes.
type Option struct {
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Weights map[string]int `json:"weights"`
}

// Points returns the total points this option contributes across all
// frequencies.
func (o Option) Points() int {
	sum := 0
	for _, p := range o.Weights {
		sum += p
	}
	return sum
}

// Answer is one recorded answer inside a submission.
type Answer struct {
	QuestionID string `json:"question_id"`
	OptionID   string `json:"option_id"`
	Points     int    `json:"points"`
}
