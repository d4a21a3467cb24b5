// Package events defines the NATS subjects and payloads exchanged between
// the HTTP layer and the background workers.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	// SubjectSubmissionCompleted fires once per submission, after the
	// test result row has been written.
	SubjectSubmissionCompleted = "submission.completed"
)

// SubmissionCompleted is the payload for SubjectSubmissionCompleted.
type SubmissionCompleted struct {
	OrgID        uuid.UUID `json:"org_id"`
	OrgSlug      string    `json:"org_slug"`
	TakerID      uuid.UUID `json:"taker_id"`
	SubmissionID uuid.UUID `json:"submission_id"`
	ProfileCode  string    `json:"profile_code"`
}

// PublishSubmissionCompleted marshals and publishes the event. A nil
// connection is a no-op so tests and single-process deployments work
// without a broker.
func PublishSubmissionCompleted(nc *nats.Conn, ev SubmissionCompleted) error {
	if nc == nil {
		return nil
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", SubjectSubmissionCompleted, err)
	}
	return nc.Publish(SubjectSubmissionCompleted, data)
}
