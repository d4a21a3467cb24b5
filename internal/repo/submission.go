// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/resonara/resonara_backend/internal/domain"
	"github.com/resonara/resonara_backend/internal/repo/submission"
	"github.com/resonara/resonara_backend/internal/repo/taker"
)

// Submission is the model entity for the Submission schema.
type Submission struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → organizations.id
	OrgID uuid.UUID `json:"org_id,omitempty"`
	// FK → takers.id
	TakerID uuid.UUID `json:"taker_id,omitempty"`
	// FK → tests.id
	TestID uuid.UUID `json:"test_id,omitempty"`
	// Answers holds the value of the "answers" field.
	Answers []domain.Answer `json:"answers,omitempty"`
	// FrequencyTotals holds the value of the "frequency_totals" field.
	FrequencyTotals map[string]int `json:"frequency_totals,omitempty"`
	// TotalPoints holds the value of the "total_points" field.
	TotalPoints int `json:"total_points,omitempty"`
	// Status holds the value of the "status" field.
	Status submission.Status `json:"status,omitempty"`
	// Bumped on every answer append
	Version int `json:"version,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubmissionQuery when eager-loading is set.
	Edges        SubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubmissionEdges holds the relations/edges for other nodes in the graph.
type SubmissionEdges struct {
	// Taker holds the value of the taker edge.
	Taker *Taker `json:"taker,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TakerOrErr returns the Taker value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionEdges) TakerOrErr() (*Taker, error) {
	if e.Taker != nil {
		return e.Taker, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: taker.Label}
	}
	return nil, &NotLoadedError{edge: "taker"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Submission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submission.FieldAnswers, submission.FieldFrequencyTotals:
			values[i] = new([]byte)
		case submission.FieldTotalPoints, submission.FieldVersion:
			values[i] = new(sql.NullInt64)
		case submission.FieldStatus:
			values[i] = new(sql.NullString)
		case submission.FieldCreatedAt, submission.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case submission.FieldID, submission.FieldOrgID, submission.FieldTakerID, submission.FieldTestID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Submission fields.
func (_m *Submission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submission.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case submission.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case submission.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case submission.FieldOrgID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value != nil {
				_m.OrgID = *value
			}
		case submission.FieldTakerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field taker_id", values[i])
			} else if value != nil {
				_m.TakerID = *value
			}
		case submission.FieldTestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value != nil {
				_m.TestID = *value
			}
		case submission.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case submission.FieldFrequencyTotals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field frequency_totals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FrequencyTotals); err != nil {
					return fmt.Errorf("unmarshal field frequency_totals: %w", err)
				}
			}
		case submission.FieldTotalPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_points", values[i])
			} else if value.Valid {
				_m.TotalPoints = int(value.Int64)
			}
		case submission.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = submission.Status(value.String)
			}
		case submission.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Submission.
// This includes values selected through modifiers, order, etc.
func (_m *Submission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTaker queries the "taker" edge of the Submission entity.
func (_m *Submission) QueryTaker() *TakerQuery {
	return NewSubmissionClient(_m.config).QueryTaker(_m)
}

// Update returns a builder for updating this Submission.
// Note that you need to call Submission.Unwrap() before calling this method if this Submission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Submission) Update() *SubmissionUpdateOne {
	return NewSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Submission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Submission) Unwrap() *Submission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Submission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Submission) String() string {
	var builder strings.Builder
	builder.WriteString("Submission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrgID))
	builder.WriteString(", ")
	builder.WriteString("taker_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TakerID))
	builder.WriteString(", ")
	builder.WriteString("test_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestID))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("frequency_totals=")
	builder.WriteString(fmt.Sprintf("%v", _m.FrequencyTotals))
	builder.WriteString(", ")
	builder.WriteString("total_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPoints))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteByte(')')
	return builder.String()
}

// Submissions is a parsable slice of Submission.
type Submissions []*Submission
