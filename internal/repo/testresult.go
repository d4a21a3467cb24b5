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
	"github.com/resonara/resonara_backend/internal/repo/taker"
	"github.com/resonara/resonara_backend/internal/repo/testresult"
)

// TestResult is the model entity for the TestResult schema.
type TestResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → organizations.id
	OrgID uuid.UUID `json:"org_id,omitempty"`
	// FK → takers.id
	TakerID uuid.UUID `json:"taker_id,omitempty"`
	// FK → submissions.id
	SubmissionID uuid.UUID `json:"submission_id,omitempty"`
	// FrequencyTotals holds the value of the "frequency_totals" field.
	FrequencyTotals map[string]int `json:"frequency_totals,omitempty"`
	// TotalPoints holds the value of the "total_points" field.
	TotalPoints int `json:"total_points,omitempty"`
	// ProfileCode holds the value of the "profile_code" field.
	ProfileCode string `json:"profile_code,omitempty"`
	// ProfileName holds the value of the "profile_name" field.
	ProfileName string `json:"profile_name,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TestResultQuery when eager-loading is set.
	Edges        TestResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TestResultEdges holds the relations/edges for other nodes in the graph.
type TestResultEdges struct {
	// Taker holds the value of the taker edge.
	Taker *Taker `json:"taker,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TakerOrErr returns the Taker value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TestResultEdges) TakerOrErr() (*Taker, error) {
	if e.Taker != nil {
		return e.Taker, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: taker.Label}
	}
	return nil, &NotLoadedError{edge: "taker"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testresult.FieldFrequencyTotals:
			values[i] = new([]byte)
		case testresult.FieldTotalPoints:
			values[i] = new(sql.NullInt64)
		case testresult.FieldProfileCode, testresult.FieldProfileName:
			values[i] = new(sql.NullString)
		case testresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case testresult.FieldID, testresult.FieldOrgID, testresult.FieldTakerID, testresult.FieldSubmissionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestResult fields.
func (_m *TestResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case testresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case testresult.FieldOrgID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value != nil {
				_m.OrgID = *value
			}
		case testresult.FieldTakerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field taker_id", values[i])
			} else if value != nil {
				_m.TakerID = *value
			}
		case testresult.FieldSubmissionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field submission_id", values[i])
			} else if value != nil {
				_m.SubmissionID = *value
			}
		case testresult.FieldFrequencyTotals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field frequency_totals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FrequencyTotals); err != nil {
					return fmt.Errorf("unmarshal field frequency_totals: %w", err)
				}
			}
		case testresult.FieldTotalPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_points", values[i])
			} else if value.Valid {
				_m.TotalPoints = int(value.Int64)
			}
		case testresult.FieldProfileCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_code", values[i])
			} else if value.Valid {
				_m.ProfileCode = value.String
			}
		case testresult.FieldProfileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_name", values[i])
			} else if value.Valid {
				_m.ProfileName = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestResult.
// This includes values selected through modifiers, order, etc.
func (_m *TestResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTaker queries the "taker" edge of the TestResult entity.
func (_m *TestResult) QueryTaker() *TakerQuery {
	return NewTestResultClient(_m.config).QueryTaker(_m)
}

// Update returns a builder for updating this TestResult.
// Note that you need to call TestResult.Unwrap() before calling this method if this TestResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestResult) Update() *TestResultUpdateOne {
	return NewTestResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestResult) Unwrap() *TestResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TestResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestResult) String() string {
	var builder strings.Builder
	builder.WriteString("TestResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrgID))
	builder.WriteString(", ")
	builder.WriteString("taker_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TakerID))
	builder.WriteString(", ")
	builder.WriteString("submission_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmissionID))
	builder.WriteString(", ")
	builder.WriteString("frequency_totals=")
	builder.WriteString(fmt.Sprintf("%v", _m.FrequencyTotals))
	builder.WriteString(", ")
	builder.WriteString("total_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPoints))
	builder.WriteString(", ")
	builder.WriteString("profile_code=")
	builder.WriteString(_m.ProfileCode)
	builder.WriteString(", ")
	builder.WriteString("profile_name=")
	builder.WriteString(_m.ProfileName)
	builder.WriteByte(')')
	return builder.String()
}

// TestResults is a parsable slice of TestResult.
type TestResults []*TestResult
