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
	"github.com/resonara/resonara_backend/internal/repo/reportdraft"
)

// ReportDraft is the model entity for the ReportDraft schema.
type ReportDraft struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → organizations.id
	OrgID uuid.UUID `json:"org_id,omitempty"`
	// ProfileCode holds the value of the "profile_code" field.
	ProfileCode string `json:"profile_code,omitempty"`
	// Sections holds the value of the "sections" field.
	Sections     map[string]string `json:"sections,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReportDraft) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reportdraft.FieldSections:
			values[i] = new([]byte)
		case reportdraft.FieldProfileCode:
			values[i] = new(sql.NullString)
		case reportdraft.FieldCreatedAt, reportdraft.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case reportdraft.FieldID, reportdraft.FieldOrgID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReportDraft fields.
func (_m *ReportDraft) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reportdraft.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case reportdraft.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reportdraft.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case reportdraft.FieldOrgID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value != nil {
				_m.OrgID = *value
			}
		case reportdraft.FieldProfileCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_code", values[i])
			} else if value.Valid {
				_m.ProfileCode = value.String
			}
		case reportdraft.FieldSections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sections); err != nil {
					return fmt.Errorf("unmarshal field sections: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReportDraft.
// This includes values selected through modifiers, order, etc.
func (_m *ReportDraft) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReportDraft.
// Note that you need to call ReportDraft.Unwrap() before calling this method if this ReportDraft
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReportDraft) Update() *ReportDraftUpdateOne {
	return NewReportDraftClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReportDraft entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReportDraft) Unwrap() *ReportDraft {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ReportDraft is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReportDraft) String() string {
	var builder strings.Builder
	builder.WriteString("ReportDraft(")
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
	builder.WriteString("profile_code=")
	builder.WriteString(_m.ProfileCode)
	builder.WriteString(", ")
	builder.WriteString("sections=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sections))
	builder.WriteByte(')')
	return builder.String()
}

// ReportDrafts is a parsable slice of ReportDraft.
type ReportDrafts []*ReportDraft
