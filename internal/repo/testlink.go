// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/resonara/resonara_backend/internal/repo/test"
	"github.com/resonara/resonara_backend/internal/repo/testlink"
)

// TestLink is the model entity for the TestLink schema.
type TestLink struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → organizations.id
	OrgID uuid.UUID `json:"org_id,omitempty"`
	// FK → tests.id
	TestID uuid.UUID `json:"test_id,omitempty"`
	// Token holds the value of the "token" field.
	Token string `json:"token,omitempty"`
	// NULL means unlimited
	MaxUses *int `json:"max_uses,omitempty"`
	// UseCount holds the value of the "use_count" field.
	UseCount int `json:"use_count,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TestLinkQuery when eager-loading is set.
	Edges        TestLinkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TestLinkEdges holds the relations/edges for other nodes in the graph.
type TestLinkEdges struct {
	// Test holds the value of the test edge.
	Test *Test `json:"test,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TestOrErr returns the Test value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TestLinkEdges) TestOrErr() (*Test, error) {
	if e.Test != nil {
		return e.Test, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: test.Label}
	}
	return nil, &NotLoadedError{edge: "test"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestLink) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testlink.FieldMaxUses, testlink.FieldUseCount:
			values[i] = new(sql.NullInt64)
		case testlink.FieldToken:
			values[i] = new(sql.NullString)
		case testlink.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case testlink.FieldID, testlink.FieldOrgID, testlink.FieldTestID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestLink fields.
func (_m *TestLink) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testlink.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case testlink.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case testlink.FieldOrgID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value != nil {
				_m.OrgID = *value
			}
		case testlink.FieldTestID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field test_id", values[i])
			} else if value != nil {
				_m.TestID = *value
			}
		case testlink.FieldToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token", values[i])
			} else if value.Valid {
				_m.Token = value.String
			}
		case testlink.FieldMaxUses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_uses", values[i])
			} else if value.Valid {
				_m.MaxUses = new(int)
				*_m.MaxUses = int(value.Int64)
			}
		case testlink.FieldUseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field use_count", values[i])
			} else if value.Valid {
				_m.UseCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestLink.
// This includes values selected through modifiers, order, etc.
func (_m *TestLink) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTest queries the "test" edge of the TestLink entity.
func (_m *TestLink) QueryTest() *TestQuery {
	return NewTestLinkClient(_m.config).QueryTest(_m)
}

// Update returns a builder for updating this TestLink.
// Note that you need to call TestLink.Unwrap() before calling this method if this TestLink
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestLink) Update() *TestLinkUpdateOne {
	return NewTestLinkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestLink entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestLink) Unwrap() *TestLink {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: TestLink is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestLink) String() string {
	var builder strings.Builder
	builder.WriteString("TestLink(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrgID))
	builder.WriteString(", ")
	builder.WriteString("test_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestID))
	builder.WriteString(", ")
	builder.WriteString("token=")
	builder.WriteString(_m.Token)
	builder.WriteString(", ")
	if v := _m.MaxUses; v != nil {
		builder.WriteString("max_uses=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("use_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UseCount))
	builder.WriteByte(')')
	return builder.String()
}

// TestLinks is a parsable slice of TestLink.
type TestLinks []*TestLink
