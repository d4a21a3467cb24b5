// Code generated by ent, DO NOT EDIT.

package submission

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the submission type in the database.
	Label = "submission"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldTakerID holds the string denoting the taker_id field in the database.
	FieldTakerID = "taker_id"
	// FieldTestID holds the string denoting the test_id field in the database.
	FieldTestID = "test_id"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldFrequencyTotals holds the string denoting the frequency_totals field in the database.
	FieldFrequencyTotals = "frequency_totals"
	// FieldTotalPoints holds the string denoting the total_points field in the database.
	FieldTotalPoints = "total_points"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// EdgeTaker holds the string denoting the taker edge name in mutations.
	EdgeTaker = "taker"
	// Table holds the table name of the submission in the database.
	Table = "submissions"
	// TakerTable is the table that holds the taker relation/edge.
	TakerTable = "submissions"
	// TakerInverseTable is the table name for the Taker entity.
	// It exists in this package in order to avoid circular dependency with the "taker" package.
	TakerInverseTable = "takers"
	// TakerColumn is the table column denoting the taker relation/edge.
	TakerColumn = "taker_id"
)

// Columns holds all SQL columns for submission fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOrgID,
	FieldTakerID,
	FieldTestID,
	FieldAnswers,
	FieldFrequencyTotals,
	FieldTotalPoints,
	FieldStatus,
	FieldVersion,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultTotalPoints holds the default value on creation for the "total_points" field.
	DefaultTotalPoints int
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("submission: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Submission queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByTakerID orders the results by the taker_id field.
func ByTakerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakerID, opts...).ToFunc()
}

// ByTestID orders the results by the test_id field.
func ByTestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestID, opts...).ToFunc()
}

// ByTotalPoints orders the results by the total_points field.
func ByTotalPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPoints, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByTakerField orders the results by taker field.
func ByTakerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTakerStep(), sql.OrderByField(field, opts...))
	}
}
func newTakerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TakerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TakerTable, TakerColumn),
	)
}
