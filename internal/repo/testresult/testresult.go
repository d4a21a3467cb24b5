// Code generated by ent, DO NOT EDIT.

package testresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the testresult type in the database.
	Label = "test_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldTakerID holds the string denoting the taker_id field in the database.
	FieldTakerID = "taker_id"
	// FieldSubmissionID holds the string denoting the submission_id field in the database.
	FieldSubmissionID = "submission_id"
	// FieldFrequencyTotals holds the string denoting the frequency_totals field in the database.
	FieldFrequencyTotals = "frequency_totals"
	// FieldTotalPoints holds the string denoting the total_points field in the database.
	FieldTotalPoints = "total_points"
	// FieldProfileCode holds the string denoting the profile_code field in the database.
	FieldProfileCode = "profile_code"
	// FieldProfileName holds the string denoting the profile_name field in the database.
	FieldProfileName = "profile_name"
	// EdgeTaker holds the string denoting the taker edge name in mutations.
	EdgeTaker = "taker"
	// Table holds the table name of the testresult in the database.
	Table = "test_results"
	// TakerTable is the table that holds the taker relation/edge.
	TakerTable = "test_results"
	// TakerInverseTable is the table name for the Taker entity.
	// It exists in this package in order to avoid circular dependency with the "taker" package.
	TakerInverseTable = "takers"
	// TakerColumn is the table column denoting the taker relation/edge.
	TakerColumn = "taker_id"
)

// Columns holds all SQL columns for testresult fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldOrgID,
	FieldTakerID,
	FieldSubmissionID,
	FieldFrequencyTotals,
	FieldTotalPoints,
	FieldProfileCode,
	FieldProfileName,
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
	// DefaultTotalPoints holds the default value on creation for the "total_points" field.
	DefaultTotalPoints int
	// ProfileCodeValidator is a validator for the "profile_code" field. It is called by the builders before save.
	ProfileCodeValidator func(string) error
	// ProfileNameValidator is a validator for the "profile_name" field. It is called by the builders before save.
	ProfileNameValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TestResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByTakerID orders the results by the taker_id field.
func ByTakerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTakerID, opts...).ToFunc()
}

// BySubmissionID orders the results by the submission_id field.
func BySubmissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmissionID, opts...).ToFunc()
}

// ByTotalPoints orders the results by the total_points field.
func ByTotalPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPoints, opts...).ToFunc()
}

// ByProfileCode orders the results by the profile_code field.
func ByProfileCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileCode, opts...).ToFunc()
}

// ByProfileName orders the results by the profile_name field.
func ByProfileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileName, opts...).ToFunc()
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
