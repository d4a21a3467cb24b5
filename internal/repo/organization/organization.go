// Code generated by ent, DO NOT EDIT.

package organization

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the organization type in the database.
	Label = "organization"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldBrandPrimary holds the string denoting the brand_primary field in the database.
	FieldBrandPrimary = "brand_primary"
	// FieldBrandSecondary holds the string denoting the brand_secondary field in the database.
	FieldBrandSecondary = "brand_secondary"
	// FieldFramework holds the string denoting the framework field in the database.
	FieldFramework = "framework"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// EdgeMembers holds the string denoting the members edge name in mutations.
	EdgeMembers = "members"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// EdgeTests holds the string denoting the tests edge name in mutations.
	EdgeTests = "tests"
	// EdgeTakers holds the string denoting the takers edge name in mutations.
	EdgeTakers = "takers"
	// Table holds the table name of the organization in the database.
	Table = "organizations"
	// MembersTable is the table that holds the members relation/edge.
	MembersTable = "org_members"
	// MembersInverseTable is the table name for the OrgMember entity.
	// It exists in this package in order to avoid circular dependency with the "orgmember" package.
	MembersInverseTable = "org_members"
	// MembersColumn is the table column denoting the members relation/edge.
	MembersColumn = "org_id"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "questions"
	// QuestionsInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionsInverseTable = "questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "org_id"
	// TestsTable is the table that holds the tests relation/edge.
	TestsTable = "tests"
	// TestsInverseTable is the table name for the Test entity.
	// It exists in this package in order to avoid circular dependency with the "test" package.
	TestsInverseTable = "tests"
	// TestsColumn is the table column denoting the tests relation/edge.
	TestsColumn = "org_id"
	// TakersTable is the table that holds the takers relation/edge.
	TakersTable = "takers"
	// TakersInverseTable is the table name for the Taker entity.
	// It exists in this package in order to avoid circular dependency with the "taker" package.
	TakersInverseTable = "takers"
	// TakersColumn is the table column denoting the takers relation/edge.
	TakersColumn = "org_id"
)

// Columns holds all SQL columns for organization fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldSlug,
	FieldName,
	FieldBrandPrimary,
	FieldBrandSecondary,
	FieldFramework,
	FieldIsActive,
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
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultBrandPrimary holds the default value on creation for the "brand_primary" field.
	DefaultBrandPrimary string
	// BrandPrimaryValidator is a validator for the "brand_primary" field. It is called by the builders before save.
	BrandPrimaryValidator func(string) error
	// DefaultBrandSecondary holds the default value on creation for the "brand_secondary" field.
	DefaultBrandSecondary string
	// BrandSecondaryValidator is a validator for the "brand_secondary" field. It is called by the builders before save.
	BrandSecondaryValidator func(string) error
	// DefaultFramework holds the default value on creation for the "framework" field.
	DefaultFramework string
	// FrameworkValidator is a validator for the "framework" field. It is called by the builders before save.
	FrameworkValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Organization queries.
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

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByBrandPrimary orders the results by the brand_primary field.
func ByBrandPrimary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandPrimary, opts...).ToFunc()
}

// ByBrandSecondary orders the results by the brand_secondary field.
func ByBrandSecondary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandSecondary, opts...).ToFunc()
}

// ByFramework orders the results by the framework field.
func ByFramework(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFramework, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByMembersCount orders the results by members count.
func ByMembersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMembersStep(), opts...)
	}
}

// ByMembers orders the results by members terms.
func ByMembers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMembersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTestsCount orders the results by tests count.
func ByTestsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTestsStep(), opts...)
	}
}

// ByTests orders the results by tests terms.
func ByTests(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTakersCount orders the results by takers count.
func ByTakersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTakersStep(), opts...)
	}
}

// ByTakers orders the results by takers terms.
func ByTakers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTakersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMembersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MembersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MembersTable, MembersColumn),
	)
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}
func newTestsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TestsTable, TestsColumn),
	)
}
func newTakersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TakersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TakersTable, TakersColumn),
	)
}
