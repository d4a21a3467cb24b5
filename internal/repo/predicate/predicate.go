// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// OrgMember is the predicate function for orgmember builders.
type OrgMember func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// ReportDraft is the predicate function for reportdraft builders.
type ReportDraft func(*sql.Selector)

// Submission is the predicate function for submission builders.
type Submission func(*sql.Selector)

// Taker is the predicate function for taker builders.
type Taker func(*sql.Selector)

// Test is the predicate function for test builders.
type Test func(*sql.Selector)

// TestLink is the predicate function for testlink builders.
type TestLink func(*sql.Selector)

// TestResult is the predicate function for testresult builders.
type TestResult func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
