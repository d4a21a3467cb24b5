// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// OrgMembersColumns holds the columns for the "org_members" table.
	OrgMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "admin", "viewer"}, Default: "viewer"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "org_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// OrgMembersTable holds the schema information for the "org_members" table.
	OrgMembersTable = &schema.Table{
		Name:       "org_members",
		Columns:    OrgMembersColumns,
		PrimaryKey: []*schema.Column{OrgMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "org_members_organizations_members",
				Columns:    []*schema.Column{OrgMembersColumns[5]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "org_members_users_memberships",
				Columns:    []*schema.Column{OrgMembersColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "orgmember_org_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{OrgMembersColumns[5], OrgMembersColumns[6]},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "brand_primary", Type: field.TypeString, Size: 7, Default: "#2563eb"},
		{Name: "brand_secondary", Type: field.TypeString, Size: 7, Default: "#6b7280"},
		{Name: "framework", Type: field.TypeString, Size: 50, Default: "resonance"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "organization_slug",
				Unique:  false,
				Columns: []*schema.Column{OrganizationsColumns[4]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "position", Type: field.TypeInt},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON},
		{Name: "org_id", Type: field.TypeUUID},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_organizations_questions",
				Columns:    []*schema.Column{QuestionsColumns[6]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_org_id_position",
				Unique:  true,
				Columns: []*schema.Column{QuestionsColumns[6], QuestionsColumns[3]},
			},
		},
	}
	// ReportDraftsColumns holds the columns for the "report_drafts" table.
	ReportDraftsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "org_id", Type: field.TypeUUID},
		{Name: "profile_code", Type: field.TypeString, Size: 50},
		{Name: "sections", Type: field.TypeJSON, Nullable: true},
	}
	// ReportDraftsTable holds the schema information for the "report_drafts" table.
	ReportDraftsTable = &schema.Table{
		Name:       "report_drafts",
		Columns:    ReportDraftsColumns,
		PrimaryKey: []*schema.Column{ReportDraftsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reportdraft_org_id_profile_code",
				Unique:  true,
				Columns: []*schema.Column{ReportDraftsColumns[3], ReportDraftsColumns[4]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "org_id", Type: field.TypeUUID},
		{Name: "test_id", Type: field.TypeUUID},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "frequency_totals", Type: field.TypeJSON, Nullable: true},
		{Name: "total_points", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"in_progress", "completed"}, Default: "in_progress"},
		{Name: "version", Type: field.TypeInt, Default: 0},
		{Name: "taker_id", Type: field.TypeUUID},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submissions_takers_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[10]},
				RefColumns: []*schema.Column{TakersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_org_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[3]},
			},
			{
				Name:    "submission_taker_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[10]},
			},
		},
	}
	// TakersColumns holds the columns for the "takers" table.
	TakersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "org_id", Type: field.TypeUUID},
	}
	// TakersTable holds the schema information for the "takers" table.
	TakersTable = &schema.Table{
		Name:       "takers",
		Columns:    TakersColumns,
		PrimaryKey: []*schema.Column{TakersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "takers_organizations_takers",
				Columns:    []*schema.Column{TakersColumns[5]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taker_org_id",
				Unique:  false,
				Columns: []*schema.Column{TakersColumns[5]},
			},
		},
	}
	// TestsColumns holds the columns for the "tests" table.
	TestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "org_id", Type: field.TypeUUID},
	}
	// TestsTable holds the schema information for the "tests" table.
	TestsTable = &schema.Table{
		Name:       "tests",
		Columns:    TestsColumns,
		PrimaryKey: []*schema.Column{TestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tests_organizations_tests",
				Columns:    []*schema.Column{TestsColumns[7]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "test_org_id",
				Unique:  false,
				Columns: []*schema.Column{TestsColumns[7]},
			},
		},
	}
	// TestLinksColumns holds the columns for the "test_links" table.
	TestLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "org_id", Type: field.TypeUUID},
		{Name: "token", Type: field.TypeString, Unique: true, Size: 32},
		{Name: "max_uses", Type: field.TypeInt, Nullable: true},
		{Name: "use_count", Type: field.TypeInt, Default: 0},
		{Name: "test_id", Type: field.TypeUUID},
	}
	// TestLinksTable holds the schema information for the "test_links" table.
	TestLinksTable = &schema.Table{
		Name:       "test_links",
		Columns:    TestLinksColumns,
		PrimaryKey: []*schema.Column{TestLinksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "test_links_tests_links",
				Columns:    []*schema.Column{TestLinksColumns[6]},
				RefColumns: []*schema.Column{TestsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "testlink_token",
				Unique:  false,
				Columns: []*schema.Column{TestLinksColumns[3]},
			},
			{
				Name:    "testlink_org_id",
				Unique:  false,
				Columns: []*schema.Column{TestLinksColumns[2]},
			},
		},
	}
	// TestResultsColumns holds the columns for the "test_results" table.
	TestResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "org_id", Type: field.TypeUUID},
		{Name: "submission_id", Type: field.TypeUUID, Unique: true},
		{Name: "frequency_totals", Type: field.TypeJSON},
		{Name: "total_points", Type: field.TypeInt, Default: 0},
		{Name: "profile_code", Type: field.TypeString, Size: 50},
		{Name: "profile_name", Type: field.TypeString, Size: 255},
		{Name: "taker_id", Type: field.TypeUUID},
	}
	// TestResultsTable holds the schema information for the "test_results" table.
	TestResultsTable = &schema.Table{
		Name:       "test_results",
		Columns:    TestResultsColumns,
		PrimaryKey: []*schema.Column{TestResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "test_results_takers_results",
				Columns:    []*schema.Column{TestResultsColumns[8]},
				RefColumns: []*schema.Column{TakersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "testresult_org_id",
				Unique:  false,
				Columns: []*schema.Column{TestResultsColumns[2]},
			},
			{
				Name:    "testresult_taker_id",
				Unique:  false,
				Columns: []*schema.Column{TestResultsColumns[8]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		OrgMembersTable,
		OrganizationsTable,
		QuestionsTable,
		ReportDraftsTable,
		SubmissionsTable,
		TakersTable,
		TestsTable,
		TestLinksTable,
		TestResultsTable,
		UsersTable,
	}
)

func init() {
	OrgMembersTable.ForeignKeys[0].RefTable = OrganizationsTable
	OrgMembersTable.ForeignKeys[1].RefTable = UsersTable
	QuestionsTable.ForeignKeys[0].RefTable = OrganizationsTable
	SubmissionsTable.ForeignKeys[0].RefTable = TakersTable
	TakersTable.ForeignKeys[0].RefTable = OrganizationsTable
	TestsTable.ForeignKeys[0].RefTable = OrganizationsTable
	TestLinksTable.ForeignKeys[0].RefTable = TestsTable
	TestResultsTable.ForeignKeys[0].RefTable = TakersTable
}
