package report

import (
	"context"
	"errors"
	"testing"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/resonara/resonara_backend/internal/repo/enttest"
)

func TestAssembleWithoutResult(t *testing.T) {
	client := enttest.Open(t, dialect.SQLite, "file:reportsvc?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	svc := New(client)
	ctx := context.Background()

	org := client.Organization.Create().
		SetSlug("acme-coaching").
		SetName("Acme Coaching").
		SaveX(ctx)
	tk := client.Taker.Create().
		SetOrgID(org.ID).
		SetName("Jordan").
		SaveX(ctx)

	// A taker who has not completed a test yields an empty narrative, not an
	// error.
	n, err := svc.Assemble(ctx, org.ID, tk.ID)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if n.HasResult {
		t.Error("HasResult = true, want false")
	}
	if n.Profile != nil {
		t.Errorf("Profile = %+v, want nil", n.Profile)
	}
	if len(n.Frequencies) != 0 {
		t.Errorf("Frequencies = %d rows, want 0", len(n.Frequencies))
	}
	if n.OrgName != "Acme Coaching" {
		t.Errorf("OrgName = %q, want %q", n.OrgName, "Acme Coaching")
	}
	if n.TakerName != "Jordan" {
		t.Errorf("TakerName = %q, want %q", n.TakerName, "Jordan")
	}

	t.Run("unknown taker is not found", func(t *testing.T) {
		if _, err := svc.Assemble(ctx, org.ID, uuid.New()); !errors.Is(err, ErrTakerNotFound) {
			t.Errorf("Assemble error = %v, want ErrTakerNotFound", err)
		}
	})

	t.Run("unknown organization is not found", func(t *testing.T) {
		if _, err := svc.Assemble(ctx, uuid.New(), tk.ID); !errors.Is(err, ErrOrgNotFound) {
			t.Errorf("Assemble error = %v, want ErrOrgNotFound", err)
		}
	})
}
