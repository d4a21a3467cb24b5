package organization

import (
	"context"
	"errors"
	"testing"

	"entgo.io/ent/dialect"
	_ "github.com/mattn/go-sqlite3"

	"github.com/resonara/resonara_backend/internal/repo/enttest"
)

func TestResolve(t *testing.T) {
	client := enttest.Open(t, dialect.SQLite, "file:orgsvc?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	svc := New(client, nil)
	ctx := context.Background()

	org := client.Organization.Create().
		SetSlug("acme-coaching").
		SetName("Acme Coaching").
		SaveX(ctx)

	t.Run("resolves by slug", func(t *testing.T) {
		got, err := svc.Resolve(ctx, "acme-coaching")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if got.ID != org.ID {
			t.Errorf("resolved id = %s, want %s", got.ID, org.ID)
		}
	})

	t.Run("resolves by id", func(t *testing.T) {
		got, err := svc.Resolve(ctx, org.ID.String())
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if got.Slug != "acme-coaching" {
			t.Errorf("resolved slug = %q, want %q", got.Slug, "acme-coaching")
		}
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		if _, err := svc.Resolve(ctx, "no-such-org"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve error = %v, want ErrNotFound", err)
		}
	})

	t.Run("empty identifier is not found", func(t *testing.T) {
		if _, err := svc.Resolve(ctx, ""); !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve error = %v, want ErrNotFound", err)
		}
	})

	t.Run("inactive organization is not found", func(t *testing.T) {
		client.Organization.Create().
			SetSlug("paused-org").
			SetName("Paused Org").
			SetIsActive(false).
			SaveX(ctx)

		if _, err := svc.Resolve(ctx, "paused-org"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve error = %v, want ErrNotFound", err)
		}
	})
}
