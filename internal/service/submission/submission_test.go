package submission

import (
	"context"
	"errors"
	"testing"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/resonara/resonara_backend/config"
	"github.com/resonara/resonara_backend/internal/repo"
	"github.com/resonara/resonara_backend/internal/repo/enttest"
	"github.com/resonara/resonara_backend/internal/service/assessment"
)

func newTestClient(t *testing.T, name string) *repo.Client {
	t.Helper()
	client := enttest.Open(t, dialect.SQLite, "file:"+name+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

// seedLink creates an organization, an active test and one shareable link.
func seedLink(t *testing.T, client *repo.Client, token string) (*repo.Organization, *repo.Test, *repo.TestLink) {
	t.Helper()
	ctx := context.Background()

	org := client.Organization.Create().
		SetSlug("link-org-" + token).
		SetName("Link Org").
		SaveX(ctx)
	test := client.Test.Create().
		SetOrgID(org.ID).
		SetName("Resonance Profile").
		SaveX(ctx)
	link := client.TestLink.Create().
		SetOrgID(org.ID).
		SetTestID(test.ID).
		SetToken(token).
		SaveX(ctx)
	return org, test, link
}

func TestRecordAnswerMissingSubmission(t *testing.T) {
	client := newTestClient(t, "subsvc-missing")
	svc := New(client, nil)
	ctx := context.Background()

	_, err := svc.RecordAnswer(ctx, uuid.New(), uuid.NewString(), "opt_1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("RecordAnswer error = %v, want ErrNotFound", err)
	}

	// Nothing may be written on the miss.
	if n := client.Submission.Query().CountX(ctx); n != 0 {
		t.Errorf("submission count = %d, want 0", n)
	}
	if n := client.TestResult.Query().CountX(ctx); n != 0 {
		t.Errorf("result count = %d, want 0", n)
	}
}

func TestResolveLinkDeletedToken(t *testing.T) {
	client := newTestClient(t, "subsvc-deleted")
	svc := New(client, nil)
	ctx := context.Background()

	org, _, link := seedLink(t, client, "tokDeleted0123456789")

	if _, err := svc.ResolveLink(ctx, link.Token); err != nil {
		t.Fatalf("ResolveLink before delete failed: %v", err)
	}

	links := assessment.New(client, nil, &config.Config{})
	if err := links.DeleteLink(ctx, org.ID, link.ID); err != nil {
		t.Fatalf("DeleteLink failed: %v", err)
	}

	if _, err := svc.ResolveLink(ctx, link.Token); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("ResolveLink error = %v, want ErrLinkNotFound", err)
	}
}

func TestResolveLinkUnknownToken(t *testing.T) {
	client := newTestClient(t, "subsvc-unknown")
	svc := New(client, nil)
	ctx := context.Background()

	if _, err := svc.ResolveLink(ctx, "neverIssuedToken0000"); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("ResolveLink error = %v, want ErrLinkNotFound", err)
	}
	if _, err := svc.ResolveLink(ctx, ""); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("ResolveLink empty token error = %v, want ErrLinkNotFound", err)
	}
}

func TestDeactivatedTestInvalidatesLinks(t *testing.T) {
	client := newTestClient(t, "subsvc-inactive")
	svc := New(client, nil)
	ctx := context.Background()

	_, test, link := seedLink(t, client, "tokInactive012345678")

	client.Test.UpdateOneID(test.ID).SetIsActive(false).SaveX(ctx)

	if _, err := svc.ResolveLink(ctx, link.Token); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("ResolveLink error = %v, want ErrLinkNotFound", err)
	}

	_, err := svc.Start(ctx, link.Token, StartRequest{Name: "Jordan"})
	if !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("Start error = %v, want ErrLinkNotFound", err)
	}

	// The refused start must not consume a use or create rows.
	reloaded := client.TestLink.GetX(ctx, link.ID)
	if reloaded.UseCount != 0 {
		t.Errorf("use count = %d, want 0", reloaded.UseCount)
	}
	if n := client.Taker.Query().CountX(ctx); n != 0 {
		t.Errorf("taker count = %d, want 0", n)
	}
}
