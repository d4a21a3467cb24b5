// Package submission implements the taking flow: resolving a link token,
// starting a submission for a taker, and appending answers until the test is
// complete. Scoring arithmetic lives in the question option weights; this
// package applies it at record time and writes the derived TestResult when
// the last answer lands.
package submission

import (
	"context"
	"fmt"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nyaruka/phonenumbers"

	"github.com/resonara/resonara_backend/internal/catalog"
	"github.com/resonara/resonara_backend/internal/domain"
	"github.com/resonara/resonara_backend/internal/events"
	"github.com/resonara/resonara_backend/internal/repo"
	entorg "github.com/resonara/resonara_backend/internal/repo/organization"
	"github.com/resonara/resonara_backend/internal/repo/predicate"
	entquestion "github.com/resonara/resonara_backend/internal/repo/question"
	entsub "github.com/resonara/resonara_backend/internal/repo/submission"
	enttest "github.com/resonara/resonara_backend/internal/repo/test"
	entlink "github.com/resonara/resonara_backend/internal/repo/testlink"
)

// versionRetries bounds the optimistic-concurrency retry loop in RecordAnswer.
const versionRetries = 3

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type StartRequest struct {
	Name  string
	Email *string
	Phone *string
}

// ResolvedLink is what an anonymous taker sees before starting.
type ResolvedLink struct {
	Link      *repo.TestLink
	Test      *repo.Test
	Questions []*repo.Question
}

// Started pairs the created taker and submission.
type Started struct {
	Taker      *repo.Taker
	Submission *repo.Submission
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// ResolveLink returns the test and its questions for a live token.
	// An exhausted link resolves to ErrLinkExhausted; a deleted or unknown
	// token, or a link whose test was deactivated, to ErrLinkNotFound.
	ResolveLink(ctx context.Context, token string) (*ResolvedLink, error)

	// Start consumes one link use and creates the taker and an empty
	// in-progress submission.
	Start(ctx context.Context, token string, req StartRequest) (*Started, error)

	// RecordAnswer appends one answer, derives its points from the
	// question's option weights, and updates the running totals. The
	// read-modify-write is guarded by the submission version column.
	RecordAnswer(ctx context.Context, submissionID uuid.UUID, questionID, optionID string) (*repo.Submission, error)

	Get(ctx context.Context, submissionID uuid.UUID) (*repo.Submission, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type service struct {
	db *repo.Client
	nc *nats.Conn
}

func New(db *repo.Client, nc *nats.Conn) Service {
	return &service{db: db, nc: nc}
}

func (s *service) ResolveLink(ctx context.Context, token string) (*ResolvedLink, error) {
	if token == "" {
		return nil, ErrLinkNotFound
	}

	link, err := s.db.TestLink.Query().
		Where(entlink.Token(token)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("resolve link: %w", err)
	}

	if link.MaxUses != nil && link.UseCount >= *link.MaxUses {
		return nil, ErrLinkExhausted
	}

	test, err := s.db.Test.Get(ctx, link.TestID)
	if err != nil {
		return nil, fmt.Errorf("get test: %w", err)
	}
	// A deactivated test takes its outstanding links with it.
	if !test.IsActive {
		return nil, ErrLinkNotFound
	}

	questions, err := s.db.Question.Query().
		Where(entquestion.OrgID(link.OrgID)).
		Order(entquestion.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return &ResolvedLink{Link: link, Test: test, Questions: questions}, nil
}

func (s *service) Start(ctx context.Context, token string, req StartRequest) (*Started, error) {
	link, err := s.db.TestLink.Query().
		Where(entlink.Token(token)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrLinkNotFound
		}
		return nil, fmt.Errorf("resolve link: %w", err)
	}

	active, err := s.db.Test.Query().
		Where(enttest.ID(link.TestID), enttest.IsActive(true)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check test: %w", err)
	}
	if !active {
		return nil, ErrLinkNotFound
	}

	var phone *string
	if req.Phone != nil && *req.Phone != "" {
		normalized, err := normalizePhone(*req.Phone)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		phone = &normalized
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	// Consume one use. The conditional update is atomic: the row only
	// matches while use_count is still below max_uses, so two concurrent
	// starts cannot both take the last slot.
	n, err := tx.TestLink.Update().
		Where(
			entlink.ID(link.ID),
			predicate.TestLink(func(sel *entsql.Selector) {
				sel.Where(entsql.Or(
					entsql.IsNull(sel.C(entlink.FieldMaxUses)),
					entsql.ColumnsLT(sel.C(entlink.FieldUseCount), sel.C(entlink.FieldMaxUses)),
				))
			}),
		).
		AddUseCount(1).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("consume link use: %w", err)
	}
	if n == 0 {
		_ = tx.Rollback()
		return nil, ErrLinkExhausted
	}

	taker, err := tx.Taker.Create().
		SetOrgID(link.OrgID).
		SetName(req.Name).
		SetNillableEmail(req.Email).
		SetNillablePhone(phone).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("create taker: %w", err)
	}

	sub, err := tx.Submission.Create().
		SetOrgID(link.OrgID).
		SetTakerID(taker.ID).
		SetTestID(link.TestID).
		SetAnswers([]domain.Answer{}).
		SetFrequencyTotals(map[string]int{}).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, fmt.Errorf("create submission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &Started{Taker: taker, Submission: sub}, nil
}

func (s *service) RecordAnswer(ctx context.Context, submissionID uuid.UUID, questionID, optionID string) (*repo.Submission, error) {
	if submissionID == uuid.Nil || questionID == "" || optionID == "" {
		return nil, fmt.Errorf("%w: missing identifiers", ErrNotFound)
	}

	qid, err := uuid.Parse(questionID)
	if err != nil {
		return nil, ErrQuestionNotFound
	}

	for attempt := 0; attempt < versionRetries; attempt++ {
		sub, err := s.db.Submission.Query().
			Where(entsub.ID(submissionID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("get submission: %w", err)
		}
		if sub.Status == entsub.StatusCompleted {
			return nil, ErrCompleted
		}

		q, err := s.db.Question.Query().
			Where(entquestion.ID(qid), entquestion.OrgID(sub.OrgID)).
			Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrQuestionNotFound
			}
			return nil, fmt.Errorf("get question: %w", err)
		}

		answer, freqPoints, err := scoreAnswer(q.Options, questionID, optionID)
		if err != nil {
			return nil, err
		}

		answers, totals, total, err := accumulate(sub.Answers, sub.FrequencyTotals, sub.TotalPoints, answer, freqPoints)
		if err != nil {
			return nil, err
		}

		test, err := s.db.Test.Get(ctx, sub.TestID)
		if err != nil {
			return nil, fmt.Errorf("get test: %w", err)
		}
		done := test.QuestionCount > 0 && len(answers) >= test.QuestionCount

		u := s.db.Submission.Update().
			Where(entsub.ID(submissionID), entsub.Version(sub.Version)).
			SetAnswers(answers).
			SetFrequencyTotals(totals).
			SetTotalPoints(total).
			SetVersion(sub.Version + 1)
		if done {
			u = u.SetStatus(entsub.StatusCompleted)
		}

		n, err := u.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("update submission: %w", err)
		}
		if n == 0 {
			// Lost the version race; reload and retry.
			continue
		}

		updated, err := s.db.Submission.Get(ctx, submissionID)
		if err != nil {
			return nil, fmt.Errorf("reload submission: %w", err)
		}

		if done {
			if err := s.finalize(ctx, updated); err != nil {
				return nil, err
			}
		}
		return updated, nil
	}

	return nil, ErrConflict
}

func (s *service) Get(ctx context.Context, submissionID uuid.UUID) (*repo.Submission, error) {
	sub, err := s.db.Submission.Get(ctx, submissionID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return sub, nil
}

// finalize writes the derived TestResult and announces completion. The
// submission_id uniqueness constraint makes the write idempotent if two
// racing appends both observe completion.
func (s *service) finalize(ctx context.Context, sub *repo.Submission) error {
	org, err := s.db.Organization.Query().
		Where(entorg.ID(sub.OrgID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("get organization: %w", err)
	}

	fw, err := catalog.Get(org.Framework)
	if err != nil {
		return fmt.Errorf("organization framework: %w", err)
	}

	profile, err := fw.ProfileForTotals(sub.FrequencyTotals)
	if err != nil {
		return err
	}

	_, err = s.db.TestResult.Create().
		SetOrgID(sub.OrgID).
		SetTakerID(sub.TakerID).
		SetSubmissionID(sub.ID).
		SetFrequencyTotals(sub.FrequencyTotals).
		SetTotalPoints(sub.TotalPoints).
		SetProfileCode(profile.Code).
		SetProfileName(profile.Name).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			// Another append already finalized this submission.
			return nil
		}
		return fmt.Errorf("create result: %w", err)
	}

	ev := events.SubmissionCompleted{
		OrgID:        sub.OrgID,
		OrgSlug:      org.Slug,
		TakerID:      sub.TakerID,
		SubmissionID: sub.ID,
		ProfileCode:  profile.Code,
	}
	if err := events.PublishSubmissionCompleted(s.nc, ev); err != nil {
		// Completion already persisted; report delivery is best-effort.
		slog.Warn("publish submission.completed failed",
			"submission_id", sub.ID, "error", err)
	}
	return nil
}

func normalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, "")
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("not a valid number: %q", raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
