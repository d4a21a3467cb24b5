package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/resonara/resonara_backend/config"
	"github.com/resonara/resonara_backend/internal/events"
	"github.com/resonara/resonara_backend/internal/repo"
	"github.com/resonara/resonara_backend/internal/service/report"
	"github.com/resonara/resonara_backend/pkg/email"
	"github.com/resonara/resonara_backend/pkg/pdf"
	s3pkg "github.com/resonara/resonara_backend/pkg/s3"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc        fx.Lifecycle
	NC        *nats.Conn
	DB        *repo.Client
	Cfg       *config.Config
	ReportSvc report.Service
	S3        *s3pkg.Client
	Email     *email.Client
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startReportWorker(p)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// report_worker
// ---------------------------------------------------------------------------

// startReportWorker renders the PDF report for each completed submission,
// uploads it to object storage and notifies the taker by email.
func startReportWorker(p WorkerParams) {
	_, err := p.NC.Subscribe(events.SubjectSubmissionCompleted, func(msg *nats.Msg) {
		var ev events.SubmissionCompleted
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("report_worker: bad payload", "err", err)
			return
		}

		ctx := context.Background()

		narrative, err := p.ReportSvc.Assemble(ctx, ev.OrgID, ev.TakerID)
		if err != nil {
			slog.Warn("report_worker: assemble failed",
				"org_id", ev.OrgID, "taker_id", ev.TakerID, "err", err)
			return
		}
		if !narrative.HasResult {
			slog.Warn("report_worker: no result yet",
				"org_id", ev.OrgID, "taker_id", ev.TakerID)
			return
		}

		out, err := pdf.Render(narrative.Document())
		if err != nil {
			slog.Warn("report_worker: render failed",
				"taker_id", ev.TakerID, "err", err)
			return
		}

		prefix := p.Cfg.Reports.S3Prefix
		if prefix == "" {
			prefix = "reports"
		}
		key := fmt.Sprintf("%s/%s/%s.pdf", prefix, ev.OrgID, ev.TakerID)
		if err := p.S3.Upload(ctx, key, "application/pdf", bytes.NewReader(out), int64(len(out))); err != nil {
			slog.Warn("report_worker: upload failed", "key", key, "err", err)
			return
		}
		slog.Info("report_worker: report uploaded", "key", key)

		if p.Cfg.Reports.EmailOnDone {
			sendReportReadyEmail(ctx, p, ev, narrative)
		}
	})
	if err != nil {
		slog.Error("report_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("report_worker: started")
}

// takerEmail returns the taker's address. Email is optional on takers, so the
// entity field is a pointer; nil or blank means no notification can be sent.
func takerEmail(t *repo.Taker) (string, bool) {
	if t.Email == nil || *t.Email == "" {
		return "", false
	}
	return *t.Email, true
}

func sendReportReadyEmail(ctx context.Context, p WorkerParams, ev events.SubmissionCompleted, narrative *report.Narrative) {
	t, err := p.DB.Taker.Get(ctx, ev.TakerID)
	if err != nil {
		slog.Warn("report_worker: taker lookup failed", "taker_id", ev.TakerID, "err", err)
		return
	}
	to, hasEmail := takerEmail(t)
	if !hasEmail {
		return
	}

	profileName := ""
	if narrative.Profile != nil {
		profileName = narrative.Profile.Name
	}

	reportURL := fmt.Sprintf("%s/orgs/%s/takers/%s/report",
		p.Cfg.Reports.PortalURL, ev.OrgSlug, ev.TakerID)

	msg := email.BuildReportReadyEmail(email.ReportReadyData{
		TakerName:   t.Name,
		Email:       to,
		OrgName:     narrative.OrgName,
		ProfileName: profileName,
		ReportURL:   reportURL,
	})
	if err := p.Email.Send(ctx, msg); err != nil {
		slog.Warn("report_worker: email failed", "email", to, "err", err)
	}
}
