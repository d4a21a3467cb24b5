package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/resonara/resonara_backend/config"
	"github.com/resonara/resonara_backend/internal/repo"
	"github.com/resonara/resonara_backend/internal/service/assessment"
	"github.com/resonara/resonara_backend/internal/service/auth"
	"github.com/resonara/resonara_backend/internal/service/organization"
	"github.com/resonara/resonara_backend/internal/service/question"
	"github.com/resonara/resonara_backend/internal/service/report"
	"github.com/resonara/resonara_backend/internal/service/submission"
	"github.com/resonara/resonara_backend/internal/service/taker"
	"github.com/resonara/resonara_backend/internal/service/user"
	"github.com/resonara/resonara_backend/pkg/authorize"
	"github.com/resonara/resonara_backend/pkg/email"
	pasetotoken "github.com/resonara/resonara_backend/pkg/paseto"
	"github.com/resonara/resonara_backend/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvideOrganizationService,
		ProvideQuestionService,
		ProvideAssessmentService,
		ProvideSubmissionService,
		ProvideTakerService,
		ProvideReportService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(client *repo.Client, emailClient *email.Client, cfg *config.Config, authz authorize.IAuthorization) user.Service {
	return user.New(client, emailClient, cfg, authz)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideOrganizationService(db *repo.Client, authz authorize.IAuthorization) organization.Service {
	return organization.New(db, authz)
}

func ProvideQuestionService(db *repo.Client) question.Service {
	return question.New(db)
}

func ProvideAssessmentService(db *repo.Client, smsCli *sms.Client, cfg *config.Config) assessment.Service {
	return assessment.New(db, smsCli, cfg)
}

func ProvideSubmissionService(db *repo.Client, nc *nats.Conn) submission.Service {
	return submission.New(db, nc)
}

func ProvideTakerService(db *repo.Client) taker.Service {
	return taker.New(db)
}

func ProvideReportService(db *repo.Client) report.Service {
	return report.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
