package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/resonara/resonara_backend/config"
	"github.com/resonara/resonara_backend/internal/api/http/handler"
	"github.com/resonara/resonara_backend/internal/api/http/middleware"
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
	pasetotoken "github.com/resonara/resonara_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	DB              *repo.Client
	UserSvc         user.Service
	AuthSvc         auth.Service
	OrganizationSvc organization.Service
	QuestionSvc     question.Service
	AssessmentSvc   assessment.Service
	SubmissionSvc   submission.Service
	TakerSvc        taker.Service
	ReportSvc       report.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	orgCtx := middleware.OrgContext(r.p.DB)
	orgHeader := middleware.OrgHeader(r.p.DB)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	orgH := handler.NewOrganizationHandler(r.p.OrganizationSvc)
	questionH := handler.NewQuestionHandler(r.p.QuestionSvc)
	assessmentH := handler.NewAssessmentHandler(r.p.AssessmentSvc)
	submissionH := handler.NewSubmissionHandler(r.p.SubmissionSvc)
	takerH := handler.NewTakerHandler(r.p.TakerSvc)
	reportH := handler.NewReportHandler(r.p.ReportSvc, r.p.OrganizationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, orgHeader, requirePerm)
	r.registerOrganizationRoutes(api, orgH, authRequired, orgCtx, requirePerm)
	r.registerQuestionRoutes(api, questionH, authRequired, orgHeader, requirePerm)
	r.registerAssessmentRoutes(api, assessmentH, authRequired, orgHeader, requirePerm)
	r.registerTakerRoutes(api, takerH, authRequired, orgHeader, requirePerm)
	r.registerSubmissionRoutes(api, submissionH)
	r.registerReportRoutes(api, reportH, authRequired, orgHeader, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	systemH := handler.NewSystemHandler(r.p.Cfg)
	app.Get("/system/diag", systemH.Diag)

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
