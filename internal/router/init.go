package router

import (
	"time"

	"github.com/oksasatya/fitness-gen-api/internal/application"
	"github.com/oksasatya/fitness-gen-api/internal/container"
	pginfra "github.com/oksasatya/fitness-gen-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/fitness-gen-api/internal/interface/http"
	"github.com/oksasatya/fitness-gen-api/internal/interface/middleware"
	"github.com/oksasatya/fitness-gen-api/internal/router/modules"
	"github.com/oksasatya/fitness-gen-api/pkg/helpers"
	"github.com/oksasatya/fitness-gen-api/pkg/validation"
)

// Services groups the application layer built from the container.
type Services struct {
	Students     *application.StudentService
	Measurements *application.MeasurementService
	Assessments  *application.AssessmentService
	Plans        *application.PlanService
	Auth         *application.AuthService
}

func buildServices(c *container.Container) Services {
	var db pginfra.DBTX
	if c.DB != nil {
		db = c.DB
	}
	students := pginfra.NewStudentRepository(db)
	measurements := pginfra.NewMeasurementRepository(db)
	assessments := pginfra.NewAssessmentRepository(db)
	plans := pginfra.NewPlanRepository(db)

	return Services{
		Students:     application.NewStudentService(students, c.StudentIndex(), c.EmailQueue(), c.Config.Brand(), c.Logger),
		Measurements: application.NewMeasurementService(measurements, c.Logger),
		Assessments:  application.NewAssessmentService(assessments, c.PhotoStore(), c.Logger),
		Plans:        application.NewPlanService(plans, assessments, c.Logger),
		Auth:         application.NewAuthService(c.Config.CoachEmail, c.Config.CoachPasswordHash, c.JWT, c.SessionStore(), c.Logger),
	}
}

// InitModules builds every feature module from c and registers it with the router registry.
// Call it once during startup, before RegisterAll. It also installs the custom binding tags
// (cpf, notblank, optemail) that the request structs rely on.
func InitModules(r *Registry, c *container.Container) {
	validation.Init()
	cfg := c.Config
	svc := buildServices(c)

	var allow middleware.AllowFunc
	if cfg.Env == "development" {
		allow = middleware.AllowPrivateIP()
	}
	guards := modules.Guards{
		Write: middleware.RateLimit(c.Redis, cfg.RateLimitPerMinute, time.Minute, middleware.KeyByCoach(), allow),
	}
	if cfg.AuthEnabled {
		guards.Auth = middleware.JWTAuth(svc.Auth)
	}

	var pinger handlers.Pinger
	if c.DB != nil {
		pinger = c.DB
	}
	planHandler := handlers.NewPlanHandler(svc.Plans, c.Logger)

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(pinger, c.Logger)))
	r.Add(modules.NewStudentModule(
		handlers.NewStudentHandler(svc.Students, c.Logger),
		handlers.NewEmailHandler(svc.Students, c.Logger),
		guards,
	))
	r.Add(modules.NewMeasurementModule(handlers.NewMeasurementHandler(svc.Measurements, c.Logger), guards))
	r.Add(modules.NewAssessmentModule(handlers.NewAssessmentHandler(svc.Assessments, c.Logger), planHandler, guards))
	r.Add(modules.NewPlanModule(planHandler, guards))

	if cfg.AuthEnabled {
		loginLimiter := middleware.RateLimit(c.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
		cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)
		r.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc.Auth, cookies, c.Logger), loginLimiter))
	}
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(middleware.RateLimit(c.Redis, 120, time.Minute, middleware.KeyByIP(), nil)))
	}
}
