package router

import (
	"time"

	accesssvc "archcatalog-backend/internal/application/access"
	catalogsvc "archcatalog-backend/internal/application/catalog"
	emailsvc "archcatalog-backend/internal/application/emails"
	healthsvc "archcatalog-backend/internal/application/health"
	projectsvc "archcatalog-backend/internal/application/projects"
	waitlistsvc "archcatalog-backend/internal/application/waitlist"
	"archcatalog-backend/internal/config"
	"archcatalog-backend/internal/domain"
	"archcatalog-backend/internal/fallback"
	"archcatalog-backend/internal/infrastructure/database"
	accesshandler "archcatalog-backend/internal/interfaces/handlers/access"
	healthhandler "archcatalog-backend/internal/interfaces/handlers/health"
	projecthandler "archcatalog-backend/internal/interfaces/handlers/projects"
	waitlisthandler "archcatalog-backend/internal/interfaces/handlers/waitlist"
	"archcatalog-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Per-IP budgets for the public POST endpoints.
var (
	validateRate = middleware.RateLimitConfig{Every: 12 * time.Second, Burst: 5}
	waitlistRate = middleware.RateLimitConfig{Every: 30 * time.Second, Burst: 3}
)

// Deps are the collaborators the app is built from. DB and Rdb may be nil: the
// catalog then serves the fallback snapshot and request counters are off.
type Deps struct {
	DB       *gorm.DB
	Rdb      *redis.Client
	Fallback []domain.FallbackRecord
}

// CreateApp opens the configured stores, loads the fallback snapshot and builds the app.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
	} else {
		log.Warn().Msg("no database configured; catalog will serve the fallback snapshot")
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opt)
	}

	records, err := fallback.Load(cfg.FallbackProjectsFile)
	if err != nil {
		return nil, nil, nil, err
	}

	app := New(cfg, Deps{DB: db, Rdb: rdb, Fallback: records})
	return app, db, rdb, nil
}

// New registers global middleware and routes.
func New(cfg *config.Config, deps Deps) *fiber.App {
	// Routes match case-sensitively so they agree with the gate's prefix check.
	app := fiber.New(fiber.Config{
		CaseSensitive:           true,
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))
	app.Use(middleware.HealthMarker(deps.Rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())
	// The gate runs before any page handler; public paths pass without a cookie read.
	app.Use(middleware.BetaGate())

	errorLog := &healthsvc.ErrorLog{Rdb: deps.Rdb}

	// Health
	hh := &healthhandler.Handlers{
		Rdb:             deps.Rdb,
		ErrorLog:        errorLog,
		HealthAdminKey:  cfg.HealthAdminKey,
		FallbackRecords: len(deps.Fallback),
	}
	if deps.DB != nil {
		hh.DB = &database.Pinger{DB: deps.DB}
	}
	app.Get("/reset", hh.Reset)
	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)

	// Beta gate
	ah := &accesshandler.Handlers{Service: &accesssvc.Service{Secret: cfg.BetaAccessKey}}
	app.Get(middleware.BetaGatePath, ah.GatePage)
	bg := app.Group("/api/v1/beta")
	bg.Post("/validate", middleware.RateLimit(middleware.NewIPRateLimiter(validateRate)), ah.Validate)
	bg.Get("/status", ah.Status)
	bg.Delete("/access", ah.Revoke)

	// Waitlist (public), with a Brevo confirmation when SENDINBLUE_API_KEY is set
	var emailSender emailsvc.Sender
	if cfg.SendinblueAPIKey != "" {
		emailSender = &emailsvc.BrevoClient{APIKey: cfg.SendinblueAPIKey, MailFrom: cfg.MailFrom, SiteURL: cfg.SiteURL}
	}
	wh := &waitlisthandler.Handlers{Service: &waitlistsvc.Service{DB: deps.DB, Emails: emailSender}}
	app.Post("/api/v1/waitlist", middleware.RateLimit(middleware.NewIPRateLimiter(waitlistRate)), wh.Join)

	// Catalog pages (protected by the gate)
	repo := &projectsvc.Service{DB: deps.DB, Errors: errorLog}
	ph := &projecthandler.Handlers{
		Catalog:  &catalogsvc.Service{Projects: repo, Fallback: deps.Fallback},
		Projects: repo,
	}
	app.Get("/explorer", ph.Explorer)
	app.Get("/map", ph.Map)
	app.Get("/projects", ph.Grid)
	app.Get("/projects/types", ph.Types)
	app.Get("/project/id/:id", ph.ByID)
	app.Get("/project/:slug", ph.BySlug)
	app.Get("/country/:code", ph.ByCountry)

	return app
}
