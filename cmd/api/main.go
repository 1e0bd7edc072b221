package main

import (
	"context"
	"flag"

	healthsvc "archcatalog-backend/internal/application/health"
	"archcatalog-backend/internal/config"
	"archcatalog-backend/internal/infrastructure/database"
	"archcatalog-backend/internal/interfaces/router"
	"archcatalog-backend/internal/pkg/logging"

	"github.com/rs/zerolog/log"
)

func main() {
	migrate := flag.Bool("migrate", false, "create the projects and waitlist tables before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	logging.Setup(cfg.Env, cfg.LogLevel)

	app, db, rdb, err := router.CreateApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("app create")
	}

	// Verify connections before serving. A missing database is allowed (fallback
	// snapshot); a configured one that does not answer is not.
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal().Err(err).Msg("Supabase (Postgres): get DB")
		}
		if err := sqlDB.Ping(); err != nil {
			log.Fatal().Err(err).Msg("Supabase (Postgres) connection failed")
		}
		log.Info().Msg("Supabase (Postgres) connected")
		if *migrate {
			if err := database.AutoMigrate(db); err != nil {
				log.Fatal().Err(err).Msg("migrate")
			}
			log.Info().Msg("tables migrated")
		}
	}
	if rdb != nil {
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("Redis connection failed")
		}
		log.Info().Msg("Redis connected")
	}
	if db != nil && cfg.SourceProbeSchedule != "off" {
		probe := &healthsvc.SourceProbe{DB: &database.Pinger{DB: db}, Errors: &healthsvc.ErrorLog{Rdb: rdb}}
		c, err := healthsvc.StartProbe(probe, cfg.SourceProbeSchedule)
		if err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.SourceProbeSchedule).Msg("source probe schedule")
		}
		defer c.Stop()
	}
	if cfg.BetaAccessKey == "" {
		log.Warn().Msg("BETA_ACCESS_KEY is empty; every key will be rejected")
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
}
