package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                  string
	Port                 string
	LogLevel             string
	DatabaseURL          string // Supabase/Postgres pooler URL; empty means the catalog runs on the bundled dataset only
	RedisURL             string // optional; enables request counters and the source error log
	BetaAccessKey        string // shared secret accepted by the beta gate
	FrontendURLEndsWith  string
	DevPassword          string
	HealthAdminKey       string
	FallbackProjectsFile string // overrides the embedded fallback dataset when set
	SendinblueAPIKey     string // Brevo key for waitlist confirmations; empty disables mail
	MailFrom             string
	SiteURL              string
	SourceProbeSchedule  string // cron spec for the store probe; "off" disables it
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("NODE_ENV")
	if env == "" {
		env = viper.GetString("APP_ENV")
	}
	if env == "" {
		env = "development"
	}

	dbURL := viper.GetString("DATABASE_URL_DEV")
	if env == "production" {
		dbURL = viper.GetString("DATABASE_URL_PROD")
	} else if env == "test" {
		dbURL = viper.GetString("DATABASE_URL_TEST")
	}
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}

	logLevel := strings.ToLower(strings.TrimSpace(viper.GetString("LOG_LEVEL")))
	if logLevel == "" {
		logLevel = "info"
	}

	probeSchedule := strings.TrimSpace(viper.GetString("SOURCE_PROBE_SCHEDULE"))
	if probeSchedule == "" {
		probeSchedule = "@every 5m"
	}

	return &Config{
		Env:                  env,
		Port:                 port,
		LogLevel:             logLevel,
		DatabaseURL:          dbURL,
		RedisURL:             viper.GetString("REDIS_URL"),
		BetaAccessKey:        strings.TrimSpace(viper.GetString("BETA_ACCESS_KEY")),
		FrontendURLEndsWith:  viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:          viper.GetString("DEV_PASSWORD"),
		HealthAdminKey:       viper.GetString("HEALTH_ADMIN_KEY"),
		FallbackProjectsFile: strings.TrimSpace(viper.GetString("FALLBACK_PROJECTS_FILE")),
		SendinblueAPIKey:     viper.GetString("SENDINBLUE_API_KEY"),
		MailFrom:             viper.GetString("MAIL_FROM"),
		SiteURL:              viper.GetString("SITE_URL"),
		SourceProbeSchedule:  probeSchedule,
	}, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
