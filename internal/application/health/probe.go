package health

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// DefaultProbeSchedule checks the project store every five minutes.
const DefaultProbeSchedule = "@every 5m"

const probeTimeout = 10 * time.Second

var errSourceUnconfigured = errors.New("no database configured")

// SourceErrorRecorder is implemented by ErrorLog.
type SourceErrorRecorder interface {
	RecordSourceError(ctx context.Context, op string, err error)
}

// SourceProbe pings the project store on a schedule so an outage shows up in
// /health/errors even while visitors are served the fallback snapshot.
type SourceProbe struct {
	DB     DBPinger
	Errors SourceErrorRecorder
}

// Run performs one probe. It returns the ping error, which is also recorded.
func (p *SourceProbe) Run(ctx context.Context) error {
	var err error
	if p.DB == nil {
		err = errSourceUnconfigured
	} else {
		err = p.DB.Ping()
	}
	if err != nil {
		log.Warn().Err(err).Msg("source probe: project store unreachable")
		if p.Errors != nil {
			p.Errors.RecordSourceError(ctx, "source_probe", err)
		}
		return err
	}
	log.Debug().Msg("source probe: ok")
	return nil
}

// StartProbe schedules p with a cron spec (e.g. "@every 5m" or "0 */10 * * * *"
// with seconds). The caller stops the returned cron on shutdown.
func StartProbe(p *SourceProbe, spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		_ = p.Run(ctx)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	log.Info().Str("schedule", spec).Msg("source probe scheduled")
	return c, nil
}
