package health

import (
	"context"
	"encoding/json"
	"time"

	"archcatalog-backend/internal/middleware"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ErrorLogSize is how many source errors /health/errors keeps.
const ErrorLogSize = 50

// ErrorLog keeps the most recent data-source failures in Redis so operators can tell
// "no such project" from "store unreachable" even though visitors cannot.
type ErrorLog struct {
	Rdb *redis.Client
}

// SourceError is one entry of the log.
type SourceError struct {
	Time      time.Time `json:"time"`
	Operation string    `json:"operation"`
	Message   string    `json:"message"`
}

// RecordSourceError pushes an entry and trims the list. Redis failures are only logged.
func (l *ErrorLog) RecordSourceError(ctx context.Context, op string, err error) {
	if l == nil || l.Rdb == nil || err == nil {
		return
	}
	b, merr := json.Marshal(SourceError{Time: time.Now().UTC(), Operation: op, Message: err.Error()})
	if merr != nil {
		log.Warn().Err(merr).Str("op", op).Msg("health: could not encode source error")
		return
	}
	pipe := l.Rdb.TxPipeline()
	pipe.LPush(ctx, middleware.KeyErrorLog, b)
	pipe.LTrim(ctx, middleware.KeyErrorLog, 0, ErrorLogSize-1)
	if _, perr := pipe.Exec(ctx); perr != nil {
		log.Warn().Err(perr).Str("op", op).Msg("health: could not record source error")
	}
}

// Recent returns up to ErrorLogSize entries, newest first.
func (l *ErrorLog) Recent(ctx context.Context) ([]SourceError, error) {
	out := []SourceError{}
	if l == nil || l.Rdb == nil {
		return out, nil
	}
	entries, err := l.Rdb.LRange(ctx, middleware.KeyErrorLog, 0, ErrorLogSize-1).Result()
	if err != nil {
		return nil, err
	}
	for _, s := range entries {
		var e SourceError
		if json.Unmarshal([]byte(s), &e) == nil {
			out = append(out, e)
		}
	}
	return out, nil
}
