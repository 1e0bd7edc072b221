package health

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping() error { return f.err }

func setupRedis(t *testing.T) *redis.Client {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return rdb
}

func TestCollectHealth_NothingConfigured(t *testing.T) {
	result := CollectHealth(context.Background(), nil, nil, 8)
	assert.Equal(t, "issue", result.Status)
	assert.Equal(t, "disconnected", result.Dependencies["database"].Status)
	assert.Equal(t, "disconnected", result.Dependencies["redis"].Status)
	assert.Equal(t, 8, result.Catalog.FallbackRecords)
	assert.Equal(t, 0, result.Traffic.TotalRequests)
}

func TestCollectHealth_DatabaseOnly(t *testing.T) {
	result := CollectHealth(context.Background(), nil, fakePinger{}, 0)
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "connected", result.Dependencies["database"].Status)

	result = CollectHealth(context.Background(), nil, fakePinger{err: errors.New("down")}, 0)
	assert.Equal(t, "issue", result.Status)
	assert.Equal(t, "error", result.Dependencies["database"].Status)
}

func TestCollectHealth_WithMiniredis(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()

	result := CollectHealth(ctx, rdb, fakePinger{}, 3)
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "connected", result.Dependencies["redis"].Status)
	assert.Equal(t, "100", result.Traffic.SuccessRate)

	require.NoError(t, rdb.Set(ctx, "health:global:req_total", "10", 0).Err())
	require.NoError(t, rdb.Set(ctx, "health:global:req_errors", "2", 0).Err())
	require.NoError(t, rdb.Set(ctx, "health:global:res_time_total", "150.5", 0).Err())
	require.NoError(t, rdb.Set(ctx, "health:global:res_count", "10", 0).Err())

	log := &ErrorLog{Rdb: rdb}
	log.RecordSourceError(ctx, "list_for_map", errors.New("connection refused"))

	result = CollectHealth(ctx, rdb, fakePinger{}, 3)
	assert.Equal(t, 10, result.Traffic.TotalRequests)
	assert.Equal(t, 8, result.Traffic.SuccessCount)
	assert.Equal(t, "80.0", result.Traffic.SuccessRate)
	assert.Equal(t, "15.05", result.Traffic.AvgResponseTime)
	assert.Equal(t, 1, result.Catalog.SourceErrors)
}

func TestErrorLog_NewestFirstAndCapped(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()
	log := &ErrorLog{Rdb: rdb}

	for i := 0; i < ErrorLogSize+5; i++ {
		log.RecordSourceError(ctx, "get_by_slug", errors.New("timeout"))
	}
	log.RecordSourceError(ctx, "list_for_grid", errors.New("connection reset"))

	entries, err := log.Recent(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, ErrorLogSize)
	assert.Equal(t, "list_for_grid", entries[0].Operation)
	assert.Equal(t, "connection reset", entries[0].Message)
}

func TestErrorLog_NilSafe(t *testing.T) {
	var log *ErrorLog
	log.RecordSourceError(context.Background(), "x", errors.New("y"))
	entries, err := log.Recent(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)

	(&ErrorLog{}).RecordSourceError(context.Background(), "x", errors.New("y"))
}
