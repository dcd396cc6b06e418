package cache

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startconnect/internal/config"
	"startconnect/internal/model"
)

type fakeRedis struct {
	data   map[string]string
	getErr error
	setTTL time.Duration
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.setTTL = exp
	return redis.NewStatusResult("OK", nil)
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRedisCache_RoundTrip(t *testing.T) {
	fr := &fakeRedis{data: map[string]string{}}
	c := newRedisCache(fr, 0, quietLogger())
	q := model.NearbyQuery{Latitude: 50.6312, Longitude: 3.0571, RadiusKm: 10, Sport: "Tennis"}

	_, ok := c.GetNearby(context.Background(), q)
	assert.False(t, ok)

	c.SetNearby(context.Background(), q, []model.Center{{ID: "c1", Name: "Arena", DistanceKm: 1.2}})
	assert.Equal(t, 5*time.Minute, fr.setTTL)

	got, ok := c.GetNearby(context.Background(), q)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, 1.2, got[0].DistanceKm)
}

func TestRedisCache_BackendErrorIsMiss(t *testing.T) {
	c := newRedisCache(&fakeRedis{getErr: errors.New("conn refused")}, time.Minute, quietLogger())
	_, ok := c.GetNearby(context.Background(), model.NearbyQuery{})
	assert.False(t, ok)
}

func TestNearbyKey_Rounds(t *testing.T) {
	a := NearbyKey(model.NearbyQuery{Latitude: 50.63121, Longitude: 3.05712, RadiusKm: 10, Sport: "tennis"})
	b := NearbyKey(model.NearbyQuery{Latitude: 50.63149, Longitude: 3.05709, RadiusKm: 10, Sport: "TENNIS"})
	assert.Equal(t, a, b)
	assert.Equal(t, "centers:nearby:50.631:3.057:10.0:tennis", a)
}

func TestNew_DisabledReturnsNoop(t *testing.T) {
	c, closeFn, err := New(context.Background(), config.RedisConfig{}, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, Noop{}, c)
	assert.NoError(t, closeFn())
}
