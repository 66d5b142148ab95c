package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisMarkers(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	markers := NewRedisMarkers(client, time.Hour)

	ctx := context.Background()
	key := markers.PaymentMarkerKey("o-9")
	assert.Equal(t, "payment:o-9", key)

	exists, err := markers.Exists(ctx, key)
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, markers.SetMarker(ctx, key))

	exists, err = markers.Exists(ctx, key)
	assert.NoError(t, err)
	assert.True(t, exists)

	// Markers expire so a settled order can eventually be re-charged if the
	// backend genuinely reopens it.
	mr.FastForward(2 * time.Hour)
	exists, _ = markers.Exists(ctx, key)
	assert.False(t, exists)
}
