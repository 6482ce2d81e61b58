package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

type payload struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

func TestGetSetJSONRoundTrip(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var missing payload
	found, err := GetJSON(ctx, "content:1", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "content:1", payload{ID: 1, Text: "copy"}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "content:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{ID: 1, Text: "copy"}, got)
}

func TestCacheAsideFetchesOnceThenHits(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			fetches++
			*dest = payload{ID: 7, Text: "from db"}
			return nil
		}
	}

	var first payload
	require.NoError(t, CacheAside(ctx, ContentKey(7), &first, ContentTTL, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "from db", first.Text)

	var second payload
	require.NoError(t, CacheAside(ctx, ContentKey(7), &second, ContentTTL, fetch(&second)))
	assert.Equal(t, 1, fetches, "the second read must come from the cache")
	assert.Equal(t, first, second)
}

func TestCacheAsideFetchErrorIsNotCached(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetchErr := errors.New("record not found")
	var dest payload
	err := CacheAside(ctx, ContentKey(9), &dest, ContentTTL, func() error {
		return fetchErr
	})
	assert.ErrorIs(t, err, fetchErr)

	found, err := GetJSON(ctx, ContentKey(9), &dest)
	require.NoError(t, err)
	assert.False(t, found, "failed fetches must not leave cache entries behind")
}

func TestInvalidateContentDropsRecordAndList(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, ContentKey(3), payload{ID: 3}, ContentTTL))
	require.NoError(t, SetJSON(ctx, ContentListKey, []payload{{ID: 3}}, ContentListTTL))

	InvalidateContent(ctx, 3)

	assert.False(t, mr.Exists(ContentKey(3)))
	assert.False(t, mr.Exists(ContentListKey))
}

func TestNilClientIsPassThrough(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var dest payload
	found, err := GetJSON(ctx, "anything", &dest)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "anything", payload{ID: 1}, time.Minute))

	fetches := 0
	require.NoError(t, CacheAside(ctx, "anything", &dest, time.Minute, func() error {
		fetches++
		dest = payload{ID: 2}
		return nil
	}))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, uint(2), dest.ID)

	// Invalidation is a no-op rather than a panic.
	InvalidateContent(ctx, 1)
}

func TestContentKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "content:42", ContentKey(42))
	assert.Equal(t, "content:list", ContentListKey)
}
