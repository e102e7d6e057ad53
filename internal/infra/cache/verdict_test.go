package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/totegamma/recognizer"
)

func TestVerdictCacheLocal(t *testing.T) {
	c := NewVerdictCache(nil, time.Minute, "relaxed")
	ctx := context.Background()

	_, ok := c.Get(ctx, "abc")
	assert.False(t, ok)

	want := recognizer.Verdict{Entity: recognizer.EntityKrSsn, Mode: recognizer.ModeInvalidate, Result: true}
	require.NoError(t, c.Set(ctx, "abc", want))

	got, ok := c.Get(ctx, "abc")
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestVerdictCacheNamespace(t *testing.T) {
	relaxed := NewVerdictCache(nil, time.Minute, "relaxed")
	strict := NewVerdictCache(nil, time.Minute, "strict")

	assert.NotEqual(t, relaxed.key("abc"), strict.key("abc"))
	assert.Equal(t, "verdict:strict:abc", strict.key("abc"))
}

func TestDecodeVerdict(t *testing.T) {
	v := recognizer.Verdict{Entity: recognizer.EntityEthWallet, Mode: recognizer.ModeValidate, Result: true}
	b, err := encodeVerdict(v)
	require.NoError(t, err)

	got, err := decodeVerdict(b)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	_, err = decodeVerdict([]byte("not json"))
	assert.Error(t, err)

	_, err = decodeVerdict([]byte(`{"mode":0,"result":true}`))
	assert.ErrorContains(t, err, "missing entity")
}

func TestMemcacheExpiration(t *testing.T) {
	tests := []struct {
		ttl  time.Duration
		want int32
	}{
		{10 * time.Minute, 600},
		{30 * 24 * time.Hour, 2592000},
		{31 * 24 * time.Hour, 2592000},
		{365 * 24 * time.Hour, 2592000},
		{500 * time.Millisecond, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, memcacheExpiration(tt.ttl), tt.ttl.String())
	}
}
