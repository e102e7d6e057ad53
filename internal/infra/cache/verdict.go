package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/recognizer"
)

var tracer = otel.Tracer("cache")

// VerdictCache keeps verdicts in process and, when a memcached client
// is given, in memcached as a shared second tier.
type VerdictCache struct {
	local     *gocache.Cache
	mc        *memcache.Client
	ttl       time.Duration
	namespace string
}

func NewVerdictCache(mc *memcache.Client, ttl time.Duration, namespace string) *VerdictCache {
	return &VerdictCache{
		local:     gocache.New(ttl, ttl+5*time.Minute),
		mc:        mc,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *VerdictCache) key(key string) string {
	return "verdict:" + c.namespace + ":" + key
}

func (c *VerdictCache) Get(ctx context.Context, key string) (recognizer.Verdict, bool) {
	k := c.key(key)
	if cached, found := c.local.Get(k); found {
		return cached.(recognizer.Verdict), true
	}
	if c.mc == nil {
		return recognizer.Verdict{}, false
	}

	_, span := tracer.Start(ctx, "Cache.Verdict.Get")
	defer span.End()

	item, err := c.mc.Get(k)
	if err != nil {
		if !errors.Is(err, memcache.ErrCacheMiss) {
			span.RecordError(err)
		}
		return recognizer.Verdict{}, false
	}

	verdict, err := decodeVerdict(item.Value)
	if err != nil {
		span.RecordError(err)
		return recognizer.Verdict{}, false
	}

	c.local.Set(k, verdict, gocache.DefaultExpiration)
	return verdict, true
}

func (c *VerdictCache) Set(ctx context.Context, key string, verdict recognizer.Verdict) error {
	k := c.key(key)
	c.local.Set(k, verdict, gocache.DefaultExpiration)
	if c.mc == nil {
		return nil
	}

	_, span := tracer.Start(ctx, "Cache.Verdict.Set")
	defer span.End()

	value, err := encodeVerdict(verdict)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = c.mc.Set(&memcache.Item{
		Key:        k,
		Value:      value,
		Expiration: memcacheExpiration(c.ttl),
	})
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "memcache set")
	}
	return nil
}

// memcached treats expirations above 30 days as absolute unix times.
const maxMemcacheTTL = 30 * 24 * time.Hour

func memcacheExpiration(ttl time.Duration) int32 {
	if ttl > maxMemcacheTTL {
		ttl = maxMemcacheTTL
	}
	if ttl < time.Second {
		// 0 would never expire
		return 1
	}
	return int32(ttl / time.Second)
}

func encodeVerdict(v recognizer.Verdict) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode verdict")
	}
	return b, nil
}

func decodeVerdict(b []byte) (recognizer.Verdict, error) {
	var v recognizer.Verdict
	if err := json.Unmarshal(b, &v); err != nil {
		return recognizer.Verdict{}, errors.Wrap(err, "decode verdict")
	}
	if v.Entity == "" {
		return recognizer.Verdict{}, errors.New("decode verdict: missing entity")
	}
	return v, nil
}
