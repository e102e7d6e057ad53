package database

import (
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// NewMemcached returns a client for the shared verdict cache tier.
// A slow cache must never hold up a verdict.
func NewMemcached(server string) *memcache.Client {
	mc := memcache.New(server)
	mc.Timeout = 200 * time.Millisecond
	mc.MaxIdleConns = 16
	return mc
}
