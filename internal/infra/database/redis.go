package database

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis returns a client for publishing verdict events.
// Publishing is fire and forget, so timeouts stay short.
func NewRedis(addr string, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		WriteTimeout: 500 * time.Millisecond,
		ReadTimeout:  500 * time.Millisecond,
	})
}
