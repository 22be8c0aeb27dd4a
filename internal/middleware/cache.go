// Package middleware carries the HTTP middleware of the service.  The
// only middleware needed here is a Redis response cache for the
// read-only overview and statistics endpoints, whose payloads are
// recomputed projections over the whole reservation set.
package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/restaurant-floor-management/internal/config"
	"github.com/iliyamo/restaurant-floor-management/internal/store"
)

// bodyCapture duplicates the response body while forwarding it to the
// client, up to a byte limit.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (b *bodyCapture) WriteHeader(code int) {
	b.status = code
	b.ResponseWriter.WriteHeader(code)
}

func (b *bodyCapture) Write(p []byte) (int, error) {
	if b.buf.Len() < b.limit {
		room := b.limit - b.buf.Len()
		if len(p) <= room {
			b.buf.Write(p)
		} else {
			b.buf.Write(p[:room])
		}
	}
	return b.ResponseWriter.Write(p)
}

// cachedResponse is the envelope stored in Redis.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// NewResponseCache returns a middleware caching successful GET
// responses in Redis.  The store's version counter is folded into every
// key, so each mutation implicitly invalidates all cached entries
// without explicit key tracking.  With caching disabled or no Redis
// client available, requests pass straight through.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			version, _ := rdb.Get(ctx, store.VersionKey).Result()
			key := cacheKey(cfg.Prefix, c.Request().URL.Path, c.Request().URL.RawQuery, version)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(raw, &cached) == nil {
					c.Response().Header().Set("X-Cache", "HIT")
					return c.Blob(cached.Status, cached.ContentType, cached.Body)
				}
			}

			capture := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = capture
			c.Response().Header().Set("X-Cache", "MISS")
			if err := next(c); err != nil {
				return err
			}

			// Only complete 200 bodies are worth keeping.
			if capture.status == http.StatusOK && capture.buf.Len() < cfg.MaxBodyBytes {
				raw, err := json.Marshal(cachedResponse{
					Status:      capture.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        capture.buf.Bytes(),
				})
				if err == nil {
					_ = rdb.SetEx(context.Background(), key, raw, cfg.TTL).Err()
				}
			}
			return nil
		}
	}
}

// cacheKey hashes the concrete request path, the query string and the
// current data version into a stable key under the configured prefix.
// The request path, not the route pattern, carries the path parameter
// values: two tables must never share a status cache entry.
func cacheKey(prefix, path, query, version string) string {
	tail := strings.Join([]string{path, query, version}, "|")
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%x", prefix, sum)
}
