package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-floor-management/internal/config"
)

// keyFor builds the cache key of a request the same way the middleware
// does, without needing a Redis server.
func keyFor(target, version string) string {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return cacheKey("cache", req.URL.Path, req.URL.RawQuery, version)
}

func TestCacheKeyDistinguishesPathParams(t *testing.T) {
	// Two tables share the route pattern but must never share a cache
	// entry: a cached status for one table is wrong for the other.
	k1 := keyFor("/v1/tables/t1/status?date=2024-06-12", "7")
	k2 := keyFor("/v1/tables/t2/status?date=2024-06-12", "7")
	if k1 == k2 {
		t.Errorf("cache keys collide for different tables: %s", k1)
	}
}

func TestCacheKeyDependsOnQueryAndVersion(t *testing.T) {
	base := keyFor("/v1/stats/summary?period=month", "7")
	tests := []struct {
		name string
		key  string
	}{
		{"different query", keyFor("/v1/stats/summary?period=week", "7")},
		{"different data version", keyFor("/v1/stats/summary?period=month", "8")},
	}
	for _, tt := range tests {
		if tt.key == base {
			t.Errorf("%s must yield a distinct key", tt.name)
		}
	}
	// Identical inputs hash identically, otherwise nothing would ever hit.
	if again := keyFor("/v1/stats/summary?period=month", "7"); again != base {
		t.Errorf("key not stable: %s vs %s", again, base)
	}
}

func TestResponseCacheDisabledPassesThrough(t *testing.T) {
	for _, cfg := range []config.CacheConfig{
		{Enabled: false},
		{Enabled: true}, // enabled but no Redis client
	} {
		mw := NewResponseCache(cfg, nil)
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/v1/stats/summary", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		called := false
		err := mw(func(c echo.Context) error {
			called = true
			return c.String(http.StatusOK, "ok")
		})(c)
		if err != nil || !called {
			t.Fatalf("handler not reached (err=%v, called=%v)", err, called)
		}
		if rec.Header().Get("X-Cache") != "" {
			t.Error("pass-through must not set the X-Cache header")
		}
		if rec.Body.String() != "ok" {
			t.Errorf("body = %q, want %q", rec.Body.String(), "ok")
		}
	}
}
