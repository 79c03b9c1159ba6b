package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p *fakePinger) Ping() error { return p.err }

// unreachableRedis returns a client whose commands fail fast.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:            "127.0.0.1:1",
		DialTimeout:     50 * time.Millisecond,
		MaxRetries:      -1,
		PoolTimeout:     50 * time.Millisecond,
		ConnMaxIdleTime: time.Second,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newSystemRouter(db Pinger, redisClient *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewSystemHandler(db, redisClient, time.Second).RegisterRoutes(engine.Group(""))
	return engine
}

func TestSystemHandler_Health(t *testing.T) {
	router := newSystemRouter(&fakePinger{}, unreachableRedis(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"UP"`)
	assert.Contains(t, w.Body.String(), "uptime")
}

func TestSystemHandler_Ready(t *testing.T) {
	t.Run("reports 503 when the database is down", func(t *testing.T) {
		router := newSystemRouter(&fakePinger{err: assert.AnError}, unreachableRedis(t))

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"DOWN"`)
		assert.Contains(t, w.Body.String(), `"database":"DOWN`)
	})

	t.Run("reports the database as up even when redis is down", func(t *testing.T) {
		router := newSystemRouter(&fakePinger{}, unreachableRedis(t))

		req := httptest.NewRequest(http.MethodGet, "/ready", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"UP"`)
		assert.Contains(t, w.Body.String(), `"redis":"DOWN`)
	})
}
