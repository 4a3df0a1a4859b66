package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/config"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
)

func newLimitedRouter(t *testing.T, maxRequests int, window time.Duration) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	config.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	router := gin.New()
	router.POST("/contact", RateLimiter(maxRequests, window), func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", nil))
	})
	return router, mr
}

func postFrom(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	req.RemoteAddr = ip + ":51234"
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsUpToLimitThenBlocks(t *testing.T) {
	router, _ := newLimitedRouter(t, 2, time.Minute)

	assert.Equal(t, http.StatusOK, postFrom(router, "203.0.113.7").Code)
	assert.Equal(t, http.StatusOK, postFrom(router, "203.0.113.7").Code)

	w := postFrom(router, "203.0.113.7")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
	assert.Equal(t, "Too many requests", resp.Message)
	require.NotNil(t, resp.Rate)
	assert.Equal(t, 2, resp.Rate.Limit)
	assert.Zero(t, resp.Rate.Remaining)
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	router, _ := newLimitedRouter(t, 1, time.Minute)

	assert.Equal(t, http.StatusOK, postFrom(router, "203.0.113.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, postFrom(router, "203.0.113.7").Code)

	// A different client gets its own counter.
	assert.Equal(t, http.StatusOK, postFrom(router, "198.51.100.4").Code)
}

func TestRateLimiter_WindowResets(t *testing.T) {
	router, mr := newLimitedRouter(t, 1, time.Minute)

	assert.Equal(t, http.StatusOK, postFrom(router, "203.0.113.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, postFrom(router, "203.0.113.7").Code)

	mr.FastForward(time.Minute + time.Second)

	assert.Equal(t, http.StatusOK, postFrom(router, "203.0.113.7").Code)
}

func TestRateLimiter_ExposesRateInfoToHandlers(t *testing.T) {
	router, _ := newLimitedRouter(t, 5, time.Minute)

	w := postFrom(router, "203.0.113.7")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Rate, "handlers embed rate info in the envelope")
	assert.Equal(t, 5, resp.Rate.Limit)
	assert.Equal(t, 4, resp.Rate.Remaining)
}
