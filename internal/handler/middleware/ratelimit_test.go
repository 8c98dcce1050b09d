//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ride-together/internal/handler/middleware"
	"ride-together/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(cfg config.RateLimitConfig, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rl := middleware.NewRateLimiter(cfg)
	r.POST("/join",
		func(c *gin.Context) {
			if userID != uuid.Nil {
				middleware.SetUserID(c, userID)
			}
		},
		rl.Limit(),
		func(c *gin.Context) { c.Status(http.StatusCreated) },
	)
	return r
}

func TestRateLimiter(t *testing.T) {
	cfg := config.RateLimitConfig{JoinPerMinute: 1, JoinBurst: 2}

	t.Run("burst then 429", func(t *testing.T) {
		r := newLimitedRouter(cfg, uuid.New())

		codes := make([]int, 0, 3)
		for range 3 {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/join", nil))
			codes = append(codes, w.Code)
		}

		assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
	})

	t.Run("buckets are per user", func(t *testing.T) {
		a := newLimitedRouter(cfg, uuid.New())
		b := newLimitedRouter(cfg, uuid.New())

		for range 2 {
			a.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/join", nil))
		}
		w := httptest.NewRecorder()
		b.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/join", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
