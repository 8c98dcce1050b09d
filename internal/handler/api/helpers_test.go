//go:build unit

package api_test

import (
	"time"

	"ride-together/internal/handler/middleware"
	"ride-together/internal/pkg/clock"
	"ride-together/internal/pkg/config"
	"ride-together/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const testToken = "bearer-token"

// fixedNow is a Saturday afternoon in Tokyo.
var fixedNow = time.Date(2026, 10, 17, 15, 0, 0, 0, time.FixedZone("JST", 9*60*60))

func testClock() clock.Clock {
	return clock.NewMockClock(fixedNow)
}

func testJWTService() *jwt.Service {
	cfg := config.NewTestConfig()
	return jwt.NewService(cfg.JWT.Secret, 15*time.Minute, 168*time.Hour)
}

// fakeAuth stands in for RequireAuth: requests carrying an Authorization
// header are treated as userID.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetUserID(c, userID)
		}
		c.Next()
	}
}
