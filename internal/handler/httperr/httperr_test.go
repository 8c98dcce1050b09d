//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ride-together/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{name: "original error kept", err: errors.New("pg: connection reset"), wantErr: "pg: connection reset"},
		{name: "nil error becomes message", err: nil, wantErr: "Unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			httperr.AbortWithError(c, http.StatusUnauthorized, tt.err, "Unauthorized", nil)

			assert.True(t, c.IsAborted())
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":{"message":"Unauthorized"}}`, w.Body.String())
			require.Len(t, c.Errors, 1)
			assert.Equal(t, tt.wantErr, c.Errors[0].Err.Error())
		})
	}
}
