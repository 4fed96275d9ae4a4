//go:build unit

package api_test

import (
	"testing"

	reqdto "coworking-booking/internal/handler/dto/request"
	"coworking-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

const (
	testSpaceID = int64(1)
	testToken   = "bearer-token"
)

// fakeAuth stands in for the JWT middleware: any bearer token maps to testSpaceID.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") != "" {
		middleware.SetSpaceID(c, testSpaceID)
	}
	c.Next()
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	require.NoError(t, reqdto.RegisterValidators(v))

	return gin.New()
}
