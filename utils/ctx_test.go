package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Zero(t, CurrentUserID(c))

	c.Set(CtxUserIDKey, uint(7))
	assert.Equal(t, uint(7), CurrentUserID(c))
}

func TestCurrentRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, "", CurrentRole(c))

	c.Set(CtxRoleKey, "cocina")
	assert.Equal(t, "cocina", CurrentRole(c))
}
