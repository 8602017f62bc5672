package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-laundry-management/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleTestRouter(required helpers.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	guard := helpers.NewAccessGuard("admin-uid")

	router := gin.New()
	// Stand-in for Authentication: lifts the uid from a header onto the
	// context so RequireRole can be exercised on its own.
	router.Use(func(c *gin.Context) {
		if uid := c.Request.Header.Get("X-Test-Uid"); uid != "" {
			c.Set("uid", uid)
		}
		c.Next()
	})
	router.GET("/guarded", RequireRole(guard, required), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	return router
}

func request(router *gin.Engine, uid string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/guarded", nil)
	if uid != "" {
		req.Header.Set("X-Test-Uid", uid)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireCustomer(t *testing.T) {
	router := roleTestRouter(helpers.RoleCustomer)

	assert.Equal(t, http.StatusForbidden, request(router, "").Code)
	assert.Equal(t, http.StatusOK, request(router, "user-1").Code)
	assert.Equal(t, http.StatusOK, request(router, "admin-uid").Code)
}

func TestRequireAdministrator(t *testing.T) {
	router := roleTestRouter(helpers.RoleAdministrator)

	assert.Equal(t, http.StatusForbidden, request(router, "").Code)
	assert.Equal(t, http.StatusForbidden, request(router, "user-1").Code)
	assert.Equal(t, http.StatusOK, request(router, "admin-uid").Code)
}
