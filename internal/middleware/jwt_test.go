package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homely/internal/models"
)

func gatedRouter(t *testing.T, role string, handlerRan *bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/protected", RequireAuthWithRole(role), func(c *gin.Context) {
		*handlerRan = true
		c.JSON(http.StatusCreated, gin.H{"actor": CurrentActor(c).UserID})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthWithRole_WrongRoleNeverReachesHandler(t *testing.T) {
	var handlerRan bool
	r := gatedRouter(t, models.RoleLandowner, &handlerRan)

	token, err := GenerateToken("user-1", "Thandi", models.RoleTenant)
	require.NoError(t, err)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerRan)
}

func TestRequireAuthWithRole_MatchingRolePasses(t *testing.T) {
	var handlerRan bool
	r := gatedRouter(t, models.RoleLandowner, &handlerRan)

	token, err := GenerateToken("owner-1", "Sipho", models.RoleLandowner)
	require.NoError(t, err)

	w := doRequest(r, token)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handlerRan)
	assert.Contains(t, w.Body.String(), "owner-1")
}

func TestRequireAuthWithRole_MissingToken(t *testing.T) {
	var handlerRan bool
	r := gatedRouter(t, models.RoleAdmin, &handlerRan)

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var handlerRan bool
	r := gin.New()
	r.GET("/me", RequireAuth(), func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusOK, gin.H{})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
}
