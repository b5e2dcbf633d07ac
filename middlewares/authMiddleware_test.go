package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"civicconnect-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "gate-secret"

func gateRouter(verifier utils.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", OptionalAuth(verifier), func(c *gin.Context) {
		uid, _ := c.Get(CtxUserUID)
		name, _ := c.Get(CtxUserName)
		c.JSON(http.StatusOK, gin.H{"uid": uid, "name": name})
	})
	return r
}

func TestOptionalAuthDisabled(t *testing.T) {
	r := gateRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthMissingToken(t *testing.T) {
	r := gateRouter(utils.NewJWTVerifier(testSecret))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthBadToken(t *testing.T) {
	r := gateRouter(utils.NewJWTVerifier(testSecret))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthValidToken(t *testing.T) {
	r := gateRouter(utils.NewJWTVerifier(testSecret))

	tok, err := utils.IssueToken(testSecret, utils.Identity{UID: "u42", Name: "Ravi"}, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"uid":"u42","name":"Ravi"}`, w.Body.String())
}

func TestSubmitRateLimiterDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// nil Redis client disables the limiter entirely
	r.POST("/submit", SubmitRateLimiter(nil, 5), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}
}
