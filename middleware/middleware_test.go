package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSessionMintsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(EnsureSession)

	var seen string
	r.GET("/", func(c *gin.Context) {
		id, ok := SessionID(c)
		require.True(t, ok)
		seen = id
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(rec, req)

	assert.NotEmpty(t, seen)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestEnsureSessionKeepsExistingCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(EnsureSession)

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen, _ = SessionID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "existing-session"})
	r.ServeHTTP(rec, req)

	assert.Equal(t, "existing-session", seen)
	assert.Empty(t, rec.Result().Cookies(), "no new cookie when the client already has one")
}

func TestValidateAPIKey(t *testing.T) {
	t.Setenv("STORE_API_KEY", "sekrit")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", ValidateAPIKey, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	testCases := []struct {
		name               string
		key                string
		expectedStatusCode int
	}{
		{name: "valid key", key: "sekrit", expectedStatusCode: http.StatusOK},
		{name: "wrong key", key: "nope", expectedStatusCode: http.StatusUnauthorized},
		{name: "missing key", key: "", expectedStatusCode: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tc.key != "" {
				req.Header.Set("X-API-KEY", tc.key)
			}
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
		})
	}
}
