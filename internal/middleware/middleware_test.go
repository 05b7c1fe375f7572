package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/bistro-boss-api/internal/auth"
	"github.com/franciscosanchezn/bistro-boss-api/internal/models"
)

type stubAdmins struct {
	admins map[string]bool
	err    error
}

func (s stubAdmins) IsAdmin(_ context.Context, email string) (bool, error) {
	return s.admins[email], s.err
}

func setupRouter(tokens *auth.TokenService, admins AdminChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()
	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/me", Authenticated(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": EmailFrom(c)})
	})
	r.GET("/admin", Authenticated(tokens), IsAdmin(admins), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/no-auth-admin", IsAdmin(admins), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.APIError {
	t.Helper()
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestAuthenticated(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r := setupRouter(tokens, stubAdmins{})

	valid, err := tokens.Issue(map[string]interface{}{"email": "a@bistro.com"})
	require.NoError(t, err)
	forged, err := auth.NewTokenService("other-secret", time.Hour).Issue(map[string]interface{}{"email": "a@bistro.com"})
	require.NoError(t, err)

	testCases := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, status: http.StatusUnauthorized},
		{name: "no token", header: "Bearer", status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.jwt", status: http.StatusUnauthorized},
		{name: "foreign signature", header: "Bearer " + forged, status: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + valid, status: http.StatusOK},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "/me", tt.header)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusUnauthorized {
				apiErr := decodeError(t, w)
				assert.Equal(t, models.ErrCodeUnauthorized, apiErr.Code)
				assert.Equal(t, "unauthorized access", apiErr.Message)
			} else {
				assert.JSONEq(t, `{"email":"a@bistro.com"}`, w.Body.String())
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	admins := stubAdmins{admins: map[string]bool{"boss@bistro.com": true}}
	r := setupRouter(tokens, admins)

	boss, err := tokens.Issue(map[string]interface{}{"email": "boss@bistro.com"})
	require.NoError(t, err)
	guest, err := tokens.Issue(map[string]interface{}{"email": "guest@bistro.com"})
	require.NoError(t, err)

	w := do(r, "/admin", "Bearer "+boss)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, "/admin", "Bearer "+guest)
	assert.Equal(t, http.StatusForbidden, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, models.ErrCodeForbidden, apiErr.Code)
	assert.Equal(t, "forbidden access", apiErr.Message)

	w = do(r, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// the admin check never runs on its own without claims
	w = do(r, "/no-auth-admin", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIsAdminStoreFailure(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r := setupRouter(tokens, stubAdmins{err: errors.New("connection reset")})

	boss, err := tokens.Issue(map[string]interface{}{"email": "boss@bistro.com"})
	require.NoError(t, err)

	w := do(r, "/admin", "Bearer "+boss)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := setupRouter(auth.NewTokenService("s", time.Hour), stubAdmins{})

	w := do(r, "/me", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())
	r.GET("/menu", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
