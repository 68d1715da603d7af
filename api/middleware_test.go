package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/auth"
)

func protectedCreateSkill(tokens *auth.TokenManager, store *fakeSkillStore) http.Handler {
	h := newSkillHandler(store, true)
	middleware := newAuthMiddleware(tokens, true)
	return middleware.authenticate(h.createSkill())
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	store := &fakeSkillStore{}
	handler := protectedCreateSkill(tokens, store)

	req := httptest.NewRequest(http.MethodPost, "/skills",
		strings.NewReader(`{"name":"Go","level":90,"category":"backend"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// Rejection happens before any storage call
	assert.Zero(t, store.writes)
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	store := &fakeSkillStore{}
	handler := protectedCreateSkill(tokens, store)

	req := httptest.NewRequest(http.MethodPost, "/skills",
		strings.NewReader(`{"name":"Go","level":90,"category":"backend"}`))
	req.Header.Set("Authorization", "Bearer bogus-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, store.writes)
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	claims := auth.Claims{
		Username: "admin",
		Role:     auth.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret")
	store := &fakeSkillStore{}
	handler := protectedCreateSkill(tokens, store)

	req := httptest.NewRequest(http.MethodPost, "/skills",
		strings.NewReader(`{"name":"Go","level":90,"category":"backend"}`))
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, store.writes)
}

func TestAuthenticateRejectsTokenSignedWithOtherSecret(t *testing.T) {
	foreign := auth.NewTokenManager("other-secret")
	token, _, err := foreign.Issue("admin")
	require.NoError(t, err)

	tokens := auth.NewTokenManager("test-secret")
	store := &fakeSkillStore{}
	handler := protectedCreateSkill(tokens, store)

	req := httptest.NewRequest(http.MethodPost, "/skills",
		strings.NewReader(`{"name":"Go","level":90,"category":"backend"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, store.writes)
}

func TestAuthenticateAdmitsValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	token, _, err := tokens.Issue("admin")
	require.NoError(t, err)

	store := &fakeSkillStore{}
	handler := protectedCreateSkill(tokens, store)

	req := httptest.NewRequest(http.MethodPost, "/skills",
		strings.NewReader(`{"name":"Go","level":90,"category":"backend"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, store.writes)
}

func TestAuthenticatePutsClaimsOnContext(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	token, _, err := tokens.Issue("admin")
	require.NoError(t, err)

	middleware := newAuthMiddleware(tokens, true)
	var seen *auth.Claims
	handler := middleware.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := ctxGetAdminClaims(r.Context())
		require.NoError(t, err)
		seen = claims
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, seen)
	assert.Equal(t, "admin", seen.Username)
	assert.Equal(t, auth.AdminRole, seen.Role)
}

func TestRateLimiterFixedWindow(t *testing.T) {
	limiter := newRateLimiter(2, time.Minute)

	assert.True(t, limiter.allow("1.2.3.4"))
	assert.True(t, limiter.allow("1.2.3.4"))
	assert.False(t, limiter.allow("1.2.3.4"))

	// Other clients are counted independently
	assert.True(t, limiter.allow("5.6.7.8"))

	// Window rollover resets every counter
	limiter.resetAt = time.Now().Add(-time.Second)
	assert.True(t, limiter.allow("1.2.3.4"))
}
