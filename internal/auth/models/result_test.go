package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authbridge/internal/auth/provider"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestProjectResult_PreservesEveryField(t *testing.T) {
	expires := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := provider.Result{
		Authority:     "https://login.microsoftonline.com/common",
		UniqueID:      "local-1",
		TenantID:      "tenant-1",
		AccessToken:   "at-abc",
		IDToken:       "idt-raw",
		IDTokenClaims: map[string]any{"preferred_username": "ada@example.com"},
		Account: provider.Account{
			HomeAccountID:  "home-1",
			Environment:    "login.microsoftonline.com",
			TenantID:       "tenant-1",
			Username:       "ada@example.com",
			LocalAccountID: "local-1",
		},
		GrantedScopes: []string{"user.read"},
		ExpiresOn:     expires,
		FromCache:     true,
	}

	projected := ProjectResult(raw)
	assert.Equal(t, raw.Authority, projected.Authority)
	assert.Equal(t, raw.UniqueID, projected.UniqueID)
	assert.Equal(t, raw.TenantID, projected.TenantID)
	assert.Equal(t, raw.AccessToken, projected.AccessToken)
	assert.Equal(t, raw.IDToken, projected.IDToken)
	assert.Equal(t, raw.IDTokenClaims, projected.IDTokenClaims)
	assert.Equal(t, "ada@example.com", projected.Account.Username)
	assert.Equal(t, []string{"user.read"}, projected.Scopes)
	assert.Equal(t, expires, projected.ExpiresOn)
	assert.True(t, projected.FromCache)
	assert.Equal(t, "Bearer", projected.TokenType)
}

func TestProjectResult_AbsentFieldsStayExplicit(t *testing.T) {
	projected := ProjectResult(provider.Result{AccessToken: "at"})

	// Absent values are explicit zeros, never omitted, so callers can tell
	// "never present" from "empty".
	assert.NotNil(t, projected.Scopes)
	assert.Empty(t, projected.Scopes)
	assert.NotNil(t, projected.IDTokenClaims)
	assert.Empty(t, projected.IDTokenClaims)
	assert.Equal(t, "", projected.IDToken)
}

func TestProjectResult_RecoversClaimsFromRawToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"roles": []string{"admin", "reader"}, "tid": "tenant-9"})
	projected := ProjectResult(provider.Result{IDToken: token})

	assert.Equal(t, "tenant-9", projected.IDTokenClaims["tid"])
}

func TestClaimsFromToken(t *testing.T) {
	t.Run("decodes a claim set without verification", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"preferred_username": "ada@example.com"})
		claims := ClaimsFromToken(token)
		assert.Equal(t, "ada@example.com", claims["preferred_username"])
	})

	t.Run("empty and garbage tokens yield empty maps", func(t *testing.T) {
		assert.Empty(t, ClaimsFromToken(""))
		assert.Empty(t, ClaimsFromToken("not.a.jwt"))
	})
}

func TestAccountRoles(t *testing.T) {
	t.Run("extracts the roles claim", func(t *testing.T) {
		account := Account{IDTokenClaims: map[string]any{"roles": []any{"admin", "reader"}}}
		assert.Equal(t, []string{"admin", "reader"}, account.Roles())
	})

	t.Run("missing or malformed roles default to empty", func(t *testing.T) {
		assert.Equal(t, []string{}, Account{}.Roles())
		assert.Equal(t, []string{}, Account{IDTokenClaims: map[string]any{"roles": 42}}.Roles())
	})
}
