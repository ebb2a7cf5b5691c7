package models

import (
	"time"

	"authbridge/internal/auth/provider"
)

// AuthenticationResult is the stable cross-platform outcome of a successful
// acquisition. Every field is always present in the projection; a value the
// provider did not supply is an explicit zero, never an omitted key, so
// callers can tell "never present" from "empty".
type AuthenticationResult struct {
	Authority     string         `json:"authority"`
	UniqueID      string         `json:"uniqueId"`
	TenantID      string         `json:"tenantId"`
	Scopes        []string       `json:"scopes"`
	Account       Account        `json:"account"`
	IDToken       string         `json:"idToken"`
	IDTokenClaims map[string]any `json:"idTokenClaims"`
	AccessToken   string         `json:"accessToken"`
	FromCache     bool           `json:"fromCache"`
	ExpiresOn     time.Time      `json:"expiresOn"`
	TokenType     string         `json:"tokenType"`
}

// ProjectResult shapes the provider's native result into the contract form.
// Pure mapping, no failure path. Claims missing from the native result are
// recovered from the raw ID token when one is present.
func ProjectResult(r provider.Result) AuthenticationResult {
	scopes := r.GrantedScopes
	if scopes == nil {
		scopes = []string{}
	}
	claims := r.IDTokenClaims
	if claims == nil {
		claims = ClaimsFromToken(r.IDToken)
	}
	tokenType := r.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return AuthenticationResult{
		Authority:     r.Authority,
		UniqueID:      r.UniqueID,
		TenantID:      r.TenantID,
		Scopes:        scopes,
		Account:       ProjectAccount(r.Account),
		IDToken:       r.IDToken,
		IDTokenClaims: claims,
		AccessToken:   r.AccessToken,
		FromCache:     r.FromCache,
		ExpiresOn:     r.ExpiresOn,
		TokenType:     tokenType,
	}
}
