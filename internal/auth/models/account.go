package models

import "authbridge/internal/auth/provider"

// Account is the plugin-contract view of a cached identity. Created on first
// successful authentication, replaced on each later acquisition, cleared on
// logout.
type Account struct {
	HomeAccountID  string         `json:"homeAccountId"`
	Environment    string         `json:"environment"`
	TenantID       string         `json:"tenantId"`
	Username       string         `json:"username"`
	LocalAccountID string         `json:"localAccountId"`
	Name           string         `json:"name,omitempty"`
	IDTokenClaims  map[string]any `json:"idTokenClaims,omitempty"`
}

// IsZero reports whether the account carries no identity.
func (a Account) IsZero() bool {
	return a.HomeAccountID == "" && a.Username == "" && a.LocalAccountID == ""
}

// Roles extracts the "roles" claim array from the account's ID token claims.
// Absent or malformed claims yield an empty list, never nil checks for the
// caller.
func (a Account) Roles() []string {
	roles := []string{}
	raw, ok := a.IDTokenClaims["roles"]
	if !ok {
		return roles
	}
	switch v := raw.(type) {
	case []string:
		roles = append(roles, v...)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				roles = append(roles, s)
			}
		}
	}
	return roles
}

// ProjectAccount shapes a provider account into the contract form.
func ProjectAccount(a provider.Account) Account {
	return Account{
		HomeAccountID:  a.HomeAccountID,
		Environment:    a.Environment,
		TenantID:       a.TenantID,
		Username:       a.Username,
		LocalAccountID: a.LocalAccountID,
		Name:           a.Name,
		IDTokenClaims:  a.IDTokenClaims,
	}
}

// ToProvider converts back to the capability-layer shape for account-hinted
// requests.
func (a Account) ToProvider() provider.Account {
	return provider.Account{
		HomeAccountID:  a.HomeAccountID,
		Environment:    a.Environment,
		TenantID:       a.TenantID,
		Username:       a.Username,
		LocalAccountID: a.LocalAccountID,
		Name:           a.Name,
		IDTokenClaims:  a.IDTokenClaims,
	}
}
