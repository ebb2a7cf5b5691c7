package models

import "authbridge/internal/auth/provider"

// SilentRequest is the contract form of a non-interactive acquisition.
type SilentRequest struct {
	Scopes               []string          `json:"scopes"`
	Account              *Account          `json:"account,omitempty"`
	ForceRefresh         bool              `json:"forceRefresh,omitempty"`
	Claims               string            `json:"claims,omitempty"`
	CorrelationID        string            `json:"correlationId,omitempty"`
	ExtraQueryParameters map[string]string `json:"extraQueryParameters,omitempty"`
}

// InteractiveRequest is the contract form of a user-facing acquisition. The
// orchestrator is the only writer after construction: it rewrites Prompt when
// escalating a silent attempt.
type InteractiveRequest struct {
	Scopes               []string          `json:"scopes"`
	Account              *Account          `json:"account,omitempty"`
	Prompt               provider.Prompt   `json:"prompt,omitempty"`
	LoginHint            string            `json:"loginHint,omitempty"`
	DomainHint           string            `json:"domainHint,omitempty"`
	Claims               string            `json:"claims,omitempty"`
	State                string            `json:"state,omitempty"`
	CorrelationID        string            `json:"correlationId,omitempty"`
	RedirectURI          string            `json:"redirectUri,omitempty"`
	ExtraQueryParameters map[string]string `json:"extraQueryParameters,omitempty"`
	ExtraScopesToConsent []string          `json:"extraScopesToConsent,omitempty"`
}

// EndSessionRequest asks the provider to end the current session.
type EndSessionRequest struct {
	Account                *Account `json:"account,omitempty"`
	PostLogoutRedirectURI  string   `json:"postLogoutRedirectUri,omitempty"`
	RemoveAccountFromCache bool     `json:"removeAccountFromCache,omitempty"`
	CorrelationID          string   `json:"correlationId,omitempty"`
}

// AccessTokenRequest is the thin wrapper contract that returns only the
// access token string.
type AccessTokenRequest struct {
	Scopes       []string `json:"scopes"`
	ForceRefresh bool     `json:"forceRefresh,omitempty"`
}

// ToProvider lowers the contract request onto the capability layer.
func (r SilentRequest) ToProvider(account provider.Account) provider.SilentRequest {
	return provider.SilentRequest{
		Scopes:               r.Scopes,
		Account:              account,
		ForceRefresh:         r.ForceRefresh,
		Claims:               r.Claims,
		CorrelationID:        r.CorrelationID,
		ExtraQueryParameters: r.ExtraQueryParameters,
	}
}

// ToProvider lowers the contract request onto the capability layer.
func (r InteractiveRequest) ToProvider(account provider.Account) provider.InteractiveRequest {
	return provider.InteractiveRequest{
		Scopes:               r.Scopes,
		Account:              account,
		Prompt:               r.Prompt,
		LoginHint:            r.LoginHint,
		DomainHint:           r.DomainHint,
		Claims:               r.Claims,
		State:                r.State,
		CorrelationID:        r.CorrelationID,
		RedirectURI:          r.RedirectURI,
		ExtraQueryParameters: r.ExtraQueryParameters,
		ExtraScopesToConsent: r.ExtraScopesToConsent,
	}
}
