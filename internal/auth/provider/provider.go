// Package provider declares the capability surface the orchestrator needs
// from an identity provider. Each platform (web, iOS/macOS, Android, desktop)
// supplies one implementation; the orchestrator only depends on the
// success/failure contract and result shape, never on native signatures.
package provider

import (
	"context"
	"time"
)

// Prompt directs the kind of interactive experience the provider presents.
type Prompt string

const (
	PromptNone          Prompt = ""
	PromptLogin         Prompt = "login"
	PromptSelectAccount Prompt = "select_account"
	PromptConsent       Prompt = "consent"
)

// Account identifies a previously authenticated identity in the provider's
// cache.
type Account struct {
	HomeAccountID  string
	Environment    string
	TenantID       string
	Username       string
	LocalAccountID string
	Name           string
	IDTokenClaims  map[string]any
}

// IsZero reports whether the account carries no identity at all.
func (a Account) IsZero() bool {
	return a.HomeAccountID == "" && a.Username == "" && a.LocalAccountID == ""
}

// SilentRequest asks for a token without user interaction.
type SilentRequest struct {
	Scopes               []string
	Account              Account
	ForceRefresh         bool
	Claims               string
	CorrelationID        string
	ExtraQueryParameters map[string]string
}

// InteractiveRequest asks for a token via a user-facing sign-in experience.
type InteractiveRequest struct {
	Scopes               []string
	Account              Account
	Prompt               Prompt
	LoginHint            string
	DomainHint           string
	Claims               string
	State                string
	CorrelationID        string
	RedirectURI          string
	ExtraQueryParameters map[string]string
	ExtraScopesToConsent []string
}

// SignOutRequest ends the provider-side session for an account.
type SignOutRequest struct {
	Account                Account
	PostLogoutRedirectURI  string
	RemoveAccountFromCache bool
}

// Result is the provider's native outcome of a successful acquisition,
// before projection into the plugin contract.
type Result struct {
	Authority     string
	UniqueID      string
	TenantID      string
	AccessToken   string
	IDToken       string
	IDTokenClaims map[string]any
	Account       Account
	GrantedScopes []string
	ExpiresOn     time.Time
	FromCache     bool
	TokenType     string
}

// Client is the set of provider capabilities the orchestrator drives.
// Failures must be *autherrors.NativeError (stable provider code attached) or
// already-normalized errors; raw transport errors are the adapter's problem.
type Client interface {
	Accounts(ctx context.Context) ([]Account, error)
	AccountByUsername(ctx context.Context, username string) (Account, error)
	AcquireSilent(ctx context.Context, req SilentRequest) (Result, error)
	AcquireInteractive(ctx context.Context, req InteractiveRequest) (Result, error)
	SignOut(ctx context.Context, req SignOutRequest) error
}
