package models

import (
	"net/url"
	"time"

	"authbridge/pkg/autherrors"
)

// Cache locations accepted by Configuration.CacheLocation. The session scoped
// store is the default; platforms without the requested store fall back to it.
const (
	CacheLocationSession = "sessionStorage"
	CacheLocationLocal   = "localStorage"
	CacheLocationMemory  = "memoryStorage"
)

// DefaultTokenExpirationBuffer is applied when the configuration does not set
// one. Tokens within the buffer of expiry are treated as expired.
const DefaultTokenExpirationBuffer = 300 * time.Second

// Configuration captures everything needed to build the provider client.
// Immutable once accepted by Initialize.
type Configuration struct {
	Authority   string `json:"authority"`
	ClientID    string `json:"clientId"`
	RedirectURI string `json:"redirectUri"`

	KnownAuthorities      []string `json:"knownAuthorities,omitempty"`
	PostLogoutRedirectURI string   `json:"postLogoutRedirectUri,omitempty"`

	CacheLocation         string        `json:"cacheLocation,omitempty"`
	TokenExpirationBuffer time.Duration `json:"tokenExpirationBuffer,omitempty"`
	KeychainSharingGroup  string        `json:"keychainSharingGroup,omitempty"`

	EnableBiometrics bool `json:"enableBiometrics,omitempty"`

	// GuardForRerenders makes repeat Initialize calls no-ops once the gate is
	// ready, so view layers that re-run initialization on every render do not
	// tear down the live client.
	GuardForRerenders bool `json:"guardForRerenders,omitempty"`

	// CallTimeout bounds each provider call. Zero keeps provider defaults.
	CallTimeout time.Duration `json:"callTimeout,omitempty"`
}

// Validate enforces the configuration invariant: authority, client id and
// redirect URI present, authority a well-formed absolute URL.
func (c Configuration) Validate() error {
	if c.Authority == "" || c.ClientID == "" || c.RedirectURI == "" {
		return autherrors.New(autherrors.CodeInvalidOptions,
			"authority, clientId and redirectUri are required")
	}
	u, err := url.Parse(c.Authority)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return autherrors.New(autherrors.CodeInvalidOptions,
			"authority must be a well-formed absolute URL")
	}
	return nil
}

// WithDefaults returns a copy with documented defaults filled in.
func (c Configuration) WithDefaults() Configuration {
	if c.CacheLocation == "" {
		c.CacheLocation = CacheLocationSession
	}
	if c.TokenExpirationBuffer <= 0 {
		c.TokenExpirationBuffer = DefaultTokenExpirationBuffer
	}
	return c
}
