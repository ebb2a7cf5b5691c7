// Package msal adapts the Microsoft Authentication Library public client to
// the provider capability surface. This is the concrete implementation for
// desktop and native shells; it owns every MSAL-specific type so the
// orchestrator never sees one.
package msal

import (
	"context"
	"strings"

	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/cache"
	"github.com/AzureAD/microsoft-authentication-library-for-go/apps/public"

	"authbridge/internal/auth/models"
	"authbridge/internal/auth/provider"
)

// Client wraps an MSAL public client application.
type Client struct {
	app       public.Client
	authority string
}

// New builds the public client for the accepted configuration. An optional
// cache persister keeps the MSAL token cache outside process memory.
func New(cfg models.Configuration, persister cache.ExportReplace) (*Client, error) {
	opts := []public.Option{public.WithAuthority(cfg.Authority)}
	if persister != nil {
		opts = append(opts, public.WithCache(persister))
	}
	app, err := public.New(cfg.ClientID, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{app: app, authority: cfg.Authority}, nil
}

func (c *Client) Accounts(ctx context.Context) ([]provider.Account, error) {
	cached, err := c.app.Accounts(ctx)
	if err != nil {
		return nil, classify(err)
	}
	accounts := make([]provider.Account, 0, len(cached))
	for _, account := range cached {
		accounts = append(accounts, toAccount(account))
	}
	return accounts, nil
}

func (c *Client) AccountByUsername(ctx context.Context, username string) (provider.Account, error) {
	cached, err := c.app.Accounts(ctx)
	if err != nil {
		return provider.Account{}, classify(err)
	}
	for _, account := range cached {
		if strings.EqualFold(account.PreferredUsername, username) {
			return toAccount(account), nil
		}
	}
	return provider.Account{}, nil
}

func (c *Client) AcquireSilent(ctx context.Context, req provider.SilentRequest) (provider.Result, error) {
	account, ok := c.findAccount(ctx, req.Account)
	if !ok {
		return provider.Result{}, notCached()
	}
	res, err := c.app.AcquireTokenSilent(ctx, req.Scopes, public.WithSilentAccount(account))
	if err != nil {
		return provider.Result{}, classify(err)
	}
	return c.toResult(res, true), nil
}

func (c *Client) AcquireInteractive(ctx context.Context, req provider.InteractiveRequest) (provider.Result, error) {
	opts := []public.AcquireInteractiveOption{}
	if req.RedirectURI != "" {
		opts = append(opts, public.WithRedirectURI(req.RedirectURI))
	}
	res, err := c.app.AcquireTokenInteractive(ctx, req.Scopes, opts...)
	if err != nil {
		return provider.Result{}, classify(err)
	}
	return c.toResult(res, false), nil
}

func (c *Client) SignOut(ctx context.Context, req provider.SignOutRequest) error {
	account, ok := c.findAccount(ctx, req.Account)
	if !ok {
		// Nothing cached for the account; the provider-side session is
		// already gone.
		return nil
	}
	if err := c.app.RemoveAccount(ctx, account); err != nil {
		return classify(err)
	}
	return nil
}

// findAccount maps a capability-layer account back onto the live MSAL cache
// entry, since MSAL silent calls only accept accounts it handed out.
func (c *Client) findAccount(ctx context.Context, want provider.Account) (public.Account, bool) {
	cached, err := c.app.Accounts(ctx)
	if err != nil {
		return public.Account{}, false
	}
	for _, account := range cached {
		if account.HomeAccountID == want.HomeAccountID ||
			(want.Username != "" && strings.EqualFold(account.PreferredUsername, want.Username)) {
			return account, true
		}
	}
	return public.Account{}, false
}

func toAccount(a public.Account) provider.Account {
	return provider.Account{
		HomeAccountID:  a.HomeAccountID,
		Environment:    a.Environment,
		TenantID:       a.Realm,
		Username:       a.PreferredUsername,
		LocalAccountID: a.LocalAccountID,
	}
}

func (c *Client) toResult(res public.AuthResult, fromCache bool) provider.Result {
	raw := res.IDToken.RawToken
	claims := models.ClaimsFromToken(raw)
	account := toAccount(res.Account)
	account.IDTokenClaims = claims
	return provider.Result{
		Authority:     c.authority,
		UniqueID:      account.LocalAccountID,
		TenantID:      account.TenantID,
		AccessToken:   res.AccessToken,
		IDToken:       raw,
		IDTokenClaims: claims,
		Account:       account,
		GrantedScopes: res.GrantedScopes,
		ExpiresOn:     res.ExpiresOn,
		FromCache:     fromCache,
		TokenType:     "Bearer",
	}
}
