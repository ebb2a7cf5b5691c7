// Package bridge exposes the platform-independent plugin operation surface.
// Every operation answers with a results envelope or a normalized error, so
// web-technology shells never see platform exception types.
package bridge

import (
	"context"

	"authbridge/internal/auth/models"
	"authbridge/internal/auth/orchestrator"
)

// Response envelopes. The results key is always present, mirroring the
// contract the shells already consume.
type (
	BoolResponse struct {
		Results bool `json:"results"`
	}
	AccountResponse struct {
		Results *models.Account `json:"results"`
	}
	AccountsResponse struct {
		Results []models.Account `json:"results"`
	}
	AuthResponse struct {
		Results models.AuthenticationResult `json:"results"`
	}
	AuthStateResponse struct {
		Results *models.AuthenticationResult `json:"results"`
	}
	RolesResponse struct {
		Results []string `json:"results"`
	}
	TokenResponse struct {
		Results string `json:"results"`
	}
)

// Plugin is the operation surface over the shared orchestrator.
type Plugin struct {
	orch *orchestrator.Orchestrator
}

func NewPlugin(orch *orchestrator.Orchestrator) *Plugin {
	return &Plugin{orch: orch}
}

// Initialize runs the configuration gate.
func (p *Plugin) Initialize(ctx context.Context, cfg models.Configuration) (BoolResponse, error) {
	if err := p.orch.Initialize(ctx, cfg); err != nil {
		return BoolResponse{}, err
	}
	return BoolResponse{Results: true}, nil
}

func (p *Plugin) IsBiometricsAvailable(ctx context.Context) (BoolResponse, error) {
	return BoolResponse{Results: p.orch.BiometricCapabilities(ctx).Available}, nil
}

func (p *Plugin) CanEvaluateBiometricsPolicy(ctx context.Context) (BoolResponse, error) {
	return BoolResponse{Results: p.orch.BiometricCapabilities(ctx).PolicyEvaluable}, nil
}

func (p *Plugin) EvaluateBiometricsPolicy(ctx context.Context) (BoolResponse, error) {
	return BoolResponse{Results: p.orch.EvaluateBiometricsPolicy(ctx)}, nil
}

// AcquireAccountByUsername answers nil results when no cached account
// matches, matching the contract's undefined.
func (p *Plugin) AcquireAccountByUsername(ctx context.Context, username string) (AccountResponse, error) {
	account, found, err := p.orch.AccountByUsername(ctx, username)
	if err != nil {
		return AccountResponse{}, err
	}
	if !found {
		return AccountResponse{}, nil
	}
	return AccountResponse{Results: &account}, nil
}

func (p *Plugin) AcquireCurrentAccount(ctx context.Context) (AccountResponse, error) {
	account, found, err := p.orch.CurrentAccount(ctx)
	if err != nil {
		return AccountResponse{}, err
	}
	if !found {
		return AccountResponse{}, nil
	}
	return AccountResponse{Results: &account}, nil
}

func (p *Plugin) AcquireAllAccounts(ctx context.Context) (AccountsResponse, error) {
	accounts, err := p.orch.AllAccounts(ctx)
	if err != nil {
		return AccountsResponse{}, err
	}
	return AccountsResponse{Results: accounts}, nil
}

func (p *Plugin) AcquireTokenSilently(ctx context.Context, req models.SilentRequest) (AuthResponse, error) {
	result, err := p.orch.AcquireTokenSilently(ctx, req)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{Results: result}, nil
}

func (p *Plugin) AcquireTokenInteractively(ctx context.Context, req models.InteractiveRequest) (AuthResponse, error) {
	result, err := p.orch.AcquireTokenInteractively(ctx, req)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{Results: result}, nil
}

func (p *Plugin) Login(ctx context.Context, req models.InteractiveRequest) (AuthResponse, error) {
	result, err := p.orch.Login(ctx, req)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{Results: result}, nil
}

func (p *Plugin) Logout(ctx context.Context, req models.EndSessionRequest) (BoolResponse, error) {
	if err := p.orch.Logout(ctx, req); err != nil {
		return BoolResponse{}, err
	}
	return BoolResponse{Results: true}, nil
}

func (p *Plugin) IsAuthenticated(ctx context.Context) (BoolResponse, error) {
	authenticated, err := p.orch.IsAuthenticated()
	if err != nil {
		return BoolResponse{}, err
	}
	return BoolResponse{Results: authenticated}, nil
}

func (p *Plugin) AcquireUserRoles(ctx context.Context) (RolesResponse, error) {
	roles, err := p.orch.UserRoles()
	if err != nil {
		return RolesResponse{}, err
	}
	return RolesResponse{Results: roles}, nil
}

// AcquireAuthenticationResult returns the cached result of the most recent
// successful acquisition, nil before the first login.
func (p *Plugin) AcquireAuthenticationResult(ctx context.Context) (AuthStateResponse, error) {
	result, err := p.orch.AuthenticationResult()
	if err != nil {
		return AuthStateResponse{}, err
	}
	return AuthStateResponse{Results: result}, nil
}

func (p *Plugin) AcquireAccessTokenForUser(ctx context.Context, req models.AccessTokenRequest) (TokenResponse, error) {
	token, err := p.orch.AccessTokenForUser(ctx, req)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{Results: token}, nil
}
