package orchestrator

import (
	"context"

	"authbridge/internal/auth/biometric"
	"authbridge/internal/auth/models"
	"authbridge/pkg/autherrors"
)

// IsAuthenticated reports whether a confirmed session is active. Fails when
// the gate is not ready so callers cannot mistake "never initialized" for
// "logged out".
func (o *Orchestrator) IsAuthenticated() (bool, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if !o.ready {
		return false, o.fail("isAuthenticated", autherrors.New(autherrors.CodeOptionsMissing,
			"Ensure the plugin has been initialized and options have been set before making any requests"))
	}
	return o.authenticated, nil
}

// AuthenticationResult returns the projected result of the most recent
// successful acquisition, or nil before the first one.
func (o *Orchestrator) AuthenticationResult() (*models.AuthenticationResult, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if !o.ready {
		return nil, o.fail("acquireAuthenticationResult", autherrors.New(autherrors.CodeOptionsMissing,
			"Ensure the plugin has been initialized and options have been set before making any requests"))
	}
	if o.result == nil {
		return nil, nil
	}
	result := *o.result
	return &result, nil
}

// CurrentAccount returns the session's account. found is false before the
// first successful authentication.
func (o *Orchestrator) CurrentAccount(ctx context.Context) (models.Account, bool, error) {
	_, _, _, _, err := o.readiness()
	if err != nil {
		return models.Account{}, false, err
	}
	current := o.currentAccount()
	if current.IsZero() {
		return models.Account{}, false, nil
	}
	return models.ProjectAccount(current), true, nil
}

// AllAccounts enumerates every account in the provider cache.
func (o *Orchestrator) AllAccounts(ctx context.Context) ([]models.Account, error) {
	_, resolver, _, cfg, err := o.readiness()
	if err != nil {
		return nil, err
	}
	cctx, cancel := o.callCtx(ctx, cfg)
	defer cancel()
	cached, aerr := resolver.All(cctx)
	if aerr != nil {
		return nil, o.fail("acquireAllAccounts", aerr)
	}
	projected := make([]models.Account, 0, len(cached))
	for _, account := range cached {
		projected = append(projected, models.ProjectAccount(account))
	}
	return projected, nil
}

// AccountByUsername resolves one cached account by username; found is false
// when the cache has no match.
func (o *Orchestrator) AccountByUsername(ctx context.Context, username string) (models.Account, bool, error) {
	_, resolver, _, cfg, err := o.readiness()
	if err != nil {
		return models.Account{}, false, err
	}
	cctx, cancel := o.callCtx(ctx, cfg)
	defer cancel()
	account, aerr := resolver.ByUsername(cctx, username)
	if aerr != nil {
		return models.Account{}, false, o.fail("acquireAccountByUsername", aerr)
	}
	if account.IsZero() {
		return models.Account{}, false, nil
	}
	return models.ProjectAccount(account), true, nil
}

// UserRoles extracts the roles claim from the current session's ID token
// claims, empty when the claim is absent.
func (o *Orchestrator) UserRoles() ([]string, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if !o.ready {
		return nil, o.fail("acquireUserRoles", autherrors.New(autherrors.CodeOptionsMissing,
			"Ensure the plugin has been initialized and options have been set before making any requests"))
	}
	if !o.authenticated {
		return nil, o.fail("acquireUserRoles", autherrors.New(autherrors.CodeNoAccount,
			"No account found, ensure the user is logged in first"))
	}
	account := models.ProjectAccount(o.account)
	if len(account.IDTokenClaims) == 0 && o.result != nil {
		account.IDTokenClaims = o.result.IDTokenClaims
	}
	return account.Roles(), nil
}

// AccessTokenForUser is the thin wrapper over silent acquisition that
// returns only the access token string for the current user.
func (o *Orchestrator) AccessTokenForUser(ctx context.Context, req models.AccessTokenRequest) (string, error) {
	o.mu.RLock()
	ready, authenticated := o.ready, o.authenticated
	o.mu.RUnlock()
	if !ready {
		return "", o.fail("acquireAccessTokenForUser", autherrors.New(autherrors.CodeOptionsMissing,
			"Ensure the plugin has been initialized and options have been set before making any requests"))
	}
	if !authenticated {
		return "", o.fail("acquireAccessTokenForUser", autherrors.New(autherrors.CodeNoAccount,
			"No account found, ensure the user is logged in first"))
	}
	result, err := o.AcquireTokenSilently(ctx, models.SilentRequest{
		Scopes:       req.Scopes,
		ForceRefresh: req.ForceRefresh,
	})
	if err != nil {
		return "", err
	}
	return result.AccessToken, nil
}

// BiometricCapabilities exposes the raw device capability flags, independent
// of whether the configuration enables the gate. Always zero on platforms
// without a biometric subsystem.
func (o *Orchestrator) BiometricCapabilities(ctx context.Context) biometric.Capabilities {
	return o.checker.Capabilities(ctx)
}

// EvaluateBiometricsPolicy launches the device verification when it is both
// available and evaluable; otherwise it reports false without prompting.
func (o *Orchestrator) EvaluateBiometricsPolicy(ctx context.Context) bool {
	caps := o.checker.Capabilities(ctx)
	if !caps.Available || !caps.PolicyEvaluable {
		return false
	}
	granted, err := o.checker.Evaluate(ctx)
	if err != nil {
		return false
	}
	return granted
}
