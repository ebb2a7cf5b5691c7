// Package orchestrator drives the shared authentication state machine:
// configuration gating, account resolution, the optional biometric gate, the
// silent attempt with its single interactive fallback, and session state.
// Platform differences live entirely behind the provider and biometric
// capability interfaces.
package orchestrator

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"authbridge/internal/auth/accounts"
	"authbridge/internal/auth/biometric"
	"authbridge/internal/auth/metrics"
	"authbridge/internal/auth/models"
	"authbridge/internal/auth/provider"
	"authbridge/pkg/autherrors"
)

// ClientFactory builds the platform's provider client from an accepted
// configuration. Called once per process unless re-initialization without the
// re-render guard is requested.
type ClientFactory func(cfg models.Configuration) (provider.Client, error)

// Orchestrator holds the single logical session for the process. Session
// mutation is atomic with respect to the reads behind IsAuthenticated and
// AuthenticationResult, so no caller observes a half-updated session.
type Orchestrator struct {
	newClient ClientFactory
	checker   biometric.Checker
	logger    *zap.Logger
	metrics   *metrics.Metrics

	initGroup singleflight.Group

	mu       sync.RWMutex
	ready    bool
	cfg      models.Configuration
	client   provider.Client
	resolver *accounts.Resolver
	gate     *biometric.Gate

	account       provider.Account
	result        *models.AuthenticationResult
	authenticated bool
}

func New(factory ClientFactory, checker biometric.Checker, logger *zap.Logger, m *metrics.Metrics) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewNop()
	}
	if checker == nil {
		checker = biometric.Noop{}
	}
	return &Orchestrator{newClient: factory, checker: checker, logger: logger, metrics: m}
}

// Initialize validates the configuration and constructs the provider client.
// Repeat calls with the re-render guard set are no-op successes once the gate
// is ready; concurrent calls collapse into one construction. A failed call
// leaves any prior state untouched.
func (o *Orchestrator) Initialize(ctx context.Context, cfg models.Configuration) error {
	_, err, _ := o.initGroup.Do("initialize", func() (any, error) {
		o.mu.RLock()
		guarded := o.ready && cfg.GuardForRerenders
		o.mu.RUnlock()
		if guarded {
			return nil, nil
		}

		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		cfg = cfg.WithDefaults()

		client, err := o.newClient(cfg)
		if err != nil {
			return nil, autherrors.Wrap(err, autherrors.CodeInvalidOptions,
				"Unable to construct the provider client from the supplied options")
		}

		o.mu.Lock()
		o.ready = true
		o.cfg = cfg
		o.client = client
		o.resolver = accounts.NewResolver(client)
		o.gate = biometric.NewGate(cfg.EnableBiometrics, o.checker)
		o.mu.Unlock()

		o.logger.Info("provider client initialized",
			zap.String("authority", cfg.Authority),
			zap.String("clientId", cfg.ClientID))
		return nil, nil
	})
	if err != nil {
		return o.fail("initialize", err)
	}
	return nil
}

// Login runs the full state machine: resolve an account, consult the
// biometric gate, try silently, then escalate at most once to interactive
// when the provider demands interaction.
func (o *Orchestrator) Login(ctx context.Context, req models.InteractiveRequest) (models.AuthenticationResult, error) {
	client, resolver, gate, cfg, err := o.readiness()
	if err != nil {
		return models.AuthenticationResult{}, err
	}
	if req.CorrelationID == "" {
		req.CorrelationID = uuid.NewString()
	}
	log := o.logger.With(zap.String("op", "login"), zap.String("correlationId", req.CorrelationID))

	hint := provider.Account{}
	if req.Account != nil {
		hint = req.Account.ToProvider()
	}
	rctx, rcancel := o.callCtx(ctx, cfg)
	res, rerr := resolver.Resolve(rctx, hint, o.currentAccount())
	rcancel()
	if rerr != nil {
		return models.AuthenticationResult{}, o.fail("login", rerr)
	}
	if res.Prompt == provider.PromptSelectAccount {
		// Several cached accounts: never guess, make the user pick.
		req.Prompt = provider.PromptSelectAccount
	}

	skipSilent := !res.Found
	if res.Found && gate.Applicable(ctx) {
		if !gate.Evaluate(ctx) {
			// Device verification declined: the cached session may not be
			// reused silently. With a single resolved account that means a
			// fresh credential entry; an already forced account picker
			// keeps precedence.
			o.metrics.BiometricDeclines.Inc()
			log.Info("biometric gate declined silent reuse")
			skipSilent = true
			if req.Prompt != provider.PromptSelectAccount {
				req.Prompt = provider.PromptLogin
			}
		}
	}

	if !skipSilent {
		o.metrics.SilentAttempts.Inc()
		silent := models.SilentRequest{
			Scopes:               req.Scopes,
			Claims:               req.Claims,
			CorrelationID:        req.CorrelationID,
			ExtraQueryParameters: req.ExtraQueryParameters,
		}
		sctx, scancel := o.callCtx(ctx, cfg)
		result, serr := client.AcquireSilent(sctx, silent.ToProvider(res.Account))
		scancel()
		if serr == nil {
			return o.succeed(log, result), nil
		}
		normalized := autherrors.Normalize(serr)
		if normalized.Code != autherrors.CodeInteractionRequired {
			return models.AuthenticationResult{}, o.fail("login", normalized)
		}
		// The one bounded escalation in the system: rewrite the prompt to
		// force a fresh login and retry exactly once interactively.
		o.metrics.InteractiveFallback.Inc()
		log.Info("silent acquisition requires interaction, escalating",
			zap.String("errorCode", string(normalized.Code)))
		if req.Prompt == provider.PromptNone {
			req.Prompt = provider.PromptLogin
		}
	}

	return o.interactive(ctx, log, req, res.Account)
}

// AcquireTokenSilently never escalates; interaction_required surfaces to the
// caller, who decides whether to go interactive.
func (o *Orchestrator) AcquireTokenSilently(ctx context.Context, req models.SilentRequest) (models.AuthenticationResult, error) {
	client, resolver, _, cfg, err := o.readiness()
	if err != nil {
		return models.AuthenticationResult{}, err
	}
	if req.CorrelationID == "" {
		req.CorrelationID = uuid.NewString()
	}
	log := o.logger.With(zap.String("op", "acquireTokenSilently"), zap.String("correlationId", req.CorrelationID))

	hint := provider.Account{}
	if req.Account != nil {
		hint = req.Account.ToProvider()
	}
	rctx, rcancel := o.callCtx(ctx, cfg)
	res, rerr := resolver.Resolve(rctx, hint, o.currentAccount())
	rcancel()
	if rerr != nil {
		return models.AuthenticationResult{}, o.fail("acquireTokenSilently", rerr)
	}
	if !res.Found {
		return models.AuthenticationResult{}, o.fail("acquireTokenSilently",
			&autherrors.NativeError{Code: "no_account_in_silent_request"})
	}

	o.metrics.SilentAttempts.Inc()
	sctx, scancel := o.callCtx(ctx, cfg)
	result, serr := client.AcquireSilent(sctx, req.ToProvider(res.Account))
	scancel()
	if serr != nil {
		return models.AuthenticationResult{}, o.fail("acquireTokenSilently", serr)
	}
	return o.succeed(log, result), nil
}

// AcquireTokenInteractively skips the silent attempt entirely.
func (o *Orchestrator) AcquireTokenInteractively(ctx context.Context, req models.InteractiveRequest) (models.AuthenticationResult, error) {
	_, _, _, _, err := o.readiness()
	if err != nil {
		return models.AuthenticationResult{}, err
	}
	if req.CorrelationID == "" {
		req.CorrelationID = uuid.NewString()
	}
	log := o.logger.With(zap.String("op", "acquireTokenInteractively"), zap.String("correlationId", req.CorrelationID))

	account := provider.Account{}
	if req.Account != nil {
		account = req.Account.ToProvider()
	}
	return o.interactive(ctx, log, req, account)
}

// Logout requires an active session. Session state is cleared only after the
// provider confirms the sign-out; a provider failure leaves the session
// authenticated and surfaces the normalized error.
func (o *Orchestrator) Logout(ctx context.Context, req models.EndSessionRequest) error {
	client, _, _, cfg, err := o.readiness()
	if err != nil {
		return err
	}

	o.mu.RLock()
	active := o.authenticated
	account := o.account
	o.mu.RUnlock()

	if req.Account != nil && !req.Account.IsZero() {
		account = req.Account.ToProvider()
	}
	if !active || account.IsZero() {
		return o.fail("logout", autherrors.New(autherrors.CodeNoAccount,
			"No account found, ensure the user is logged in first"))
	}

	signOut := provider.SignOutRequest{
		Account:                account,
		PostLogoutRedirectURI:  req.PostLogoutRedirectURI,
		RemoveAccountFromCache: req.RemoveAccountFromCache,
	}
	if signOut.PostLogoutRedirectURI == "" {
		signOut.PostLogoutRedirectURI = cfg.PostLogoutRedirectURI
	}
	octx, ocancel := o.callCtx(ctx, cfg)
	serr := client.SignOut(octx, signOut)
	ocancel()
	if serr != nil {
		return o.fail("logout", serr)
	}

	o.mu.Lock()
	o.account = provider.Account{}
	o.result = nil
	o.authenticated = false
	o.mu.Unlock()

	o.metrics.Logouts.Inc()
	o.logger.Info("session ended", zap.String("op", "logout"))
	return nil
}

func (o *Orchestrator) interactive(ctx context.Context, log *zap.Logger, req models.InteractiveRequest, account provider.Account) (models.AuthenticationResult, error) {
	o.mu.RLock()
	client, cfg := o.client, o.cfg
	o.mu.RUnlock()

	preq := req.ToProvider(account)
	if preq.RedirectURI == "" {
		preq.RedirectURI = cfg.RedirectURI
	}

	o.metrics.InteractiveAttempts.Inc()
	ictx, icancel := o.callCtx(ctx, cfg)
	result, err := client.AcquireInteractive(ictx, preq)
	icancel()
	if err != nil {
		return models.AuthenticationResult{}, o.fail("acquireTokenInteractively", err)
	}
	return o.succeed(log, result), nil
}

// succeed projects the provider result and persists it as the current
// session in one critical section.
func (o *Orchestrator) succeed(log *zap.Logger, raw provider.Result) models.AuthenticationResult {
	projected := models.ProjectResult(raw)

	o.mu.Lock()
	o.account = raw.Account
	o.result = &projected
	o.authenticated = true
	o.mu.Unlock()

	log.Info("token acquired",
		zap.String("username", projected.Account.Username),
		zap.Bool("fromCache", projected.FromCache),
		zap.Time("expiresOn", projected.ExpiresOn))
	return projected
}

func (o *Orchestrator) fail(op string, err error) error {
	normalized := autherrors.Normalize(err)
	o.metrics.Errors.WithLabelValues(string(normalized.Code)).Inc()
	o.logger.Warn("operation failed",
		zap.String("op", op),
		zap.String("errorCode", string(normalized.Code)),
		zap.String("errorType", normalized.Type))
	return normalized
}

func (o *Orchestrator) readiness() (provider.Client, *accounts.Resolver, *biometric.Gate, models.Configuration, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if !o.ready {
		return nil, nil, nil, models.Configuration{}, o.fail("readiness",
			autherrors.New(autherrors.CodeOptionsMissing,
				"Ensure the plugin has been initialized and options have been set before making any requests"))
	}
	return o.client, o.resolver, o.gate, o.cfg, nil
}

func (o *Orchestrator) currentAccount() provider.Account {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.account
}

// callCtx bounds a single provider call when the configuration asks for it.
// The zero timeout keeps provider defaults for compatibility with existing
// callers.
func (o *Orchestrator) callCtx(ctx context.Context, cfg models.Configuration) (context.Context, context.CancelFunc) {
	if cfg.CallTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, cfg.CallTimeout)
}
