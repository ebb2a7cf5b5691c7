// Package providertest supplies a scripted provider.Client for exercising
// the orchestration paths without a live identity provider.
package providertest

import (
	"context"
	"strings"
	"sync"

	"authbridge/internal/auth/provider"
)

// Fake is a scripted capability set. Responses are configured up front;
// every request is recorded for assertions.
type Fake struct {
	mu sync.Mutex

	CachedAccounts []provider.Account

	SilentResult provider.Result
	SilentErr    error

	InteractiveResult provider.Result
	InteractiveErr    error

	// SilentErrOnce is consumed by the first silent call only, for
	// exercising fallback paths.
	SilentErrOnce error

	AccountsErr error
	SignOutErr  error

	SilentCalls      []provider.SilentRequest
	InteractiveCalls []provider.InteractiveRequest
	SignOutCalls     []provider.SignOutRequest
}

var _ provider.Client = (*Fake)(nil)

func (f *Fake) Accounts(ctx context.Context) ([]provider.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.AccountsErr != nil {
		return nil, f.AccountsErr
	}
	return append([]provider.Account(nil), f.CachedAccounts...), nil
}

func (f *Fake) AccountByUsername(ctx context.Context, username string) (provider.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.AccountsErr != nil {
		return provider.Account{}, f.AccountsErr
	}
	for _, account := range f.CachedAccounts {
		if strings.EqualFold(account.Username, username) {
			return account, nil
		}
	}
	return provider.Account{}, nil
}

func (f *Fake) AcquireSilent(ctx context.Context, req provider.SilentRequest) (provider.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SilentCalls = append(f.SilentCalls, req)
	if f.SilentErrOnce != nil {
		err := f.SilentErrOnce
		f.SilentErrOnce = nil
		return provider.Result{}, err
	}
	if f.SilentErr != nil {
		return provider.Result{}, f.SilentErr
	}
	return f.SilentResult, nil
}

func (f *Fake) AcquireInteractive(ctx context.Context, req provider.InteractiveRequest) (provider.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.InteractiveCalls = append(f.InteractiveCalls, req)
	if f.InteractiveErr != nil {
		return provider.Result{}, f.InteractiveErr
	}
	return f.InteractiveResult, nil
}

func (f *Fake) SignOut(ctx context.Context, req provider.SignOutRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignOutCalls = append(f.SignOutCalls, req)
	return f.SignOutErr
}

// SilentCallCount returns how many silent attempts the fake served.
func (f *Fake) SilentCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.SilentCalls)
}

// InteractiveCallCount returns how many interactive attempts the fake served.
func (f *Fake) InteractiveCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.InteractiveCalls)
}
