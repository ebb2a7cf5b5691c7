// Package accounts decides which cached identity an authentication attempt
// should run against, and what prompt policy that choice implies.
package accounts

import (
	"context"

	"authbridge/internal/auth/provider"
)

// Resolution is the outcome of account resolution. When Found is false the
// orchestrator goes straight to an interactive attempt; Prompt is the policy
// the choice implies (select_account when several accounts are cached, since
// ambiguity is never resolved by guessing).
type Resolution struct {
	Account provider.Account
	Found   bool
	Prompt  provider.Prompt
}

// Resolver looks accounts up through the provider's cache capabilities.
type Resolver struct {
	client provider.Client
}

func NewResolver(client provider.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve picks the relevant account: an explicit hint from the request wins,
// then the session's current account, then the provider cache. A cache with
// exactly one entry resolves to it; more than one forces explicit selection.
func (r *Resolver) Resolve(ctx context.Context, hint, current provider.Account) (Resolution, error) {
	if !hint.IsZero() {
		if hint.Username != "" {
			account, err := r.client.AccountByUsername(ctx, hint.Username)
			if err != nil {
				return Resolution{}, err
			}
			if account.IsZero() {
				return Resolution{}, nil
			}
			return Resolution{Account: account, Found: true}, nil
		}
		return Resolution{Account: hint, Found: true}, nil
	}

	if !current.IsZero() {
		return Resolution{Account: current, Found: true}, nil
	}

	cached, err := r.client.Accounts(ctx)
	if err != nil {
		return Resolution{}, err
	}
	switch len(cached) {
	case 0:
		return Resolution{}, nil
	case 1:
		return Resolution{Account: cached[0], Found: true}, nil
	default:
		return Resolution{Prompt: provider.PromptSelectAccount}, nil
	}
}

// All returns every cached account in contract order.
func (r *Resolver) All(ctx context.Context) ([]provider.Account, error) {
	return r.client.Accounts(ctx)
}

// ByUsername resolves a single account by its username, zero when absent.
func (r *Resolver) ByUsername(ctx context.Context, username string) (provider.Account, error) {
	return r.client.AccountByUsername(ctx, username)
}
