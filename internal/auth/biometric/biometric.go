// Package biometric models the optional device-level verification step that
// guards silent reuse of a cached account. Platforms without a secure
// enclave report no capability and the gate is bypassed entirely.
package biometric

import "context"

// Capabilities reports what the local biometric subsystem can do.
type Capabilities struct {
	Available       bool
	PolicyEvaluable bool
}

// Checker is the platform capability behind the gate.
type Checker interface {
	Capabilities(ctx context.Context) Capabilities
	// Evaluate runs the device verification. The bool is user consent;
	// an error means the subsystem itself failed, which degrades to the
	// same handling as a decline.
	Evaluate(ctx context.Context) (bool, error)
}

// Gate decides whether a resolved account may be reused silently without a
// fresh device verification.
type Gate struct {
	enabled bool
	checker Checker
}

func NewGate(enabled bool, checker Checker) *Gate {
	if checker == nil {
		checker = Noop{}
	}
	return &Gate{enabled: enabled, checker: checker}
}

// Applicable reports whether the gate participates in this process: it must
// be enabled by configuration and the device must both have the capability
// and be able to evaluate its policy.
func (g *Gate) Applicable(ctx context.Context) bool {
	if !g.enabled {
		return false
	}
	caps := g.checker.Capabilities(ctx)
	return caps.Available && caps.PolicyEvaluable
}

// Evaluate runs the device check. Subsystem failures count as a decline
// rather than a hard error; the orchestrator falls back to its ordinary
// silent/interactive handling either way.
func (g *Gate) Evaluate(ctx context.Context) bool {
	granted, err := g.checker.Evaluate(ctx)
	if err != nil {
		return false
	}
	return granted
}

// Capabilities exposes the raw capability flags for the plugin surface.
func (g *Gate) Capabilities(ctx context.Context) Capabilities {
	return g.checker.Capabilities(ctx)
}
