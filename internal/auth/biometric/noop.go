package biometric

import "context"

// Noop is the checker for platforms without a biometric subsystem: never
// capable, never evaluable, evaluation always declines.
type Noop struct{}

func (Noop) Capabilities(ctx context.Context) Capabilities { return Capabilities{} }

func (Noop) Evaluate(ctx context.Context) (bool, error) { return false, nil }

// Delegate adapts shell-supplied hooks into a Checker. Application shells
// that bridge to a native biometric subsystem register their callbacks here.
type Delegate struct {
	CapabilitiesFunc func(ctx context.Context) Capabilities
	EvaluateFunc     func(ctx context.Context) (bool, error)
}

func (d Delegate) Capabilities(ctx context.Context) Capabilities {
	if d.CapabilitiesFunc == nil {
		return Capabilities{}
	}
	return d.CapabilitiesFunc(ctx)
}

func (d Delegate) Evaluate(ctx context.Context) (bool, error) {
	if d.EvaluateFunc == nil {
		return false, nil
	}
	return d.EvaluateFunc(ctx)
}
