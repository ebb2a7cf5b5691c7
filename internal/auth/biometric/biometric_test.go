package biometric

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capableChecker(granted bool, err error) Delegate {
	return Delegate{
		CapabilitiesFunc: func(ctx context.Context) Capabilities {
			return Capabilities{Available: true, PolicyEvaluable: true}
		},
		EvaluateFunc: func(ctx context.Context) (bool, error) { return granted, err },
	}
}

func TestGateApplicable(t *testing.T) {
	ctx := context.Background()

	t.Run("bypassed on platforms without a subsystem", func(t *testing.T) {
		assert.False(t, NewGate(true, Noop{}).Applicable(ctx))
	})

	t.Run("bypassed when configuration disables it", func(t *testing.T) {
		assert.False(t, NewGate(false, capableChecker(true, nil)).Applicable(ctx))
	})

	t.Run("requires both capability and evaluable policy", func(t *testing.T) {
		onlyAvailable := Delegate{
			CapabilitiesFunc: func(ctx context.Context) Capabilities {
				return Capabilities{Available: true}
			},
		}
		assert.False(t, NewGate(true, onlyAvailable).Applicable(ctx))
		assert.True(t, NewGate(true, capableChecker(true, nil)).Applicable(ctx))
	})
}

func TestGateEvaluate(t *testing.T) {
	ctx := context.Background()

	assert.True(t, NewGate(true, capableChecker(true, nil)).Evaluate(ctx))
	assert.False(t, NewGate(true, capableChecker(false, nil)).Evaluate(ctx))

	// Subsystem failure degrades to a decline, never a hard error.
	assert.False(t, NewGate(true, capableChecker(true, errors.New("sensor offline"))).Evaluate(ctx))
}

func TestNilCheckerDefaultsToNoop(t *testing.T) {
	gate := NewGate(true, nil)
	assert.False(t, gate.Applicable(context.Background()))
	assert.False(t, gate.Evaluate(context.Background()))
}
