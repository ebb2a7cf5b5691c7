package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the authentication core.
type Metrics struct {
	SilentAttempts      prometheus.Counter
	InteractiveAttempts prometheus.Counter
	InteractiveFallback prometheus.Counter
	BiometricDeclines   prometheus.Counter
	Logouts             prometheus.Counter
	Errors              *prometheus.CounterVec
}

// New creates and registers all authentication metrics.
func New() *Metrics {
	return &Metrics{
		SilentAttempts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authbridge_silent_attempts_total",
			Help: "Silent token acquisition attempts",
		}),
		InteractiveAttempts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authbridge_interactive_attempts_total",
			Help: "Interactive token acquisition attempts",
		}),
		InteractiveFallback: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authbridge_interactive_fallbacks_total",
			Help: "Login escalations from silent to interactive on interaction_required",
		}),
		BiometricDeclines: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authbridge_biometric_declines_total",
			Help: "Biometric gate evaluations that declined silent reuse",
		}),
		Logouts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "authbridge_logouts_total",
			Help: "Confirmed provider sign-outs",
		}),
		Errors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "authbridge_errors_total",
			Help: "Normalized errors surfaced to callers, by error code",
		}, []string{"code"}),
	}
}

// NewNop returns metrics backed by unregistered collectors, for tests and
// embedders that bring their own registry.
func NewNop() *Metrics {
	return &Metrics{
		SilentAttempts:      prometheus.NewCounter(prometheus.CounterOpts{Name: "nop_silent"}),
		InteractiveAttempts: prometheus.NewCounter(prometheus.CounterOpts{Name: "nop_interactive"}),
		InteractiveFallback: prometheus.NewCounter(prometheus.CounterOpts{Name: "nop_fallback"}),
		BiometricDeclines:   prometheus.NewCounter(prometheus.CounterOpts{Name: "nop_biometric"}),
		Logouts:             prometheus.NewCounter(prometheus.CounterOpts{Name: "nop_logouts"}),
		Errors:              prometheus.NewCounterVec(prometheus.CounterOpts{Name: "nop_errors"}, []string{"code"}),
	}
}
