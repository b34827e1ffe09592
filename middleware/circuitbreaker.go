package middleware

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/vyrodovalexey/avarouter/observability"
)

// errServerFailure marks a downstream 5xx response as a failure for
// the circuit breaker's counters.
var errServerFailure = errors.New("server failure")

// CircuitBreaker wraps gobreaker.CircuitBreaker for use as HTTP
// middleware: requests observed to fail with 5xx responses trip the
// breaker, and an open breaker short-circuits with 503.
type CircuitBreaker struct {
	cb     *gobreaker.CircuitBreaker
	logger observability.Logger
}

// CircuitBreakerOption is a functional option for configuring the circuit breaker.
type CircuitBreakerOption func(*CircuitBreaker)

// WithCircuitBreakerLogger sets the logger for the circuit breaker.
func WithCircuitBreakerLogger(logger observability.Logger) CircuitBreakerOption {
	return func(cb *CircuitBreaker) {
		cb.logger = logger
	}
}

// NewCircuitBreaker creates a new circuit breaker. The breaker trips
// once at least threshold requests have been observed in the rolling
// interval and half of them failed.
func NewCircuitBreaker(
	name string,
	threshold uint32,
	timeout time.Duration,
	opts ...CircuitBreakerOption,
) *CircuitBreaker {
	cb := &CircuitBreaker{
		logger: observability.NopLogger(),
	}

	for _, opt := range opts {
		opt(cb)
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: threshold,
		Interval:    timeout,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= threshold && failureRatio >= 0.5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			cb.logger.Info("circuit breaker state change",
				observability.String("name", name),
				observability.String("from", from.String()),
				observability.String("to", to.String()),
			)

			getMiddlewareMetrics().circuitBreakerTransitions.WithLabelValues(
				name, from.String(), to.String(),
			).Inc()
		},
	}

	cb.cb = gobreaker.NewCircuitBreaker(settings)

	return cb
}

// Middleware returns the circuit breaker as HTTP middleware.
func (cb *CircuitBreaker) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := cb.cb.Execute(func() (interface{}, error) {
				rw := &responseWriter{
					ResponseWriter: w,
					status:         http.StatusOK,
				}

				next.ServeHTTP(rw, r)

				if rw.status >= http.StatusInternalServerError {
					return nil, errServerFailure
				}
				return nil, nil
			})

			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				cb.logger.Warn("circuit breaker rejected request",
					observability.String("path", r.URL.Path),
					observability.Error(err),
				)

				w.Header().Set(HeaderContentType, ContentTypeJSON)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = io.WriteString(w, ErrServiceUnavailable)
			}
		})
	}
}
