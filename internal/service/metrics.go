package service

import (
	"errors"

	"github.com/cosmic-community/coffee-closer-network/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// authAttempts counts signup and login attempts by outcome.
var authAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "auth_attempts_total",
	Help: "Total number of signup and login attempts by outcome",
}, []string{"operation", "outcome"})

func observeAuth(operation string, err error) {
	authAttempts.WithLabelValues(operation, authOutcome(err)).Inc()
}

func authOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidDataProvided), errors.Is(err, ErrInvalidPassword):
		return "invalid"
	case errors.Is(err, ErrInvalidCredentials):
		return "rejected"
	case errors.Is(err, ErrAccountSuspended):
		return "suspended"
	case errors.Is(err, store.ErrAccountAlreadyExists):
		return "duplicate"
	default:
		return "error"
	}
}
