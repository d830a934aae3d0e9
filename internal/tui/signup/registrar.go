package signup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// ErrEmailTaken is returned when an account with the email already exists.
var ErrEmailTaken = errors.New("email already registered")

// Registrar creates user accounts.
type Registrar interface {
	Register(ctx context.Context, f Fields) error
}

// RegistrarFunc adapts a function to the Registrar interface.
type RegistrarFunc func(ctx context.Context, f Fields) error

// Register calls fn.
func (fn RegistrarFunc) Register(ctx context.Context, f Fields) error {
	return fn(ctx, f)
}

// MemoryRegistrar simulates the POST /users call of a user API. It keeps
// registered emails in memory and rejects duplicates.
type MemoryRegistrar struct {
	// Latency delays every call, like a network round trip.
	Latency time.Duration

	mu     sync.Mutex
	emails map[string]struct{}
}

// NewMemoryRegistrar returns a registrar with the given emails already taken.
func NewMemoryRegistrar(latency time.Duration, taken ...string) *MemoryRegistrar {
	r := &MemoryRegistrar{Latency: latency, emails: make(map[string]struct{})}
	for _, e := range taken {
		r.emails[strings.ToLower(e)] = struct{}{}
	}
	return r
}

// Register records the account or fails with ErrEmailTaken.
func (r *MemoryRegistrar) Register(ctx context.Context, f Fields) error {
	if r.Latency > 0 {
		timer := time.NewTimer(r.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return fmt.Errorf("POST /users: %w", ctx.Err())
		case <-timer.C:
		}
	}

	email := strings.ToLower(strings.TrimSpace(f.Email))

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.emails[email]; ok {
		return fmt.Errorf("POST /users: %w", ErrEmailTaken)
	}
	r.emails[email] = struct{}{}
	return nil
}
