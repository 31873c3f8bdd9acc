// Package workers provides the bounded pool that CPU-heavy work (password
// hashing and verification) is offloaded to, so that a burst of signups or
// logins cannot occupy every processor at once.
package workers

import "context"

// Runner executes units of work with bounded concurrency.
//
// Do blocks until a slot is free or ctx is done, then runs fn on the
// calling goroutine and returns its error. When ctx ends first, fn is never
// run and ctx.Err() is returned.
//
// Example implementation usage:
//
//	err := pool.Do(ctx, func() error {
//	    hash, err = bcrypt.GenerateFromPassword(pw, cost)
//	    return err
//	})
type Runner interface {
	Do(ctx context.Context, fn func() error) error
}
