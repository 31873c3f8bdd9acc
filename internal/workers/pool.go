// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"
)

// Pool is a [Runner] backed by a weighted semaphore.
type Pool struct {
	name string
	size int64
	sem  *semaphore.Weighted
}

// NewPool creates a pool that runs at most size functions at a time.
// A non-positive size falls back to runtime.NumCPU().
func NewPool(name string, size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}

	return &Pool{
		name: name,
		size: int64(size),
		sem:  semaphore.NewWeighted(int64(size)),
	}
}

// Size returns the maximum number of concurrently running functions.
func (p *Pool) Size() int {
	return int(p.size)
}

// Do implements [Runner].
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	started := time.Now()
	if err := p.sem.Acquire(ctx, 1); err != nil {
		poolRejected.WithLabelValues(p.name).Inc()
		return fmt.Errorf("worker pool %q: %w", p.name, err)
	}
	defer p.sem.Release(1)

	poolWaitDuration.WithLabelValues(p.name).Observe(time.Since(started).Seconds())
	poolInFlight.WithLabelValues(p.name).Inc()
	defer poolInFlight.WithLabelValues(p.name).Dec()

	return fn()
}
