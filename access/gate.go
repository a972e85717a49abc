// Package access decides whether an operation may touch the codec at all.
package access

import (
	"context"
	"errors"
	"fmt"
)

var ErrDenied = errors.New("access denied")

// Gate approves or rejects an operation before it runs.
type Gate interface {
	Authorize(ctx context.Context) error
}

type GateFunc func(ctx context.Context) error

func (f GateFunc) Authorize(ctx context.Context) error {
	return f(ctx)
}

type allow struct{}

func (allow) Authorize(context.Context) error { return nil }

// Allow approves everything.
var Allow Gate = allow{}

// Chain approves only if every gate approves, checking them in order.
type Chain []Gate

func (c Chain) Authorize(ctx context.Context) error {
	for i, g := range c {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Authorize(ctx); err != nil {
			return fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return nil
}

func deny(reason string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrDenied, reason)
	}
	return fmt.Errorf("%w: %s: %w", ErrDenied, reason, err)
}
