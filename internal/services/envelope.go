package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps every service result. It is the only contract the admin
// pages rely on: no status codes, no pagination.
type Envelope[T any] struct {
	Data    T      `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func ok[T any](data T) Envelope[T] {
	return Envelope[T]{Data: data, Success: true}
}

func okMsg[T any](data T, msg string) Envelope[T] {
	return Envelope[T]{Data: data, Success: true, Message: msg}
}

// Latency is the simulated network delay applied before each operation.
// A zero value disables simulation.
type Latency struct {
	List   time.Duration
	Get    time.Duration
	Write  time.Duration
	Filter time.Duration
	Submit time.Duration
	Login  time.Duration
	Logout time.Duration
}

// DefaultLatency mirrors the delays of the mock API the console was built
// against.
func DefaultLatency() Latency {
	return Latency{
		List:   500 * time.Millisecond,
		Get:    300 * time.Millisecond,
		Write:  500 * time.Millisecond,
		Filter: 300 * time.Millisecond,
		Submit: 800 * time.Millisecond,
		Login:  800 * time.Millisecond,
		Logout: 300 * time.Millisecond,
	}
}

// Scale multiplies every delay by f. f <= 0 yields no latency.
func (l Latency) Scale(f float64) Latency {
	if f <= 0 {
		return Latency{}
	}
	m := func(d time.Duration) time.Duration { return time.Duration(float64(d) * f) }
	return Latency{
		List:   m(l.List),
		Get:    m(l.Get),
		Write:  m(l.Write),
		Filter: m(l.Filter),
		Submit: m(l.Submit),
		Login:  m(l.Login),
		Logout: m(l.Logout),
	}
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func shortID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}
