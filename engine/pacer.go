package engine

import (
	"context"
	"errors"
	"time"
)

// ErrPacerDone is returned by a Pacer that has no ticks left; the loop stops cleanly
var ErrPacerDone = errors.New("pacer done")

// Pacer blocks until the next tick boundary
// Wait returns ctx.Err() if the context ends first
type Pacer interface {
	Wait(ctx context.Context) error
}

// TickerPacer paces the loop on wall-clock time with a fixed interval
// Missed boundaries are dropped rather than queued, a slow tick does not cause a burst
type TickerPacer struct {
	ticker   *time.Ticker
	interval time.Duration
}

// NewTickerPacer creates a pacer firing every interval
// Non-positive intervals are rejected
func NewTickerPacer(interval time.Duration) (*TickerPacer, error) {
	if interval <= 0 {
		return nil, errors.New("tick interval must be positive")
	}
	return &TickerPacer{
		ticker:   time.NewTicker(interval),
		interval: interval,
	}, nil
}

// Interval returns the tick interval
func (p *TickerPacer) Interval() time.Duration {
	return p.interval
}

func (p *TickerPacer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Stop releases the underlying ticker
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}

// StepPacer never sleeps and allows a fixed number of waits
// Used headless and in tests to run an exact number of ticks
type StepPacer struct {
	remaining int
	waits     int
}

// NewStepPacer creates a pacer that lets the loop run ticks ticks
func NewStepPacer(ticks int) *StepPacer {
	return &StepPacer{remaining: ticks - 1}
}

func (p *StepPacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.waits++
	if p.remaining <= 0 {
		return ErrPacerDone
	}
	p.remaining--
	return nil
}

// Waits returns the number of Wait calls
func (p *StepPacer) Waits() int {
	return p.waits
}
