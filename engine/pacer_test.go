package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStepPacer(t *testing.T) {
	p := NewStepPacer(3)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := p.Wait(ctx); err != nil {
			t.Fatalf("Wait %d: unexpected error %v", i, err)
		}
	}
	if err := p.Wait(ctx); !errors.Is(err, ErrPacerDone) {
		t.Errorf("Expected ErrPacerDone, got %v", err)
	}
	if p.Waits() != 3 {
		t.Errorf("Expected 3 waits, got %d", p.Waits())
	}
}

func TestStepPacerCancelled(t *testing.T) {
	p := NewStepPacer(5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestTickerPacer(t *testing.T) {
	if _, err := NewTickerPacer(0); err == nil {
		t.Error("Expected error for zero interval")
	}
	if _, err := NewTickerPacer(-time.Second); err == nil {
		t.Error("Expected error for negative interval")
	}

	p, err := NewTickerPacer(time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Stop()

	if p.Interval() != time.Millisecond {
		t.Errorf("Expected 1ms interval, got %v", p.Interval())
	}
	if err := p.Wait(context.Background()); err != nil {
		t.Errorf("Expected tick, got %v", err)
	}

	slow, err := NewTickerPacer(time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	defer slow.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := slow.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}
