package constants

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	expected := time.Duration(int64(time.Second) / TickRate)
	if TickInterval != expected {
		t.Errorf("Expected tick interval %v, got %v", expected, TickInterval)
	}
	if TickInterval <= 0 {
		t.Fatal("Expected positive tick interval")
	}
}

func TestMenuOptions(t *testing.T) {
	expected := []string{"Start Game", "Options", "Quit"}
	if len(MenuOptions) != len(expected) {
		t.Fatalf("Expected %d menu options, got %d", len(expected), len(MenuOptions))
	}
	for i, opt := range expected {
		if MenuOptions[i] != opt {
			t.Errorf("Expected option %d to be %q, got %q", i, opt, MenuOptions[i])
		}
	}
}
