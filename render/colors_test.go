package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestEnemyStyle(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  tcell.Color
	}{
		{"Full health", 1.0, RgbEnemyHealthy},
		{"Over max", 1.5, RgbEnemyHealthy},
		{"Half health", 0.5, RgbEnemyHurt},
		{"Low health", 0.1, RgbEnemyCritical},
		{"Negative", -0.5, RgbEnemyCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg, _, _ := EnemyStyle(tt.ratio).Decompose()
			if fg != tt.want {
				t.Errorf("Expected foreground %v, got %v", tt.want, fg)
			}
		})
	}
}
