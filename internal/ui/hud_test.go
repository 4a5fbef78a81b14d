package ui

import (
	"testing"

	"orbit-defense/internal/config"
)

func TestHUDSitsBelowThePlayfield(t *testing.T) {
	h := &HUD{}
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top of the world", 10, 0, false},
		{"bottom row of the world", 300, config.ScreenHeight - 1, false},
		{"first HUD row", 300, config.ScreenHeight, true},
		{"bottom of the window", 1000, config.WindowHeight - 1, true},
	}
	for _, tt := range tests {
		if got := h.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: Contains(%d, %d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}
