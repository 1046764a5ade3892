package components

import (
	"testing"

	"github.com/solarlune/resolv"
)

func TestRectOverlapsIsStrict(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"separate", Rect{X: 20, Y: 0, W: 10, H: 10}, false},
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 4, H: 4}, true},
		{"edge touch right", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"edge touch below", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"corner touch", Rect{X: 10, Y: 10, W: 10, H: 10}, false},
		{"one pixel in", Rect{X: 9, Y: 9, W: 10, H: 10}, true},
	}

	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestHitboxIsCenteredFullHeight(t *testing.T) {
	obj := resolv.NewObject(100, 50, 32, 48)
	h := &HitboxData{Width: 20}

	rect := h.Rect(obj)
	if rect.X != 106 {
		t.Errorf("hitbox x = %v, want 106", rect.X)
	}
	if rect.W != 20 {
		t.Errorf("hitbox w = %v, want 20", rect.W)
	}
	if rect.Y != 50 || rect.H != 48 {
		t.Errorf("hitbox must span full height, got y=%v h=%v", rect.Y, rect.H)
	}
}
