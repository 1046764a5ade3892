package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the entity's resolv object. The resolv rectangle is the
// render box; combat and landing math use the narrower hitbox (see Hitbox).
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Rect is a plain axis-aligned rectangle used for combat/collision math.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports AABB overlap. All four half-plane inequalities are strict:
// rectangles that merely touch edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// HitboxData is the narrower combat hitbox: full entity height, horizontally
// centered within the render box.
type HitboxData struct {
	Width float64
}

// Rect returns the hitbox rectangle in world space for the given render box.
func (h *HitboxData) Rect(obj *resolv.Object) Rect {
	return Rect{
		X: obj.X + (obj.W-h.Width)/2,
		Y: obj.Y,
		W: h.Width,
		H: obj.H,
	}
}

var Hitbox = donburi.NewComponentType[HitboxData]()
