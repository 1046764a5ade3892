package components

import "github.com/yohamta/donburi"

// DespawnData marks an entity for removal. Marked entities are swept by the
// despawn system at a single well-defined point per step; no other system
// removes entities from the world or the resolv space.
type DespawnData struct{}

var Despawn = donburi.NewComponentType[DespawnData]()
