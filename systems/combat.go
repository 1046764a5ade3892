package systems

import (
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/automoto/duskrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves all hits for the step through the shared collision
// space: the active melee swing first, then darts, then scare-zone triggers.
// Melee before darts means that when both would kill the same warden in one
// step, the kill credits the swing and the dart flies on.
func UpdateCombat(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	positionSwing(playerEntry)

	resolveMelee(e, playerEntry)
	resolveDarts(e)
	resolveScares(e, playerEntry)
}

// positionSwing keeps the swing object on the facing edge of the runner's
// hitbox. It rides along every step; the combat passes gate on the melee
// state before treating it as live.
func positionSwing(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	swingObj := player.SwingObject
	if swingObj == nil {
		return
	}

	obj := components.Object.Get(playerEntry).Object
	hitbox := components.Hitbox.Get(playerEntry).Rect(obj)

	if player.Direction.X >= 0 {
		swingObj.X = hitbox.X + hitbox.W
	} else {
		swingObj.X = hitbox.X - swingObj.W
	}
	swingObj.Y = hitbox.Y
	swingObj.Update()
}

// meleeSwingRect returns the active swing rectangle. ok is false when no
// swing is active.
func meleeSwingRect(playerEntry *donburi.Entry) (components.Rect, bool) {
	anim := components.Animation.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	if anim.Current != cfg.Melee || player.SwingObject == nil {
		return components.Rect{}, false
	}

	s := player.SwingObject
	return components.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}, true
}

func resolveMelee(e *ecs.ECS, playerEntry *donburi.Entry) {
	swing, ok := meleeSwingRect(playerEntry)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	check := player.SwingObject.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}
	for _, candidate := range check.Objects {
		entry, ok := candidate.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		enemy := components.Enemy.Get(entry)
		if enemy.Dead || player.SwingHits[entry] {
			continue
		}

		// The space check is cell-coarse; confirm the actual overlap.
		hitbox := components.Hitbox.Get(entry).Rect(candidate)
		if !swing.Overlaps(hitbox) {
			continue
		}

		player.SwingHits[entry] = true
		damageEnemy(e, playerEntry, entry, cfg.Player.MeleeDamage, components.EventMeleeHit)
	}
}

func resolveDarts(e *ecs.ECS) {
	components.Dart.Each(e.World, func(dartEntry *donburi.Entry) {
		if dartEntry.HasComponent(components.Despawn) {
			return
		}
		dart := components.Dart.Get(dartEntry)
		dartObj := components.Object.Get(dartEntry).Object
		dartRect := components.Rect{X: dartObj.X, Y: dartObj.Y, W: dartObj.W, H: dartObj.H}

		check := dartObj.Check(0, 0, tags.ResolvEnemy)
		if check == nil {
			return
		}
		// The dart spends itself on the first live warden it truly overlaps.
		for _, candidate := range check.Objects {
			entry, ok := candidate.Data.(*donburi.Entry)
			if !ok || !entry.Valid() {
				continue
			}
			if components.Enemy.Get(entry).Dead {
				continue
			}
			hitbox := components.Hitbox.Get(entry).Rect(candidate)
			if !dartRect.Overlaps(hitbox) {
				continue
			}

			markDespawn(dartEntry)
			damageEnemy(e, dartEntry, entry, dart.Damage, components.EventDartHit)
			break
		}
	})
}

// resolveScares triggers crow scare zones. Both the active swing and every
// in-flight dart count as disturbances; darts pass through without being
// consumed. A dart spent on a warden earlier this step still counts since
// the despawn sweep has not pulled it from the space yet. A scared crow
// ignores further disturbances for good.
func resolveScares(e *ecs.ECS, playerEntry *donburi.Entry) {
	swing, swinging := meleeSwingRect(playerEntry)

	components.Crow.Each(e.World, func(entry *donburi.Entry) {
		crow := components.Crow.Get(entry)
		if crow.Scared || crow.ZoneObject == nil {
			return
		}
		zoneObj := crow.ZoneObject
		zone := components.Rect{X: zoneObj.X, Y: zoneObj.Y, W: zoneObj.W, H: zoneObj.H}

		check := zoneObj.Check(0, 0, tags.ResolvSwing, tags.ResolvDart)
		if check == nil {
			return
		}
		for _, candidate := range check.Objects {
			if candidate.HasTags(tags.ResolvSwing) {
				if swinging && swing.Overlaps(zone) {
					scareCrow(e, entry)
					return
				}
				continue
			}
			rect := components.Rect{X: candidate.X, Y: candidate.Y, W: candidate.W, H: candidate.H}
			if rect.Overlaps(zone) {
				scareCrow(e, entry)
				return
			}
		}
	})
}

// damageEnemy applies damage, clamping health at zero, and flips the warden
// into its death sequence when it runs out.
func damageEnemy(e *ecs.ECS, attacker, entry *donburi.Entry, damage int, kind components.CombatEventKind) {
	health := components.Health.Get(entry)
	health.Current -= damage
	if health.Current < 0 {
		health.Current = 0
	}

	obj := components.Object.Get(entry).Object
	PlaySFX(e, cfg.SoundHit)
	EmitBurst(e, components.ParticleHit, obj.X+obj.W/2, obj.Y+obj.H/2,
		cfg.Combat.HitBurstCount, 0)
	EmitCombatEvent(e, components.CombatEvent{
		Kind:     kind,
		Attacker: attacker,
		Target:   entry,
		Damage:   damage,
		X:        obj.X + obj.W/2,
		Y:        obj.Y + obj.H/2,
	})

	if health.Current == 0 {
		killEnemy(e, entry)
	}
}

// killEnemy starts the one-way death sequence: movement stops, the death
// animation plays, and the decay phase begins once it finishes.
func killEnemy(e *ecs.ECS, entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)
	enemy.Dead = true

	physics := components.Physics.Get(entry)
	physics.SpeedX = 0
	physics.SpeedY = 0

	components.Animation.Get(entry).ForceAnimation(cfg.Die)
	donburi.Add(entry, components.Death, &components.DeathData{
		Phase: components.DeathAnimating,
		Alpha: 1,
	})

	PlaySFX(e, cfg.SoundDeath)
}
