package systems

import (
	"github.com/automoto/duskrunner/components"
	cfg "github.com/automoto/duskrunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies drives warden patrol: walk toward the current bound, flip at
// or past it. Bounds are [PatrolStart-PatrolRange, PatrolStart]; a zero
// range pins the warden in place. Dead wardens are inert.
func UpdateEnemies(e *ecs.ECS) {
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		if enemy.Dead {
			return
		}

		physics := components.Physics.Get(entry)
		anim := components.Animation.Get(entry)

		if enemy.PatrolRange <= 0 {
			physics.SpeedX = 0
			anim.SetAnimation(cfg.Idle)
			return
		}

		obj := components.Object.Get(entry).Object
		leftBound := enemy.PatrolStart - enemy.PatrolRange
		rightBound := enemy.PatrolStart

		if obj.X <= leftBound {
			enemy.Direction.X = cfg.DirectionRight
		} else if obj.X >= rightBound {
			enemy.Direction.X = cfg.DirectionLeft
		}

		physics.SpeedX = enemy.TypeConfig.PatrolSpeed * enemy.Direction.X
		anim.SetAnimation(cfg.Walk)
	})
}
