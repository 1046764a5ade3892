package components

import (
	cfg "github.com/automoto/duskrunner/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string
	TypeConfig *cfg.EnemyTypeConfig // cached reference to type configuration
	Direction  Vector

	// Patrol bounds: the warden walks between PatrolStart (right bound,
	// usually the spawn x) and PatrolStart-PatrolRange (left bound).
	PatrolStart float64
	PatrolRange float64

	// Dead is the one-way Patrol -> Dead transition flag. Movement and AI
	// are suppressed once set; the death/decay sequence takes over.
	Dead bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
