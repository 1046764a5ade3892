package config

import "github.com/yohamta/donburi/ecs"

// Default is the single ECS layer the game renders on.
const Default = ecs.LayerDefault
