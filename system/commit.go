package system

import (
	"github.com/lixenwraith/gravity-sandbox/engine"
	"github.com/lixenwraith/gravity-sandbox/parameter"
)

// CommitSystem applies the tick's deferred removals and additions to the registry
type CommitSystem struct {
	world *engine.World
}

func NewCommitSystem(world *engine.World) engine.System {
	return &CommitSystem{world: world}
}

func (s *CommitSystem) Priority() int {
	return parameter.PriorityCommit
}

func (s *CommitSystem) Update() {
	s.world.Commit()
}
