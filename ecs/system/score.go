package system

import (
	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// ScoreSystem turns AddScore events into points.
type ScoreSystem struct {
	points   map[component.EntityType]int
	addScore func(int)
}

// ScoreTable resolves the scores block of game.yaml. Unknown names are
// ignored.
func ScoreTable(raw map[string]int) map[component.EntityType]int {
	out := make(map[component.EntityType]int, len(raw))
	for name, pts := range raw {
		t, err := component.ParseEntityType(name)
		if err != nil {
			continue
		}
		out[t] = pts
	}
	return out
}

func NewScoreSystem(points map[component.EntityType]int, addScore func(int)) *ScoreSystem {
	return &ScoreSystem{points: points, addScore: addScore}
}

func (s *ScoreSystem) SetPoints(points map[component.EntityType]int) {
	s.points = points
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range ecs.DrainAs[events.AddScore](w, events.KindAddScore) {
		pts := s.points[evt.Type]
		if pts == 0 || s.addScore == nil {
			continue
		}
		s.addScore(pts)
	}
}
