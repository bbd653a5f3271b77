package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/spaceranger/ecs/component"
	"github.com/milk9111/spaceranger/prefabs"
)

// StageScript runs the tengo script that decides which spawners a wave gets.
type StageScript struct {
	path     string
	compiled *tengo.Compiled
}

func LoadStageScript(path string) (*StageScript, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("stage script: load %s: %w", path, err)
	}
	return CompileStageScript(path, src)
}

func CompileStageScript(path string, src []byte) (*StageScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("wave", 0)
	_ = script.Add("stage_type", "")
	_ = script.Add("win_w", 0.0)
	_ = script.Add("win_h", 0.0)
	_ = script.Add("cfg", map[string]any{})

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("stage script: compile %s: %w", path, err)
	}
	return &StageScript{path: path, compiled: compiled}, nil
}

// Spawners runs the script for one wave.
func (s *StageScript) Spawners(wave component.StageWave, winW, winH float64, cfg prefabs.StageSpec) ([]component.EnemySpawner, error) {
	if s == nil || s.compiled == nil {
		return nil, fmt.Errorf("stage script: not loaded")
	}
	inputs := map[string]any{
		"wave":       wave.Number,
		"stage_type": wave.Type.String(),
		"win_w":      winW,
		"win_h":      winH,
		"cfg": map[string]any{
			"length":       cfg.Length,
			"spawn_margin": cfg.SpawnMargin,
		},
	}
	for name, v := range inputs {
		if err := s.compiled.Set(name, v); err != nil {
			return nil, fmt.Errorf("stage script: set %s: %w", name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return nil, fmt.Errorf("stage script: run %s: %w", s.path, err)
	}
	if !s.compiled.IsDefined("spawners") {
		return nil, fmt.Errorf("stage script: %s does not define spawners", s.path)
	}

	raw := s.compiled.Get("spawners").Array()
	out := make([]component.EnemySpawner, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("stage script: spawner %d is %T, want map", i, item)
		}
		sp, err := spawnerFromScript(m)
		if err != nil {
			return nil, fmt.Errorf("stage script: spawner %d: %w", i, err)
		}
		out = append(out, sp)
	}
	return out, nil
}

func spawnerFromScript(m map[string]any) (component.EnemySpawner, error) {
	name, _ := m["entity_type"].(string)
	t, err := component.ParseEntityType(name)
	if err != nil {
		return component.EnemySpawner{}, err
	}
	if !t.IsEnemy() {
		return component.EnemySpawner{}, fmt.Errorf("%s is not an enemy", t)
	}
	total := int(scriptNumber(m["total"]))
	if total <= 0 {
		return component.EnemySpawner{}, fmt.Errorf("total must be positive, got %d", total)
	}
	interval := scriptNumber(m["interval"])
	if interval <= 0 {
		return component.EnemySpawner{}, fmt.Errorf("interval must be positive, got %v", interval)
	}
	return component.EnemySpawner{
		EntityType: t,
		SpawnTotal: total,
		SpeedY:     scriptNumber(m["speed"]),
		Interval:   component.NewTimer(interval, component.TimerRepeating),
		Location: component.SpawnerLocation{
			CenterX: scriptNumber(m["center_x"]),
			CenterY: scriptNumber(m["center_y"]),
			Width:   scriptNumber(m["width"]),
			Height:  scriptNumber(m["height"]),
		},
	}, nil
}

func scriptNumber(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
