package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Color  YAMLColor `yaml:"color"`
	Alpha  float64   `yaml:"alpha"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type AnimationFrameSpec struct {
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Color  YAMLColor `yaml:"color"`
}

type AnimationDefComponentSpec struct {
	Frames []AnimationFrameSpec `yaml:"frames"`
	FPS    float64              `yaml:"fps"`
	Loop   bool                 `yaml:"loop"`
}

type AnimationComponentSpec struct {
	Defs    map[string]AnimationDefComponentSpec `yaml:"defs"`
	Current string                               `yaml:"current"`
	Playing bool                                 `yaml:"playing"`
}

type VelocityComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type MovableComponentSpec struct {
	AutoDespawn bool `yaml:"auto_despawn"`
}

type HealthComponentSpec struct {
	Max int `yaml:"max"`
}

type SpaceshipComponentSpec struct {
	MoveAccel       float64 `yaml:"move_accel"`
	Damping         float64 `yaml:"damping"`
	DashSpeed       float64 `yaml:"dash_speed"`
	DashTime        float64 `yaml:"dash_time"`
	DashCooldown    float64 `yaml:"dash_cooldown"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	FiringCooldown  float64 `yaml:"firing_cooldown"`
	ChargeTime      float64 `yaml:"charge_time"`
	ChargeCooldown  float64 `yaml:"charge_cooldown"`
	ChargeWidth     float64 `yaml:"charge_width"`
	ChargeHeight    float64 `yaml:"charge_height"`
	ChargeTTL       float64 `yaml:"charge_ttl"`
	Invulnerability float64 `yaml:"invulnerability"`
	BlinkInterval   float64 `yaml:"blink_interval"`
}

type ProjectileComponentSpec struct {
	Source string `yaml:"source"`
}

type DamageAreaComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type TTLComponentSpec struct {
	Seconds float64 `yaml:"seconds"`
}

type AsteroidComponentSpec struct {
	Size string `yaml:"size"`
}

type EnemyShooterComponentSpec struct {
	Interval        float64 `yaml:"interval"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
}

type CameraComponentSpec struct {
	Zoom float64 `yaml:"zoom"`
}
