package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is game.yaml: input bindings, stage pacing and scoring.
type GameSpec struct {
	Bindings map[string][]string `yaml:"bindings"`
	Stage    StageSpec           `yaml:"stage"`
	Scores   map[string]int      `yaml:"scores"`
	Audio    AudioSpec           `yaml:"audio"`
}

type StageSpec struct {
	Script               string  `yaml:"script"`
	Length               float64 `yaml:"length"`
	InitCooldown         float64 `yaml:"init_cooldown"`
	Cooldown             float64 `yaml:"cooldown"`
	SpawnMargin          float64 `yaml:"spawn_margin"`
	DespawnMargin        float64 `yaml:"despawn_margin"`
	AsteroidFieldChance  float64 `yaml:"asteroid_field_chance"`
	SaucerInvasionChance float64 `yaml:"saucer_invasion_chance"`
	SplitSpeedX          float64 `yaml:"split_speed_x"`
	SplitSpeedY          float64 `yaml:"split_speed_y"`
}

type AudioSpec struct {
	SampleRate int                `yaml:"sample_rate"`
	Volume     float64            `yaml:"volume"`
	Sounds     map[string]SfxSpec `yaml:"sounds"`
}

// SfxSpec describes a synthesized sound as a sequence of tones.
type SfxSpec struct {
	Volume float64    `yaml:"volume"`
	Tones  []ToneSpec `yaml:"tones"`
	Noise  float64    `yaml:"noise"`
}

type ToneSpec struct {
	Freq     float64 `yaml:"freq"`
	Duration float64 `yaml:"duration"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// YAMLColor accepts "#RRGGBB", "#RRGGBBAA" or an SVG colour name.
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}

func ParseColor(raw string) (color.NRGBA, error) {
	raw = strings.TrimSpace(raw)
	if named, ok := colornames.Map[strings.ToLower(raw)]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}

	s := strings.TrimPrefix(raw, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", raw)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
