package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/geodash/common"
	"github.com/milk9111/geodash/obj"
	"gopkg.in/yaml.v3"
)

var ErrEmptySpec = errors.New("prefabs: empty spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeSpec[T](filename, data)
}

// DecodeSpec unmarshals a yaml document that has already been read.
func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var zero T
	if len(bytes.TrimSpace(data)) == 0 {
		return zero, fmt.Errorf("prefabs: %s: %w", filename, ErrEmptySpec)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// PhysicsSpec tunes the player. Rates are per tick; PlayerConfig converts
// them to per-second values.
type PhysicsSpec struct {
	Name       string  `yaml:"name"`
	TPS        float64 `yaml:"tps"`
	Gravity    float64 `yaml:"gravity"`
	Speed      float64 `yaml:"speed"`
	PlayerSize float64 `yaml:"player_size"`
	JumpOffset float64 `yaml:"jump_offset"`
	StartX     float64 `yaml:"start_x"`
}

// DefaultPhysics matches the stock constants in common.
func DefaultPhysics() PhysicsSpec {
	return PhysicsSpec{
		Name:       "physics",
		TPS:        common.TPS,
		Gravity:    common.Gravity / common.TPS,
		Speed:      common.PlayerSpeed / common.TPS,
		PlayerSize: common.PlayerSize,
		JumpOffset: common.JumpOffset,
		StartX:     common.PlayerStartX,
	}
}

// WithDefaults fills zero or negative fields from DefaultPhysics.
func (s PhysicsSpec) WithDefaults() PhysicsSpec {
	def := DefaultPhysics()
	fill := func(v *float64, d float64) {
		if *v <= 0 {
			*v = d
		}
	}
	fill(&s.TPS, def.TPS)
	fill(&s.Gravity, def.Gravity)
	fill(&s.Speed, def.Speed)
	fill(&s.PlayerSize, def.PlayerSize)
	fill(&s.JumpOffset, def.JumpOffset)
	fill(&s.StartX, def.StartX)
	return s
}

func (s PhysicsSpec) PlayerConfig() obj.PlayerConfig {
	s = s.WithDefaults()
	return obj.PlayerConfig{
		Size:       s.PlayerSize,
		Speed:      s.Speed * s.TPS,
		Gravity:    s.Gravity * s.TPS,
		JumpOffset: s.JumpOffset,
		StartX:     s.StartX,
	}
}

func LoadPhysicsSpec() (PhysicsSpec, error) {
	spec, err := LoadSpec[PhysicsSpec]("physics.yaml")
	if err != nil {
		return PhysicsSpec{}, err
	}
	return spec.WithDefaults(), nil
}

// PaletteSpec holds the draw colours.
type PaletteSpec struct {
	Name           string     `yaml:"name"`
	Background     *YAMLColor `yaml:"background"`
	Player         *YAMLColor `yaml:"player"`
	PlayerOutline  *YAMLColor `yaml:"player_outline"`
	Ground         *YAMLColor `yaml:"ground"`
	GroundInactive *YAMLColor `yaml:"ground_inactive"`
	Block          *YAMLColor `yaml:"block"`
	BlockOutline   *YAMLColor `yaml:"block_outline"`
	Spike          *YAMLColor `yaml:"spike"`
	SpikeOutline   *YAMLColor `yaml:"spike_outline"`
	OrbIdle        *YAMLColor `yaml:"orb_idle"`
	OrbUsed        *YAMLColor `yaml:"orb_used"`
	Text           *YAMLColor `yaml:"text"`
	Victory        *YAMLColor `yaml:"victory"`
	Failure        *YAMLColor `yaml:"failure"`
}

// DefaultPalette is used for any colour the yaml leaves out.
func DefaultPalette() PaletteSpec {
	c := func(r, g, b, a uint8) *YAMLColor { return &YAMLColor{color.NRGBA{R: r, G: g, B: b, A: a}} }
	return PaletteSpec{
		Name:           "palette",
		Background:     c(0x1c, 0x2a, 0x5a, 0xff),
		Player:         c(0xf5, 0xc5, 0x42, 0xff),
		PlayerOutline:  c(0x00, 0x00, 0x00, 0xff),
		Ground:         c(0x30, 0x50, 0xc8, 0xff),
		GroundInactive: c(0x30, 0x50, 0xc8, 0x40),
		Block:          c(0x10, 0x10, 0x10, 0xff),
		BlockOutline:   c(0xff, 0xff, 0xff, 0xff),
		Spike:          c(0x10, 0x10, 0x10, 0xff),
		SpikeOutline:   c(0xff, 0xff, 0xff, 0xff),
		OrbIdle:        c(0xff, 0xe1, 0x4d, 0xff),
		OrbUsed:        c(0x7a, 0x6a, 0x2a, 0xff),
		Text:           c(0xff, 0xff, 0xff, 0xff),
		Victory:        c(0x39, 0xd3, 0x53, 0xff),
		Failure:        c(0xff, 0x40, 0x40, 0xff),
	}
}

func (p PaletteSpec) WithDefaults() PaletteSpec {
	def := DefaultPalette()
	fill := func(v **YAMLColor, d *YAMLColor) {
		if *v == nil || (*v).Color == nil {
			*v = d
		}
	}
	fill(&p.Background, def.Background)
	fill(&p.Player, def.Player)
	fill(&p.PlayerOutline, def.PlayerOutline)
	fill(&p.Ground, def.Ground)
	fill(&p.GroundInactive, def.GroundInactive)
	fill(&p.Block, def.Block)
	fill(&p.BlockOutline, def.BlockOutline)
	fill(&p.Spike, def.Spike)
	fill(&p.SpikeOutline, def.SpikeOutline)
	fill(&p.OrbIdle, def.OrbIdle)
	fill(&p.OrbUsed, def.OrbUsed)
	fill(&p.Text, def.Text)
	fill(&p.Victory, def.Victory)
	fill(&p.Failure, def.Failure)
	return p
}

func LoadPaletteSpec() (PaletteSpec, error) {
	spec, err := LoadSpec[PaletteSpec]("palette.yaml")
	if err != nil {
		return PaletteSpec{}, err
	}
	return spec.WithDefaults(), nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	col, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = col
	return nil
}

// ParseHexColor accepts #rrggbb or #rrggbbaa, with or without the '#'.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", v, err)
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", v, err)
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", v, err)
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", v, err)
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
