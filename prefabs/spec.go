package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// VisualizerFile is the prefab holding window, grid and palette settings.
const VisualizerFile = "visualizer.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

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

type VisualizerSpec struct {
	Name             string      `yaml:"name"`
	WindowTitle      string      `yaml:"window_title"`
	Grid             GridSpec    `yaml:"grid"`
	StatusBarHeight  int         `yaml:"status_bar_height"`
	StepDelay        float64     `yaml:"step_delay"`
	MaxStepsPerFrame int         `yaml:"max_steps_per_frame"`
	Algorithm        string      `yaml:"algorithm"`
	Layout           string      `yaml:"layout"`
	Cave             CaveSpec    `yaml:"cave"`
	Palette          PaletteSpec `yaml:"palette"`
}

type GridSpec struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
	CellGap  int `yaml:"cell_gap"`
}

type CaveSpec struct {
	WallChance      float64 `yaml:"wall_chance"`
	SmoothingPasses int     `yaml:"smoothing_passes"`
}

type PaletteSpec struct {
	Background YAMLColor `yaml:"background"`
	Empty      YAMLColor `yaml:"empty"`
	Wall       YAMLColor `yaml:"wall"`
	Start      YAMLColor `yaml:"start"`
	End        YAMLColor `yaml:"end"`
	Path       YAMLColor `yaml:"path"`
	Visited    YAMLColor `yaml:"visited"`
	InQueue    YAMLColor `yaml:"in_queue"`
	Text       YAMLColor `yaml:"text"`
	TextDim    YAMLColor `yaml:"text_dim"`
	Selected   YAMLColor `yaml:"selected"`
}

// DefaultVisualizerSpec mirrors the embedded visualizer.yaml and fills any
// field a disk override leaves out.
func DefaultVisualizerSpec() VisualizerSpec {
	return VisualizerSpec{
		Name:             "pathviz",
		WindowTitle:      "Dijkstra Visualization",
		Grid:             GridSpec{Width: 50, Height: 50, CellSize: 20, CellGap: 1},
		StatusBarHeight:  50,
		StepDelay:        0.01,
		MaxStepsPerFrame: 200,
		Algorithm:        "astar",
		Cave:             CaveSpec{WallChance: 0.45, SmoothingPasses: 1},
		Palette: PaletteSpec{
			Background: rgb(0x00, 0x00, 0x00),
			Empty:      rgb(0x50, 0x50, 0x50),
			Wall:       rgb(0x00, 0x00, 0x00),
			Start:      rgb(0x00, 0xe4, 0x30),
			End:        rgb(0xe6, 0x29, 0x37),
			Path:       rgb(0x00, 0x9e, 0x2f),
			Visited:    rgb(0x66, 0xbf, 0xff),
			InQueue:    rgb(0xfd, 0xf9, 0x00),
			Text:       rgb(0xff, 0xff, 0xff),
			TextDim:    rgb(0x82, 0x82, 0x82),
			Selected:   rgb(0x50, 0x50, 0x50),
		},
	}
}

// LoadVisualizerSpec loads visualizer.yaml (disk first, then embedded).
func LoadVisualizerSpec() (VisualizerSpec, error) {
	data, err := Load(VisualizerFile)
	if err != nil {
		return VisualizerSpec{}, fmt.Errorf("prefabs: load %s: %w", VisualizerFile, err)
	}
	return ParseVisualizerSpec(data)
}

// ParseVisualizerSpec decodes data over the defaults and validates it.
func ParseVisualizerSpec(data []byte) (VisualizerSpec, error) {
	spec := DefaultVisualizerSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return VisualizerSpec{}, fmt.Errorf("prefabs: unmarshal %s: %w", VisualizerFile, err)
	}
	if err := spec.Validate(); err != nil {
		return VisualizerSpec{}, err
	}
	return spec, nil
}

func (s VisualizerSpec) Validate() error {
	switch {
	case s.Grid.Width <= 0 || s.Grid.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidSpec, s.Grid.Width, s.Grid.Height)
	case s.Grid.CellSize <= 0:
		return fmt.Errorf("%w: cell_size %d", ErrInvalidSpec, s.Grid.CellSize)
	case s.Grid.CellGap < 0 || s.Grid.CellGap >= s.Grid.CellSize:
		return fmt.Errorf("%w: cell_gap %d", ErrInvalidSpec, s.Grid.CellGap)
	case s.StatusBarHeight < 0:
		return fmt.Errorf("%w: status_bar_height %d", ErrInvalidSpec, s.StatusBarHeight)
	case s.StepDelay < 0:
		return fmt.Errorf("%w: step_delay %v", ErrInvalidSpec, s.StepDelay)
	case s.MaxStepsPerFrame <= 0:
		return fmt.Errorf("%w: max_steps_per_frame %d", ErrInvalidSpec, s.MaxStepsPerFrame)
	case s.Cave.WallChance < 0 || s.Cave.WallChance > 1:
		return fmt.Errorf("%w: cave.wall_chance %v", ErrInvalidSpec, s.Cave.WallChance)
	case s.Cave.SmoothingPasses < 0:
		return fmt.Errorf("%w: cave.smoothing_passes %d", ErrInvalidSpec, s.Cave.SmoothingPasses)
	}
	return nil
}

// ScreenWidth and ScreenHeight are the logical window size in pixels.
func (s VisualizerSpec) ScreenWidth() int {
	return s.Grid.Width * s.Grid.CellSize
}

func (s VisualizerSpec) ScreenHeight() int {
	return s.Grid.Height*s.Grid.CellSize + s.StatusBarHeight
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name such as
// "skyblue".
type YAMLColor struct {
	color.Color
}

func rgb(r, g, b uint8) YAMLColor {
	return YAMLColor{Color: color.RGBA{R: r, G: g, B: b, A: 0xff}}
}

// ParseColor converts a hex string or color name into a color.
func ParseColor(v string) (color.Color, error) {
	v = strings.TrimSpace(v)
	if named, ok := colornames.Map[strings.ToLower(v)]; ok {
		return named, nil
	}

	s := strings.TrimPrefix(v, "#")

	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	r, err := parse(0)
	if err != nil {
		return nil, err
	}
	g, err := parse(2)
	if err != nil {
		return nil, err
	}
	b, err := parse(4)
	if err != nil {
		return nil, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}
