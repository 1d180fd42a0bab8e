package setup

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"townwalk/pkg/engine/world"
)

//go:embed worlds/town.yaml
var townYAML []byte

// PosDef is a grid coordinate in a world file
type PosDef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pos converts the definition to a grid position
func (p PosDef) Pos() world.Pos {
	return world.Pos{X: p.X, Y: p.Y}
}

// ZoneDef describes one trigger zone
type ZoneDef struct {
	Name      string  `yaml:"name"`
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Trigger   string  `yaml:"trigger"`
	Title     string  `yaml:"title"`
	Content   string  `yaml:"content"`
	Character bool    `yaml:"character"`
	Exit      *PosDef `yaml:"exit"`
}

// CharacterDef describes a standing character. Blocking characters occupy
// their rectangle; interactive ones can be talked to by facing them.
type CharacterDef struct {
	Name        string `yaml:"name"`
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Blocking    bool   `yaml:"blocking"`
	Interactive bool   `yaml:"interactive"`
	Dialogue    string `yaml:"dialogue"`
}

// WorldDef is the on-disk world format
type WorldDef struct {
	Name       string         `yaml:"name"`
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	Spawn      PosDef         `yaml:"spawn"`
	Rows       []string       `yaml:"rows"`
	Characters []CharacterDef `yaml:"characters"`
	Zones      []ZoneDef      `yaml:"zones"`
}

// Parse decodes a YAML world definition and checks its grid
func Parse(data []byte) (*WorldDef, error) {
	var def WorldDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode world: %w", err)
	}
	if _, err := def.Grid(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Load reads and parses a world file
func Load(path string) (*WorldDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("world %s: %w", path, err)
	}
	return def, nil
}

// Default returns the embedded harbor town
func Default() (*WorldDef, error) {
	return Parse(townYAML)
}

// Grid converts the rows to a walkability matrix. "." is walkable and "#" is not.
func (d *WorldDef) Grid() ([][]bool, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", world.ErrInvalidGrid, d.Width, d.Height)
	}
	if len(d.Rows) != d.Height {
		return nil, fmt.Errorf("%w: %d rows, want %d", world.ErrInvalidGrid, len(d.Rows), d.Height)
	}

	grid := make([][]bool, d.Height)
	for y, row := range d.Rows {
		if len(row) != d.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", world.ErrInvalidGrid, y, len(row), d.Width)
		}
		grid[y] = make([]bool, d.Width)
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '.':
				grid[y][x] = true
			case '#':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %d,%d", world.ErrInvalidGrid, row[x], x, y)
			}
		}
	}
	return grid, nil
}

// Zone converts the definition to an engine zone
func (z ZoneDef) Zone() (world.Zone, error) {
	trigger, ok := world.ParseTrigger(z.Trigger)
	if !ok {
		return world.Zone{}, fmt.Errorf("%w: zone %q has unknown trigger %q", world.ErrInvalidZone, z.Name, z.Trigger)
	}
	zone := world.Zone{
		Name:    z.Name,
		Bounds:  world.Rect{X: z.X, Y: z.Y, W: z.Width, H: z.Height},
		Trigger: trigger,
		Payload: world.Payload{
			Title:     z.Title,
			Content:   z.Content,
			Character: z.Character,
		},
	}
	if z.Exit != nil {
		exit := z.Exit.Pos()
		zone.Exit = &exit
	}
	return zone, nil
}

// Rect returns the character's footprint
func (c CharacterDef) Rect() world.Rect {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return world.Rect{X: c.X, Y: c.Y, W: w, H: h}
}

// Zone returns the facing zone a character is talked to through
func (c CharacterDef) Zone() world.Zone {
	return world.Zone{
		Name:    c.Name,
		Bounds:  c.Rect(),
		Trigger: world.TriggerFacing,
		Payload: world.Payload{
			Title:     c.Name,
			Content:   c.Dialogue,
			Character: true,
		},
	}
}
