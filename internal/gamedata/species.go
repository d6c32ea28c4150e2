package gamedata

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lowlymage/internal/apperrors"
)

// Behavior is an enemy's decision profile.
type Behavior string

const (
	BehaviorAggressive Behavior = "aggressive"
	BehaviorDefensive  Behavior = "defensive"
	BehaviorTactical   Behavior = "tactical"
	BehaviorReckless   Behavior = "reckless"
)

// Behaviors lists every known behavior in declaration order.
var Behaviors = []Behavior{BehaviorAggressive, BehaviorDefensive, BehaviorTactical, BehaviorReckless}

// Valid reports whether b is a known behavior.
func (b Behavior) Valid() bool {
	switch b {
	case BehaviorAggressive, BehaviorDefensive, BehaviorTactical, BehaviorReckless:
		return true
	default:
		return false
	}
}

// SpeciesDef defines an enemy species loaded from YAML.
type SpeciesDef struct {
	ID          string     `yaml:"id"`          // Unique identifier (e.g., "goblin")
	Name        string     `yaml:"name"`        // Display name (e.g., "Goblin")
	Glyph       string     `yaml:"glyph"`       // Single character for rendering (e.g., "g")
	Color       string     `yaml:"color"`       // Hex color code (e.g., "#00FF00")
	HP          int        `yaml:"hp"`          // Starting and maximum health
	Damage      int        `yaml:"damage"`      // Base damage per hit
	Behaviors   []Behavior `yaml:"behaviors"`   // Behavior pool, one is picked per spawn
	SpawnWeight int        `yaml:"spawnWeight"` // Relative spawn frequency
}

// GlyphRune returns the glyph as a rune for rendering.
func (s *SpeciesDef) GlyphRune() rune {
	if len(s.Glyph) == 0 {
		return '?'
	}
	return rune(s.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (s *SpeciesDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// RandomBehavior picks a behavior uniformly from the species pool.
func (s *SpeciesDef) RandomBehavior(rng Intner) Behavior {
	if len(s.Behaviors) == 0 {
		return BehaviorAggressive
	}
	return s.Behaviors[rng.Intn(len(s.Behaviors))]
}

// Intner is the slice of *rand.Rand used for table draws.
type Intner interface {
	Intn(n int) int
}

var _ Intner = (*rand.Rand)(nil)

// SpeciesFile represents the structure of species.yaml.
type SpeciesFile struct {
	Species []SpeciesDef `yaml:"species"`
}

// LoadSpecies loads species definitions from the embedded species.yaml file.
func LoadSpecies() ([]SpeciesDef, error) {
	file, err := Load[SpeciesFile]("species.yaml")
	if err != nil {
		return nil, err
	}
	for _, s := range file.Species {
		if s.HP <= 0 || s.Damage < 0 {
			return nil, fmt.Errorf("species %q: %w", s.ID,
				apperrors.New(apperrors.CodeInvalidArgument, "hp must be positive and damage non-negative"))
		}
		if _, err := ParseHexColor(s.Color); err != nil {
			return nil, fmt.Errorf("species %q: %w", s.ID,
				apperrors.New(apperrors.CodeInvalidArgument, err.Error()))
		}
		for _, b := range s.Behaviors {
			if !b.Valid() {
				return nil, fmt.Errorf("species %q: %w", s.ID,
					apperrors.Newf(apperrors.CodeInvalidArgument, "unknown behavior %q", b))
			}
		}
	}
	return file.Species, nil
}
