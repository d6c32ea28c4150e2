package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lowlymage/internal/gamedata"
)

// Enemy represents a hostile creature in the encounter queue.
type Enemy struct {
	Def        *gamedata.SpeciesDef // Species definition (nil for enemies built by hand)
	Name       string               // Species display name (e.g., "Goblin")
	Health     int                  // Current health
	MaxHealth  int                  // Maximum health
	BaseDamage int                  // Damage before behavior modifiers
	Behavior   gamedata.Behavior    // Decision profile

	// TurnsSinceSpecial counts decisions since the last heal. The decision
	// policy owns it.
	TurnsSinceSpecial int
}

// NewEnemy creates an enemy by hand, mostly for tests.
func NewEnemy(name string, health, baseDamage int, behavior gamedata.Behavior) *Enemy {
	return &Enemy{
		Name:       name,
		Health:     health,
		MaxHealth:  health,
		BaseDamage: baseDamage,
		Behavior:   behavior,
	}
}

// NewEnemyFromDef creates a full-health enemy of the given species and behavior.
func NewEnemyFromDef(def *gamedata.SpeciesDef, behavior gamedata.Behavior) *Enemy {
	return &Enemy{
		Def:        def,
		Name:       def.Name,
		Health:     def.HP,
		MaxHealth:  def.HP,
		BaseDamage: def.Damage,
		Behavior:   behavior,
	}
}

// IsDefeated returns true once health reaches zero.
func (e *Enemy) IsDefeated() bool { return e.Health <= 0 }

// ApplyDamage reduces health, never below zero, and returns the actual damage taken.
func (e *Enemy) ApplyDamage(amount int) (int, error) {
	if amount < 0 {
		return 0, negativeAmount("damage", amount)
	}
	actual := amount
	if actual > e.Health {
		actual = e.Health
	}
	e.Health -= actual
	return actual, nil
}

// Heal restores health up to MaxHealth and returns the actual amount healed.
func (e *Enemy) Heal(amount int) (int, error) {
	if amount < 0 {
		return 0, negativeAmount("heal", amount)
	}
	return restore(&e.Health, e.MaxHealth, amount), nil
}

// HealthFraction returns current health as a fraction of MaxHealth in [0,1].
func (e *Enemy) HealthFraction() float64 { return fraction(e.Health, e.MaxHealth) }

// Snapshot returns a value copy for before/after comparisons.
func (e *Enemy) Snapshot() Enemy {
	return *e
}

// Symbol returns the display glyph.
func (e *Enemy) Symbol() rune {
	if e.Def != nil {
		return e.Def.GlyphRune()
	}
	if e.Name != "" {
		return rune(e.Name[0])
	}
	return '?'
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorPurple
}
