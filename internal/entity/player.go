// Package entity provides the combatants: the player's mage and the enemies.
package entity

import (
	"strconv"

	"github.com/samdwyer/lowlymage/internal/apperrors"
	"github.com/samdwyer/lowlymage/internal/gamedata"
)

// Player is the mage controlled by the user.
type Player struct {
	Name string

	Health, MaxHealth int
	Mana, MaxMana     int
	Gold              int

	HealthPotions int
	ManaPotions   int
	HasFireball   bool

	// LastAction is the name of the last attack used, read by tactical enemies.
	// Empty until the first attack lands.
	LastAction string
}

// NewPlayer creates a player at full health and mana from a template.
func NewPlayer(tmpl gamedata.PlayerTemplate) *Player {
	return &Player{
		Name:          tmpl.Name,
		Health:        tmpl.MaxHealth,
		MaxHealth:     tmpl.MaxHealth,
		Mana:          tmpl.MaxMana,
		MaxMana:       tmpl.MaxMana,
		Gold:          tmpl.Gold,
		HealthPotions: tmpl.HealthPotions,
		ManaPotions:   tmpl.ManaPotions,
		HasFireball:   tmpl.HasFireball,
	}
}

// IsDefeated returns true once health reaches zero.
func (p *Player) IsDefeated() bool { return p.Health <= 0 }

// ApplyDamage reduces health, never below zero, and returns the actual damage taken.
func (p *Player) ApplyDamage(amount int) (int, error) {
	if amount < 0 {
		return 0, negativeAmount("damage", amount)
	}
	actual := amount
	if actual > p.Health {
		actual = p.Health
	}
	p.Health -= actual
	return actual, nil
}

// Restore refills health or mana, capped at the respective maximum, and
// returns the amount actually restored.
func (p *Player) Restore(resource gamedata.Resource, amount int) (int, error) {
	if amount < 0 {
		return 0, negativeAmount(string(resource), amount)
	}
	switch resource {
	case gamedata.ResourceHealth:
		return restore(&p.Health, p.MaxHealth, amount), nil
	case gamedata.ResourceMana:
		return restore(&p.Mana, p.MaxMana, amount), nil
	default:
		return 0, apperrors.Newf(apperrors.CodeInvalidArgument, "unknown resource %q", resource)
	}
}

// SpendMana deducts mana and returns false, changing nothing, if there is not enough.
func (p *Player) SpendMana(amount int) (bool, error) {
	if amount < 0 {
		return false, negativeAmount("mana cost", amount)
	}
	if p.Mana < amount {
		return false, nil
	}
	p.Mana -= amount
	return true, nil
}

// PotionCount returns how many potions of the given resource remain.
func (p *Player) PotionCount(resource gamedata.Resource) int {
	switch resource {
	case gamedata.ResourceHealth:
		return p.HealthPotions
	case gamedata.ResourceMana:
		return p.ManaPotions
	default:
		return 0
	}
}

// ConsumePotion removes one potion of the given resource. It returns false if none are left.
func (p *Player) ConsumePotion(resource gamedata.Resource) bool {
	switch resource {
	case gamedata.ResourceHealth:
		if p.HealthPotions == 0 {
			return false
		}
		p.HealthPotions--
	case gamedata.ResourceMana:
		if p.ManaPotions == 0 {
			return false
		}
		p.ManaPotions--
	default:
		return false
	}
	return true
}

// ResetVitals restores health and mana to their maximums.
// Inventory, gold and LastAction carry over.
func (p *Player) ResetVitals() {
	p.Health = p.MaxHealth
	p.Mana = p.MaxMana
}

// HealthFraction returns current health as a fraction of MaxHealth in [0,1].
func (p *Player) HealthFraction() float64 { return fraction(p.Health, p.MaxHealth) }

// ManaFraction returns current mana as a fraction of MaxMana in [0,1].
func (p *Player) ManaFraction() float64 { return fraction(p.Mana, p.MaxMana) }

// Snapshot returns a value copy for before/after comparisons.
func (p *Player) Snapshot() Player {
	return *p
}

// restore adds amount to *cur without exceeding max and returns the delta.
func restore(cur *int, max, amount int) int {
	actual := amount
	if *cur+actual > max {
		actual = max - *cur
	}
	if actual < 0 {
		actual = 0
	}
	*cur += actual
	return actual
}

func fraction(cur, max int) float64 {
	if max <= 0 || cur <= 0 {
		return 0
	}
	if cur >= max {
		return 1
	}
	return float64(cur) / float64(max)
}

func negativeAmount(what string, amount int) error {
	return apperrors.Newf(apperrors.CodeInvalidArgument, "%s amount must be non-negative", what).
		WithMetadata("amount", strconv.Itoa(amount))
}
