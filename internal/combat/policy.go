package combat

import (
	"github.com/samdwyer/lowlymage/internal/entity"
	"github.com/samdwyer/lowlymage/internal/gamedata"
)

// Decision is what an enemy does on its turn.
type Decision struct {
	Damage   int // Damage dealt to the player
	SelfHeal int // Health the enemy restores to itself, before clamping
}

// Decider picks an enemy's action.
type Decider interface {
	Decide(enemy *entity.Enemy, player *entity.Player) Decision
}

// Multipliers and thresholds in percent. Damage is scaled with integer
// arithmetic and truncated.
const (
	aggressiveLowHealthPct = 30
	aggressiveCritPct      = 150

	defensiveLowHealthPct = 40
	defensiveHealChance   = 0.5
	defensiveHealPct      = 30

	tacticalFireballName   = "Fireball"
	tacticalLowManaCutoff  = 20
	tacticalPressPct       = 120
	tacticalHalfHealthPct  = 50
	tacticalFinishPct      = 130
	tacticalPatienceTurns  = 2
	tacticalStrikePct      = 150
	tacticalGuardedPct     = 80

	recklessMissChance   = 0.3
	recklessBigHitChance = 0.2
	recklessBigHitPct    = 200
)

// Policy is the enemy decision policy. It is a function of the enemy, the
// player and the enemy's own TurnsSinceSpecial counter, which it advances on
// every call.
type Policy struct {
	rng Source
}

// NewPolicy creates a policy drawing its rolls from rng.
func NewPolicy(rng Source) *Policy {
	return &Policy{rng: rng}
}

// Decide returns the enemy's action for this turn.
func (p *Policy) Decide(enemy *entity.Enemy, player *entity.Player) Decision {
	enemy.TurnsSinceSpecial++
	base := enemy.BaseDamage

	switch enemy.Behavior {
	case gamedata.BehaviorAggressive:
		if below(player.Health, player.MaxHealth, aggressiveLowHealthPct) {
			return Decision{Damage: scale(base, aggressiveCritPct)}
		}
		return Decision{Damage: base}

	case gamedata.BehaviorDefensive:
		// The roll is only drawn when the enemy is hurt.
		if below(enemy.Health, enemy.MaxHealth, defensiveLowHealthPct) && p.rng.Float64() < defensiveHealChance {
			enemy.TurnsSinceSpecial = 0
			return Decision{SelfHeal: scale(enemy.MaxHealth, defensiveHealPct)}
		}
		return Decision{Damage: base}

	case gamedata.BehaviorTactical:
		switch {
		case player.LastAction == tacticalFireballName && player.Mana < tacticalLowManaCutoff:
			return Decision{Damage: scale(base, tacticalPressPct)}
		case below(player.Health, player.MaxHealth, tacticalHalfHealthPct):
			return Decision{Damage: scale(base, tacticalFinishPct)}
		case enemy.TurnsSinceSpecial > tacticalPatienceTurns:
			return Decision{Damage: scale(base, tacticalStrikePct)}
		default:
			return Decision{Damage: scale(base, tacticalGuardedPct)}
		}

	case gamedata.BehaviorReckless:
		// Two independent rolls: a miss check, then a big-hit check.
		if p.rng.Float64() < recklessMissChance {
			return Decision{}
		}
		if p.rng.Float64() < recklessBigHitChance {
			return Decision{Damage: scale(base, recklessBigHitPct)}
		}
		return Decision{Damage: base}

	default:
		return Decision{Damage: base}
	}
}

// below reports cur < max*pct/100 without rounding.
func below(cur, max, pct int) bool {
	return cur*100 < max*pct
}

// scale returns v*pct/100, truncated.
func scale(v, pct int) int {
	return v * pct / 100
}
