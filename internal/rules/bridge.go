package rules

import "github.com/samdwyer/lowlymage/internal/entity"

// PlayerVars exposes the player to CEL expressions as the "player" map.
func PlayerVars(p *entity.Player) map[string]any {
	return map[string]any{
		"health":         int64(p.Health),
		"max_health":     int64(p.MaxHealth),
		"mana":           int64(p.Mana),
		"max_mana":       int64(p.MaxMana),
		"gold":           int64(p.Gold),
		"health_potions": int64(p.HealthPotions),
		"mana_potions":   int64(p.ManaPotions),
		"has_fireball":   p.HasFireball,
		"last_action":    p.LastAction,
	}
}

// EnemyVars exposes an enemy to CEL expressions as the "enemy" map.
func EnemyVars(e *entity.Enemy) map[string]any {
	if e == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":       e.Name,
		"health":     int64(e.Health),
		"max_health": int64(e.MaxHealth),
		"damage":     int64(e.BaseDamage),
		"behavior":   string(e.Behavior),
	}
}

// Vars builds the full activation for a battle condition.
func Vars(p *entity.Player, e *entity.Enemy) map[string]any {
	return map[string]any{
		"player": PlayerVars(p),
		"enemy":  EnemyVars(e),
	}
}
