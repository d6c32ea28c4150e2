// Package combat provides the turn resolution rules and the enemy AI.
package combat

import (
	"fmt"

	"github.com/samdwyer/lowlymage/internal/apperrors"
	"github.com/samdwyer/lowlymage/internal/entity"
	"github.com/samdwyer/lowlymage/internal/gamedata"
)

// TurnOutcome contains the result of resolving one player intent.
type TurnOutcome struct {
	Intent Intent
	Action string // Name of the attack or potion selected

	EnemyDamageDealt int  // Damage the player's attack removed from the enemy
	ManaSpent        int  // Mana paid for the attack
	TurnConsumed     bool // True only for an attack that went through
	PotionConsumed   bool // True when a potion was drunk
	Restored         int  // Amount a potion actually restored

	// Rejection is CodeInsufficientResource when the intent was refused for
	// lack of mana or potions. Empty otherwise.
	Rejection apperrors.Code

	EnemyDefeated     bool     // Enemy reached zero health this cycle
	EnemyActed        bool     // The decision policy ran
	Decision          Decision // What the policy chose, if it ran
	PlayerDamageTaken int      // Damage actually removed from the player
	EnemyHealed       int      // Health actually restored to the enemy

	Message string // Human-readable description
}

// Rejected reports whether the intent was refused without effect.
func (o TurnOutcome) Rejected() bool {
	return o.Rejection != ""
}

// Resolver applies player intents and, when the turn is consumed, the enemy's reply.
type Resolver struct {
	attacks *gamedata.AttackCatalog
	potions *gamedata.PotionCatalog
	policy  Decider
}

// NewResolver creates a new turn resolver.
func NewResolver(attacks *gamedata.AttackCatalog, potions *gamedata.PotionCatalog, policy Decider) *Resolver {
	return &Resolver{
		attacks: attacks,
		potions: potions,
		policy:  policy,
	}
}

// Resolve applies intent to the player and enemy. Catalog lookup failures are
// returned as errors. Unaffordable attacks and empty potion slots are not
// errors: they return a rejected outcome and leave all state untouched.
func (r *Resolver) Resolve(intent Intent, player *entity.Player, enemy *entity.Enemy) (TurnOutcome, error) {
	switch intent.Kind {
	case IntentAttack:
		return r.resolveAttack(intent, player, enemy)
	case IntentPotion:
		return r.resolvePotion(intent, player)
	default:
		return TurnOutcome{}, apperrors.Newf(apperrors.CodeInvalidArgument, "unknown intent kind %d", int(intent.Kind))
	}
}

// Attacks returns the attack catalog the resolver reads from.
func (r *Resolver) Attacks() *gamedata.AttackCatalog { return r.attacks }

// Potions returns the potion catalog the resolver reads from.
func (r *Resolver) Potions() *gamedata.PotionCatalog { return r.potions }

// CanUse checks if the player can afford an attack.
func (r *Resolver) CanUse(attack *gamedata.AttackDef, player *entity.Player) bool {
	if attack == nil {
		return false
	}
	return player.Mana >= attack.ManaCost
}

// CanDrink checks if the player has a potion of that kind left.
func (r *Resolver) CanDrink(potion *gamedata.PotionDef, player *entity.Player) bool {
	if potion == nil {
		return false
	}
	return player.PotionCount(potion.Resource) > 0
}

// resolveAttack handles attack intents.
func (r *Resolver) resolveAttack(intent Intent, player *entity.Player, enemy *entity.Enemy) (TurnOutcome, error) {
	attack, err := r.attacks.Resolve(intent.Index)
	if err != nil {
		return TurnOutcome{}, fmt.Errorf("resolve %s: %w", intent, err)
	}

	out := TurnOutcome{Intent: intent, Action: attack.Name}

	if !r.CanUse(attack, player) {
		out.Rejection = apperrors.CodeInsufficientResource
		out.Message = player.Name + " doesn't have enough mana for " + attack.Name + "!"
		return out, nil
	}

	if _, err := player.SpendMana(attack.ManaCost); err != nil {
		return TurnOutcome{}, fmt.Errorf("resolve %s: %w", intent, err)
	}
	dealt, err := enemy.ApplyDamage(attack.Damage)
	if err != nil {
		return TurnOutcome{}, fmt.Errorf("resolve %s: %w", intent, err)
	}
	player.LastAction = attack.Name

	out.ManaSpent = attack.ManaCost
	out.EnemyDamageDealt = dealt
	out.TurnConsumed = true
	out.Message = fmt.Sprintf("%s uses %s! %s takes %d damage!", player.Name, attack.Name, enemy.Name, dealt)

	if err := r.enemyTurn(&out, player, enemy); err != nil {
		return out, fmt.Errorf("resolve %s: %w", intent, err)
	}
	return out, nil
}

// resolvePotion handles potion intents. Potions never consume the turn.
func (r *Resolver) resolvePotion(intent Intent, player *entity.Player) (TurnOutcome, error) {
	potion, err := r.potions.Resolve(intent.Index)
	if err != nil {
		return TurnOutcome{}, fmt.Errorf("resolve %s: %w", intent, err)
	}

	out := TurnOutcome{Intent: intent, Action: potion.Name}

	if !r.CanDrink(potion, player) {
		out.Rejection = apperrors.CodeInsufficientResource
		out.Message = "No " + potion.Name + "s left!"
		return out, nil
	}

	restored, err := player.Restore(potion.Resource, potion.Restore)
	if err != nil {
		return TurnOutcome{}, fmt.Errorf("resolve %s: %w", intent, err)
	}
	player.ConsumePotion(potion.Resource)

	out.PotionConsumed = true
	out.Restored = restored
	out.Message = fmt.Sprintf("%s drinks a %s and restores %d %s.", player.Name, potion.Name, restored, potion.Resource)
	return out, nil
}

// enemyTurn lets a surviving enemy act and applies its decision.
func (r *Resolver) enemyTurn(out *TurnOutcome, player *entity.Player, enemy *entity.Enemy) error {
	if enemy.IsDefeated() {
		out.EnemyDefeated = true
		out.Message += " " + enemy.Name + " is defeated!"
		return nil
	}

	d := r.policy.Decide(enemy, player)
	out.EnemyActed = true
	out.Decision = d

	taken, err := player.ApplyDamage(d.Damage)
	if err != nil {
		return err
	}
	healed, err := enemy.Heal(d.SelfHeal)
	if err != nil {
		return err
	}
	out.PlayerDamageTaken = taken
	out.EnemyHealed = healed

	switch {
	case d.SelfHeal > 0:
		out.Message += fmt.Sprintf(" %s recovers %d health.", enemy.Name, healed)
	case taken > 0:
		out.Message += fmt.Sprintf(" %s hits back for %d!", enemy.Name, taken)
	default:
		out.Message += " " + enemy.Name + " misses!"
	}
	return nil
}
