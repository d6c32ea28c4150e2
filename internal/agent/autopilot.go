// Package agent plays battles without a human at the keyboard.
package agent

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/lowlymage/internal/battle"
	"github.com/samdwyer/lowlymage/internal/combat"
	"github.com/samdwyer/lowlymage/internal/entity"
	"github.com/samdwyer/lowlymage/internal/gamedata"
	"github.com/samdwyer/lowlymage/internal/rules"
)

// DefaultMaxSteps bounds a single run so a stalemate cannot loop forever.
const DefaultMaxSteps = 500

// Autopilot picks intents the way a player following the menu hints would:
// drink a recommended potion, otherwise use the best affordable attack,
// avoiding attacks the hints call weak.
type Autopilot struct {
	attacks  *gamedata.AttackCatalog
	potions  *gamedata.PotionCatalog
	hints    *rules.HintBook
	log      logrus.FieldLogger
	MaxSteps int
}

// NewAutopilot creates an autopilot reading the same catalogs as the resolver.
func NewAutopilot(attacks *gamedata.AttackCatalog, potions *gamedata.PotionCatalog, hints *rules.HintBook, log logrus.FieldLogger) *Autopilot {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Autopilot{
		attacks:  attacks,
		potions:  potions,
		hints:    hints,
		log:      log,
		MaxSteps: DefaultMaxSteps,
	}
}

// Choose returns the intent for the current turn.
func (a *Autopilot) Choose(player *entity.Player, enemy *entity.Enemy) combat.Intent {
	for i, p := range a.potions.All() {
		if player.PotionCount(p.Resource) == 0 {
			continue
		}
		if a.tone(gamedata.MenuPotions, p.Name, player, enemy) == gamedata.ToneFavorable {
			return combat.Potion(i)
		}
	}

	best, bestScore := 0, -1
	for i, atk := range a.attacks.All() {
		if player.Mana < atk.ManaCost {
			continue
		}
		score := atk.Damage
		switch a.tone(gamedata.MenuAttacks, atk.Name, player, enemy) {
		case gamedata.ToneFavorable:
			score *= 4
		case gamedata.ToneUnfavorable:
			score /= 4
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return combat.Attack(best)
}

func (a *Autopilot) tone(menu gamedata.MenuKind, action string, player *entity.Player, enemy *entity.Enemy) gamedata.HintTone {
	h, ok, err := a.hints.Lookup(menu, action, player, enemy)
	if err != nil {
		a.log.WithError(err).WithField("action", action).Warn("Hint evaluation failed")
		return ""
	}
	if !ok {
		return ""
	}
	return h.Tone
}

// Play starts a new run on session and submits intents until it ends.
// It returns the terminal state.
func (a *Autopilot) Play(ctx context.Context, session *battle.Session) (battle.State, error) {
	if err := ctx.Err(); err != nil {
		return session.State(), err
	}
	if err := session.Start(ctx); err != nil {
		return session.State(), err
	}

	for step := 0; session.State() == battle.StateAwaitingIntent; step++ {
		if step >= a.MaxSteps {
			return session.State(), fmt.Errorf("run %s did not finish in %d steps", session.ID(), a.MaxSteps)
		}
		if err := ctx.Err(); err != nil {
			return session.State(), err
		}

		intent := a.Choose(session.Player(), session.CurrentEnemy())
		if _, err := session.Submit(ctx, intent); err != nil {
			return session.State(), fmt.Errorf("submit %s: %w", intent, err)
		}
	}
	return session.State(), nil
}
