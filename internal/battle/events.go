package battle

import (
	"github.com/samdwyer/lowlymage/internal/combat"
	"github.com/samdwyer/lowlymage/internal/entity"
)

// Listener receives the session's outbound events, in order, synchronously.
type Listener interface {
	TurnResolved(outcome combat.TurnOutcome)
	// EnemyDefeated is called with the next enemy, or nil when the queue is exhausted.
	EnemyDefeated(next *entity.Enemy)
	Victory()
	Defeat()
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) TurnResolved(combat.TurnOutcome) {}
func (NopListener) EnemyDefeated(*entity.Enemy)     {}
func (NopListener) Victory()                        {}
func (NopListener) Defeat()                         {}

// ListenerFuncs adapts optional callbacks to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnTurnResolved  func(combat.TurnOutcome)
	OnEnemyDefeated func(*entity.Enemy)
	OnVictory       func()
	OnDefeat        func()
}

func (l ListenerFuncs) TurnResolved(o combat.TurnOutcome) {
	if l.OnTurnResolved != nil {
		l.OnTurnResolved(o)
	}
}

func (l ListenerFuncs) EnemyDefeated(next *entity.Enemy) {
	if l.OnEnemyDefeated != nil {
		l.OnEnemyDefeated(next)
	}
}

func (l ListenerFuncs) Victory() {
	if l.OnVictory != nil {
		l.OnVictory()
	}
}

func (l ListenerFuncs) Defeat() {
	if l.OnDefeat != nil {
		l.OnDefeat()
	}
}
