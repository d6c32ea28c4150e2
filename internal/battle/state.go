// Package battle runs a fight between the mage and a queue of enemies.
package battle

// State is a battle session state.
type State string

const (
	// StateIdle is the state before the first Start.
	StateIdle State = "idle"
	// StateAwaitingIntent waits for the player's next intent against the current enemy.
	StateAwaitingIntent State = "awaiting_intent"
	// StateEnemyDefeated is passed through when the current enemy falls.
	StateEnemyDefeated State = "enemy_defeated"
	// StatePlayerDefeated is passed through when the player falls.
	StatePlayerDefeated State = "player_defeated"
	// StateVictory is terminal: every enemy in the queue is defeated.
	StateVictory State = "victory"
	// StateDefeat is terminal: the player is defeated.
	StateDefeat State = "defeat"
)

// Terminal reports whether the state ends a session.
func (s State) Terminal() bool {
	return s == StateVictory || s == StateDefeat
}

func (s State) String() string { return string(s) }

const (
	eventStart       = "start"
	eventDefeatEnemy = "defeat_enemy"
	eventAdvance     = "advance"
	eventWin         = "win"
	eventLose        = "lose"
	eventConclude    = "conclude"
)
