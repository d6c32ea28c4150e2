// Package game provides the main game loop and screen routing.
package game

// Screen identifies what the game is currently showing.
type Screen int

const (
	// ScreenTitle offers Play and Quit.
	ScreenTitle Screen = iota
	// ScreenBattle is the fight against the current enemy.
	ScreenBattle
	// ScreenGameOver follows a defeat.
	ScreenGameOver
	// ScreenVictory follows clearing the encounter.
	ScreenVictory
)

// String returns a human-readable screen name.
func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenBattle:
		return "battle"
	case ScreenGameOver:
		return "game_over"
	case ScreenVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// TitleChoice is the highlighted title screen option.
type TitleChoice int

const (
	ChoicePlay TitleChoice = iota
	ChoiceQuit
)

// Toggle switches between Play and Quit.
func (c TitleChoice) Toggle() TitleChoice {
	if c == ChoicePlay {
		return ChoiceQuit
	}
	return ChoicePlay
}
