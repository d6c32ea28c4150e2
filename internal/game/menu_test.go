package game

import (
	"testing"
	"time"

	"github.com/samdwyer/lowlymage/internal/combat"
	"github.com/samdwyer/lowlymage/internal/gamedata"
)

func TestMenuWrapsAndRemembersSelection(t *testing.T) {
	m := NewMenu(2, 2)

	if m.Kind() != gamedata.MenuAttacks || m.Intent() != combat.Attack(0) {
		t.Fatalf("Expected attacks menu on Attack(0), got %s %s", m.Kind(), m.Intent())
	}

	m.Up()
	if m.Selected() != 1 {
		t.Errorf("Up from the top should wrap to 1, got %d", m.Selected())
	}
	m.Down()
	if m.Selected() != 0 {
		t.Errorf("Down from the bottom should wrap to 0, got %d", m.Selected())
	}

	m.Down()
	m.Toggle()
	if m.Kind() != gamedata.MenuPotions || m.Intent() != combat.Potion(0) {
		t.Errorf("Expected potions menu on Potion(0), got %s %s", m.Kind(), m.Intent())
	}
	m.Toggle()
	if m.Intent() != combat.Attack(1) {
		t.Errorf("Attack selection should survive a toggle, got %s", m.Intent())
	}

	m.Reset()
	if m.Kind() != gamedata.MenuAttacks || m.Selected() != 0 {
		t.Error("Reset should return to the first attack")
	}
}

func TestMenuEmptyList(t *testing.T) {
	m := NewMenu(0, 0)
	m.Down()
	m.Up()
	if m.Selected() != 0 {
		t.Errorf("empty menu moved to %d", m.Selected())
	}
}

func TestTitleChoiceToggle(t *testing.T) {
	if ChoicePlay.Toggle() != ChoiceQuit || ChoiceQuit.Toggle() != ChoicePlay {
		t.Error("Toggle should alternate Play and Quit")
	}
}

func TestPacerSkipsZeroDelays(t *testing.T) {
	calls := 0
	p := Pacer{Sleep: func(time.Duration) { calls++ }}
	p.AfterAttack()
	p.AfterEnemy()
	if calls != 0 {
		t.Errorf("zero delays slept %d times", calls)
	}
}
