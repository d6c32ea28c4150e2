package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lowlymage/internal/entity"
	"github.com/samdwyer/lowlymage/internal/gamedata"
)

func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := Wrap(sim)
	if err != nil {
		t.Fatalf("Wrap() error: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(s.Close)
	return s
}

// row reads back one line of the screen buffer.
func row(s *Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s *Screen) string {
	_, h := s.Size()
	lines := make([]string, h)
	for y := range lines {
		lines[y] = row(s, y)
	}
	return strings.Join(lines, "\n")
}

func TestRenderTitle(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s)

	r.RenderTitle(true)

	text := screenText(s)
	for _, want := range []string{titleText, "Play", "Quit"} {
		if !strings.Contains(text, want) {
			t.Errorf("title screen missing %q", want)
		}
	}
}

func TestRenderBattle(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s)
	player := &entity.Player{Name: "Mage", Health: 50, MaxHealth: 100, Mana: 25, MaxMana: 50}
	enemy := entity.NewEnemy("Goblin", 50, 10, gamedata.BehaviorReckless)
	enemy.Health = 10

	r.RenderBattle(BattleView{
		Player:     player,
		Enemy:      enemy,
		EnemyIndex: 1,
		EnemyCount: 3,
		MenuTitle:  "Attacks",
		Entries: []MenuEntry{
			{Label: "Staff Whack", Hint: "(Effective!)", Selected: true},
			{Label: "Fireball (25 MP)"},
		},
		Message: "A wild Goblin appears!",
	})

	if got := row(s, 2); !strings.Contains(got, "HP [##########..........] 50/100") {
		t.Errorf("player health bar = %q", got)
	}
	if got := row(s, 2); !strings.Contains(got, "HP [####................] 10/50") {
		t.Errorf("enemy health bar = %q", got)
	}
	if got := row(s, 3); !strings.Contains(got, "MP [##########..........] 25/50") {
		t.Errorf("player mana bar = %q", got)
	}
	text := screenText(s)
	for _, want := range []string{"Goblin (2/3)", "Behavior: reckless", "Staff Whack (Effective!)", "Fireball (25 MP)", "A wild Goblin appears!"} {
		if !strings.Contains(text, want) {
			t.Errorf("battle screen missing %q", want)
		}
	}
}

func TestRenderEnd(t *testing.T) {
	tests := []struct {
		victory bool
		want    string
	}{
		{true, "VICTORY!"},
		{false, "GAME OVER"},
	}

	for _, tt := range tests {
		s := newTestScreen(t)
		NewRenderer(s).RenderEnd(tt.victory, "done")

		if text := screenText(s); !strings.Contains(text, tt.want) {
			t.Errorf("RenderEnd(%v) missing %q", tt.victory, tt.want)
		}
	}
}
