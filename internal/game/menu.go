package game

import (
	"github.com/samdwyer/lowlymage/internal/combat"
	"github.com/samdwyer/lowlymage/internal/gamedata"
)

// Menu is the battle action menu: two lists, one visible at a time, each
// remembering its own selection.
type Menu struct {
	kind     gamedata.MenuKind
	sizes    map[gamedata.MenuKind]int
	selected map[gamedata.MenuKind]int
}

// NewMenu creates a menu showing attacks first.
func NewMenu(attackCount, potionCount int) *Menu {
	return &Menu{
		kind: gamedata.MenuAttacks,
		sizes: map[gamedata.MenuKind]int{
			gamedata.MenuAttacks: attackCount,
			gamedata.MenuPotions: potionCount,
		},
		selected: map[gamedata.MenuKind]int{},
	}
}

// Kind returns the visible list.
func (m *Menu) Kind() gamedata.MenuKind { return m.kind }

// Selected returns the highlighted index in the visible list.
func (m *Menu) Selected() int { return m.selected[m.kind] }

// Toggle switches between attacks and potions.
func (m *Menu) Toggle() {
	if m.kind == gamedata.MenuAttacks {
		m.kind = gamedata.MenuPotions
	} else {
		m.kind = gamedata.MenuAttacks
	}
}

// Up moves the highlight up, wrapping to the bottom.
func (m *Menu) Up() { m.move(-1) }

// Down moves the highlight down, wrapping to the top.
func (m *Menu) Down() { m.move(1) }

func (m *Menu) move(delta int) {
	n := m.sizes[m.kind]
	if n == 0 {
		return
	}
	m.selected[m.kind] = (m.selected[m.kind] + delta + n) % n
}

// Reset shows attacks with both highlights on the first entry.
func (m *Menu) Reset() {
	m.kind = gamedata.MenuAttacks
	m.selected = map[gamedata.MenuKind]int{}
}

// Intent returns the intent for the highlighted entry.
func (m *Menu) Intent() combat.Intent {
	if m.kind == gamedata.MenuPotions {
		return combat.Potion(m.Selected())
	}
	return combat.Attack(m.Selected())
}
