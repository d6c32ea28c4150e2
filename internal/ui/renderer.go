package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lowlymage/internal/entity"
)

const (
	barWidth   = 20
	titleText  = "Struggle of a Lowly Mage"
	footerText = "Tab: switch menu  Up/Down: select  Enter: confirm  Esc: quit"
)

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleHint     = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	styleHealth   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMana     = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	styleVictory  = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleDefeat   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// MenuEntry is one line of the battle menu.
type MenuEntry struct {
	Label    string
	Hint     string
	Selected bool
	Disabled bool
}

// BattleView is everything the battle screen shows.
type BattleView struct {
	Player     *entity.Player
	Enemy      *entity.Enemy
	EnemyIndex int
	EnemyCount int
	MenuTitle  string
	Entries    []MenuEntry
	Message    string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderTitle draws the title screen with playSelected choosing the highlight.
func (r *Renderer) RenderTitle(playSelected bool) {
	r.screen.Clear()
	w, h := r.screen.Size()
	y := h/2 - 2

	r.centered(w, y, titleText, styleTitle)

	play, quit := "  Play  ", "  Quit  "
	playStyle, quitStyle := styleText, styleText
	if playSelected {
		playStyle = styleSelected
	} else {
		quitStyle = styleSelected
	}
	x := (w - len(play) - len(quit) - 4) / 2
	x = r.screen.DrawText(x, y+3, play, playStyle)
	r.screen.DrawText(x+4, y+3, quit, quitStyle)

	r.centered(w, y+5, "Left/Right: choose  Enter: confirm", styleDim)
	r.screen.Show()
}

// RenderBattle draws the battle screen.
func (r *Renderer) RenderBattle(v BattleView) {
	r.screen.Clear()
	w, h := r.screen.Size()

	p := v.Player
	r.screen.DrawText(2, 1, p.Name, styleTitle)
	r.bar(2, 2, "HP", p.Health, p.MaxHealth, p.HealthFraction(), styleHealth)
	r.bar(2, 3, "MP", p.Mana, p.MaxMana, p.ManaFraction(), styleMana)
	r.screen.DrawText(2, 4, fmt.Sprintf("Gold: %d", p.Gold), styleDim)

	if e := v.Enemy; e != nil {
		x := w / 2
		enemyStyle := tcell.StyleDefault.Foreground(e.Color()).Bold(true)
		next := r.screen.DrawText(x, 1, string(e.Symbol())+" ", enemyStyle)
		r.screen.DrawText(next, 1, fmt.Sprintf("%s (%d/%d)", e.Name, v.EnemyIndex+1, v.EnemyCount), enemyStyle)
		r.bar(x, 2, "HP", e.Health, e.MaxHealth, e.HealthFraction(), styleHealth)
		r.screen.DrawText(x, 3, "Behavior: "+string(e.Behavior), styleDim)
	}

	r.screen.DrawText(2, 6, v.MenuTitle, styleTitle)
	for i, entry := range v.Entries {
		style := styleText
		switch {
		case entry.Selected:
			style = styleSelected
		case entry.Disabled:
			style = styleDim
		}
		next := r.screen.DrawText(4, 7+i, entry.Label, style)
		if entry.Hint != "" {
			r.screen.DrawText(next+1, 7+i, entry.Hint, styleHint)
		}
	}

	r.RenderMessage(v.Message, h-3)
	r.screen.DrawText(0, h-1, footerText, styleDim)
	r.screen.Show()
}

// RenderEnd draws the victory or game over screen.
func (r *Renderer) RenderEnd(victory bool, message string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	y := h/2 - 1

	if victory {
		r.centered(w, y, "VICTORY!", styleVictory)
	} else {
		r.centered(w, y, "GAME OVER", styleDefeat)
	}
	r.centered(w, y+2, message, styleText)
	r.centered(w, y+4, "Press any key to return to the title screen", styleDim)
	r.screen.Show()
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(2, y, msg, styleText)
}

func (r *Renderer) centered(w, y int, text string, style tcell.Style) {
	x := (w - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	r.screen.DrawText(x, y, text, style)
}

// bar draws "HP [#####.....] 50/100". frac is expected in [0,1].
func (r *Renderer) bar(x, y int, label string, cur, max int, frac float64, style tcell.Style) {
	filled := int(math.Round(frac * barWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	x = r.screen.DrawText(x, y, label+" [", styleText)
	x = r.screen.DrawText(x, y, strings.Repeat("#", filled), style)
	x = r.screen.DrawText(x, y, strings.Repeat(".", barWidth-filled), styleDim)
	r.screen.DrawText(x, y, fmt.Sprintf("] %d/%d", cur, max), styleText)
}
