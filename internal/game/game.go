package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/lowlymage/internal/battle"
	"github.com/samdwyer/lowlymage/internal/combat"
	"github.com/samdwyer/lowlymage/internal/entity"
	"github.com/samdwyer/lowlymage/internal/gamedata"
	"github.com/samdwyer/lowlymage/internal/rules"
	"github.com/samdwyer/lowlymage/internal/telemetry"
	"github.com/samdwyer/lowlymage/internal/ui"
)

// Options configures New. Battle.Listener is overwritten by the game.
type Options struct {
	Battle battle.Options
	Hints  *rules.HintBook
	Pacer  Pacer
	Logger logrus.FieldLogger
}

// Game holds the entire game state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *battle.Session
	attacks  *gamedata.AttackCatalog
	potions  *gamedata.PotionCatalog
	hints    *rules.HintBook
	pacer    Pacer
	log      logrus.FieldLogger

	current Screen
	title   TitleChoice
	menu    *Menu
	message string
	running bool
}

// New creates a new game instance drawing to screen.
func New(screen *ui.Screen, opts Options) (*Game, error) {
	if opts.Battle.Resolver == nil {
		return nil, fmt.Errorf("game: battle resolver is required")
	}
	if opts.Hints == nil {
		return nil, fmt.Errorf("game: hint book is required")
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		attacks:  opts.Battle.Resolver.Attacks(),
		potions:  opts.Battle.Resolver.Potions(),
		hints:    opts.Hints,
		pacer:    opts.Pacer,
		log:      log,
		current:  ScreenTitle,
		title:    ChoicePlay,
		running:  true,
	}
	g.menu = NewMenu(g.attacks.Count(), g.potions.Count())

	battleOpts := opts.Battle
	battleOpts.Listener = g
	battleOpts.Logger = log
	g.session = battle.NewSession(battleOpts)
	return g, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("attacks", g.attacks.Count()),
		attribute.Int("potions", g.potions.Count()),
		attribute.Int("hints", g.hints.Count()),
	)
	initSpan.End()
	g.log.Info("Game started")

	for g.running {
		g.render()
		g.handleInput(ctx)
	}

	g.screen.Close()
	g.log.Info("Game closed")
	return nil
}

// Current returns the screen being shown.
func (g *Game) Current() Screen { return g.current }

// Running reports whether the main loop should continue.
func (g *Game) Running() bool { return g.running }

// Message returns the last battle message.
func (g *Game) Message() string { return g.message }

// Session returns the battle session.
func (g *Game) Session() *battle.Session { return g.session }

// Menu returns the battle menu.
func (g *Game) Menu() *Menu { return g.menu }

// TitleChoice returns the highlighted title option.
func (g *Game) TitleChoice() TitleChoice { return g.title }

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// handleKeyEvent processes keyboard input for the current screen.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		g.running = false
		return
	}

	switch g.current {
	case ScreenGameOver, ScreenVictory:
		g.current = ScreenTitle
		g.title = ChoicePlay
		return
	}

	if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
		g.running = false
		return
	}

	switch g.current {
	case ScreenTitle:
		g.handleTitleKey(ctx, ev)
	case ScreenBattle:
		g.handleBattleKey(ctx, ev)
	}
}

func (g *Game) handleTitleKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft, tcell.KeyRight:
		g.title = g.title.Toggle()
	case tcell.KeyEnter:
		if g.title == ChoiceQuit {
			g.running = false
			return
		}
		g.startBattle(ctx)
	}
}

func (g *Game) handleBattleKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyTab:
		g.menu.Toggle()
	case tcell.KeyUp:
		g.menu.Up()
	case tcell.KeyDown:
		g.menu.Down()
	case tcell.KeyEnter:
		g.submit(ctx)
	}
}

func (g *Game) startBattle(ctx context.Context) {
	if err := g.session.Start(ctx); err != nil {
		g.log.WithError(err).Error("Failed to start battle")
		g.message = "Could not start the battle: " + err.Error()
		return
	}
	g.menu.Reset()
	g.current = ScreenBattle
	g.message = "A wild " + g.session.CurrentEnemy().Name + " appears!"
}

// submit sends the highlighted entry to the session. Screen changes arrive
// through the listener methods below.
func (g *Game) submit(ctx context.Context) {
	intent := g.menu.Intent()
	out, err := g.session.Submit(ctx, intent)
	if err != nil {
		g.log.WithError(err).WithField("intent", intent.String()).Warn("Intent failed")
		g.message = err.Error()
		return
	}
	if !out.TurnConsumed {
		return
	}
	// The run is over and vitals are already reset; go straight to the end screen.
	if g.session.State().Terminal() {
		return
	}

	// Replay the resolved turn at reading speed
	g.renderBattle(fmt.Sprintf("%s uses %s!", g.session.Player().Name, out.Action))
	g.pacer.AfterAttack()
	g.render()
	if out.EnemyActed {
		g.pacer.AfterEnemy()
	}
}

// TurnResolved implements battle.Listener.
func (g *Game) TurnResolved(out combat.TurnOutcome) {
	g.message = out.Message
}

// EnemyDefeated implements battle.Listener.
func (g *Game) EnemyDefeated(next *entity.Enemy) {
	if next != nil {
		g.message += " A wild " + next.Name + " appears!"
	}
}

// Victory implements battle.Listener.
func (g *Game) Victory() {
	g.current = ScreenVictory
}

// Defeat implements battle.Listener.
func (g *Game) Defeat() {
	g.current = ScreenGameOver
}

func (g *Game) render() {
	switch g.current {
	case ScreenTitle:
		g.renderer.RenderTitle(g.title == ChoicePlay)
	case ScreenBattle:
		g.renderBattle(g.message)
	case ScreenVictory:
		g.renderer.RenderEnd(true, "The lowly mage has triumphed!")
	case ScreenGameOver:
		g.renderer.RenderEnd(false, "The lowly mage has fallen...")
	}
}

func (g *Game) renderBattle(message string) {
	g.renderer.RenderBattle(ui.BattleView{
		Player:     g.session.Player(),
		Enemy:      g.session.CurrentEnemy(),
		EnemyIndex: g.session.Index(),
		EnemyCount: len(g.session.Enemies()),
		MenuTitle:  g.menuTitle(),
		Entries:    g.menuEntries(),
		Message:    message,
	})
}

func (g *Game) menuTitle() string {
	if g.menu.Kind() == gamedata.MenuPotions {
		return "Potions"
	}
	return "Attacks"
}

// menuEntries builds the visible list with a hint beside the highlighted entry.
func (g *Game) menuEntries() []ui.MenuEntry {
	player, enemy := g.session.Player(), g.session.CurrentEnemy()
	selected := g.menu.Selected()

	var entries []ui.MenuEntry
	if g.menu.Kind() == gamedata.MenuPotions {
		for i, p := range g.potions.All() {
			entries = append(entries, ui.MenuEntry{
				Label:    fmt.Sprintf("%s x%d", p.Name, player.PotionCount(p.Resource)),
				Selected: i == selected,
				Disabled: player.PotionCount(p.Resource) == 0,
			})
		}
	} else {
		for i, a := range g.attacks.All() {
			label := a.Name
			if a.ManaCost > 0 {
				label = fmt.Sprintf("%s (%d MP)", a.Name, a.ManaCost)
			}
			entries = append(entries, ui.MenuEntry{
				Label:    label,
				Selected: i == selected,
				Disabled: player.Mana < a.ManaCost,
			})
		}
	}

	if selected < len(entries) {
		name := g.actionName(selected)
		entries[selected].Hint = g.hints.Text(g.menu.Kind(), name, player, enemy)
	}
	return entries
}

func (g *Game) actionName(index int) string {
	if g.menu.Kind() == gamedata.MenuPotions {
		return g.potions.All()[index].Name
	}
	return g.attacks.All()[index].Name
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
