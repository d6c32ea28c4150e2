package rules

import (
	"fmt"

	"github.com/samdwyer/lowlymage/internal/entity"
	"github.com/samdwyer/lowlymage/internal/gamedata"
)

// HintBook holds the compiled menu hints.
type HintBook struct {
	hints []compiledHint
}

type compiledHint struct {
	def  gamedata.HintDef
	cond *Condition
}

// NewHintBook compiles every hint condition. A hint that fails to compile is an error.
func NewHintBook(registry *Registry, defs []gamedata.HintDef) (*HintBook, error) {
	book := &HintBook{hints: make([]compiledHint, 0, len(defs))}
	for _, def := range defs {
		cond, err := registry.Compile(def.When)
		if err != nil {
			return nil, fmt.Errorf("hint for %s: %w", def.Action, err)
		}
		book.hints = append(book.hints, compiledHint{def: def, cond: cond})
	}
	return book, nil
}

// LoadHintBook compiles the embedded hints.yaml.
func LoadHintBook() (*HintBook, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}
	defs, err := gamedata.LoadHints()
	if err != nil {
		return nil, err
	}
	return NewHintBook(registry, defs)
}

// Lookup returns the first hint for action in menu whose condition holds.
func (b *HintBook) Lookup(menu gamedata.MenuKind, action string, player *entity.Player, enemy *entity.Enemy) (gamedata.HintDef, bool, error) {
	var vars map[string]any
	for _, h := range b.hints {
		if h.def.Menu != menu || h.def.Action != action {
			continue
		}
		if vars == nil {
			vars = Vars(player, enemy)
		}
		ok, err := h.cond.Holds(vars)
		if err != nil {
			return gamedata.HintDef{}, false, err
		}
		if ok {
			return h.def, true, nil
		}
	}
	return gamedata.HintDef{}, false, nil
}

// Text returns the hint text for action, or "" when none applies.
// Evaluation errors also yield "".
func (b *HintBook) Text(menu gamedata.MenuKind, action string, player *entity.Player, enemy *entity.Enemy) string {
	h, ok, err := b.Lookup(menu, action, player, enemy)
	if err != nil || !ok {
		return ""
	}
	return h.Text
}

// Count returns the number of compiled hints.
func (b *HintBook) Count() int { return len(b.hints) }
