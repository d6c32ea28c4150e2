package gamedata

// MenuKind identifies one of the two battle menus.
type MenuKind string

const (
	MenuAttacks MenuKind = "attacks"
	MenuPotions MenuKind = "potions"
)

// HintTone says whether a hint recommends or discourages an action.
type HintTone string

const (
	ToneFavorable   HintTone = "favorable"
	ToneUnfavorable HintTone = "unfavorable"
)

// HintDef is a contextual annotation shown beside a highlighted menu entry.
// When is a CEL boolean expression over the variables "player" and "enemy".
type HintDef struct {
	Menu   MenuKind `yaml:"menu"`
	Action string   `yaml:"action"`
	Text   string   `yaml:"text"`
	Tone   HintTone `yaml:"tone"`
	When   string   `yaml:"when"`
}

// HintsFile represents the structure of hints.yaml.
type HintsFile struct {
	Hints []HintDef `yaml:"hints"`
}

// LoadHints loads hint definitions from the embedded hints.yaml file.
func LoadHints() ([]HintDef, error) {
	file, err := Load[HintsFile]("hints.yaml")
	if err != nil {
		return nil, err
	}
	return file.Hints, nil
}
