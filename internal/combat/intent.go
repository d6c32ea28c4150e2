package combat

import "strconv"

// IntentKind is the menu an intent was chosen from.
type IntentKind int

const (
	// IntentAttack selects an entry of the attack catalog.
	IntentAttack IntentKind = iota
	// IntentPotion selects an entry of the potion catalog.
	IntentPotion
)

// String returns a human-readable kind name.
func (k IntentKind) String() string {
	switch k {
	case IntentAttack:
		return "attack"
	case IntentPotion:
		return "potion"
	default:
		return "unknown"
	}
}

// Intent is the player's choice for one step of the battle.
type Intent struct {
	Kind  IntentKind
	Index int
}

// Attack builds an attack intent for the given catalog index.
func Attack(index int) Intent { return Intent{Kind: IntentAttack, Index: index} }

// Potion builds a potion intent for the given catalog index.
func Potion(index int) Intent { return Intent{Kind: IntentPotion, Index: index} }

func (i Intent) String() string {
	return i.Kind.String() + "(" + strconv.Itoa(i.Index) + ")"
}
