package gamedata

import (
	"fmt"

	"github.com/samdwyer/lowlymage/internal/apperrors"
)

// =============================================================================
// ACTION CATALOG
// =============================================================================
//
// The player has two menus during a battle: attacks and potions. Both are
// static, read-only tables loaded from YAML and addressed by menu index.
//
// attacks.yaml:
// -------------
// attacks:
//   - name: Fireball
//     damage: 50
//     manaCost: 25
//     damageClass: magic
//
// potions.yaml:
// -------------
// potions:
//   - name: Mana Potion
//     restore: 25
//     resource: mana
//
// Turn Rules:
// -----------
// - An attack the player cannot afford is rejected with no state change.
// - A successful attack consumes the turn; the enemy then acts.
// - A potion never consumes the turn. An empty potion slot is rejected.
//
// Telemetry:
// ----------
// - battle.turn: intent, action, turn_consumed, damage dealt/taken, rejection

// DamageClass represents how an attack delivers its damage.
type DamageClass string

const (
	DamagePhysical DamageClass = "physical"
	DamageMagic    DamageClass = "magic"
)

// Resource is a restorable player resource.
type Resource string

const (
	ResourceHealth Resource = "health"
	ResourceMana   Resource = "mana"
)

// Valid reports whether r is a known resource.
func (r Resource) Valid() bool {
	return r == ResourceHealth || r == ResourceMana
}

// AttackDef defines an attack loaded from YAML.
type AttackDef struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Damage      int         `yaml:"damage"`
	ManaCost    int         `yaml:"manaCost"`
	DamageClass DamageClass `yaml:"damageClass"`
}

// PotionDef defines a potion loaded from YAML.
type PotionDef struct {
	Name     string   `yaml:"name"`
	Restore  int      `yaml:"restore"`
	Resource Resource `yaml:"resource"`
}

// AttacksFile represents the structure of attacks.yaml.
type AttacksFile struct {
	Attacks []AttackDef `yaml:"attacks"`
}

// PotionsFile represents the structure of potions.yaml.
type PotionsFile struct {
	Potions []PotionDef `yaml:"potions"`
}

// LoadAttacks loads attack definitions from the embedded attacks.yaml file.
func LoadAttacks() ([]AttackDef, error) {
	file, err := Load[AttacksFile]("attacks.yaml")
	if err != nil {
		return nil, err
	}
	for _, a := range file.Attacks {
		if a.Damage < 0 || a.ManaCost < 0 {
			return nil, fmt.Errorf("attack %q: %w", a.Name,
				apperrors.New(apperrors.CodeInvalidArgument, "damage and mana cost must be non-negative"))
		}
		if a.DamageClass != DamagePhysical && a.DamageClass != DamageMagic {
			return nil, fmt.Errorf("attack %q: %w", a.Name,
				apperrors.Newf(apperrors.CodeInvalidArgument, "unknown damage class %q", a.DamageClass))
		}
	}
	return file.Attacks, nil
}

// LoadPotions loads potion definitions from the embedded potions.yaml file.
func LoadPotions() ([]PotionDef, error) {
	file, err := Load[PotionsFile]("potions.yaml")
	if err != nil {
		return nil, err
	}
	for _, p := range file.Potions {
		if p.Restore < 0 {
			return nil, fmt.Errorf("potion %q: %w", p.Name,
				apperrors.New(apperrors.CodeInvalidArgument, "restore amount must be non-negative"))
		}
		if !p.Resource.Valid() {
			return nil, fmt.Errorf("potion %q: %w", p.Name,
				apperrors.Newf(apperrors.CodeInvalidArgument, "unknown resource %q", p.Resource))
		}
	}
	return file.Potions, nil
}
