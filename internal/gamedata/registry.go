package gamedata

import (
	"errors"

	"github.com/samdwyer/lowlymage/internal/apperrors"
)

// SpeciesRegistry holds loaded species definitions and provides spawning utilities.
type SpeciesRegistry struct {
	species     []SpeciesDef
	totalWeight int
}

// NewSpeciesRegistry creates a registry from loaded species definitions.
func NewSpeciesRegistry(species []SpeciesDef) *SpeciesRegistry {
	totalWeight := 0
	for _, s := range species {
		totalWeight += s.SpawnWeight
	}
	return &SpeciesRegistry{
		species:     species,
		totalWeight: totalWeight,
	}
}

// LoadSpeciesRegistry loads and creates a registry from the embedded species.yaml.
func LoadSpeciesRegistry() (*SpeciesRegistry, error) {
	species, err := LoadSpecies()
	if err != nil {
		return nil, err
	}
	if len(species) == 0 {
		return nil, errors.New("no species loaded from species.yaml")
	}
	return NewSpeciesRegistry(species), nil
}

// MustLoadSpeciesRegistry loads a registry, panicking on error.
func MustLoadSpeciesRegistry() *SpeciesRegistry {
	registry, err := LoadSpeciesRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a species using weighted probability.
// With equal weights the draw is uniform.
func (r *SpeciesRegistry) SpawnRandom(rng Intner) *SpeciesDef {
	if r.totalWeight <= 0 || len(r.species) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.species {
		cumulative += r.species[i].SpawnWeight
		if roll < cumulative {
			return &r.species[i]
		}
	}

	return &r.species[0]
}

// GetByID returns the species definition with the given ID, or nil if not found.
func (r *SpeciesRegistry) GetByID(id string) *SpeciesDef {
	for i := range r.species {
		if r.species[i].ID == id {
			return &r.species[i]
		}
	}
	return nil
}

// All returns all species definitions.
func (r *SpeciesRegistry) All() []SpeciesDef {
	return r.species
}

// Count returns the number of species in the registry.
func (r *SpeciesRegistry) Count() int {
	return len(r.species)
}

// =============================================================================
// Action catalogs
// =============================================================================

// AttackCatalog is the read-only attack menu.
type AttackCatalog struct {
	attacks []AttackDef
	byName  map[string]*AttackDef
}

// NewAttackCatalog creates a catalog from loaded attack definitions.
func NewAttackCatalog(attacks []AttackDef) *AttackCatalog {
	c := &AttackCatalog{
		attacks: attacks,
		byName:  make(map[string]*AttackDef, len(attacks)),
	}
	for i := range attacks {
		c.byName[attacks[i].Name] = &attacks[i]
	}
	return c
}

// LoadAttackCatalog loads the catalog from the embedded attacks.yaml.
func LoadAttackCatalog() (*AttackCatalog, error) {
	attacks, err := LoadAttacks()
	if err != nil {
		return nil, err
	}
	if len(attacks) == 0 {
		return nil, errors.New("no attacks loaded from attacks.yaml")
	}
	return NewAttackCatalog(attacks), nil
}

// MustLoadAttackCatalog loads the attack catalog, panicking on error.
func MustLoadAttackCatalog() *AttackCatalog {
	c, err := LoadAttackCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve returns the attack at the given menu index.
func (c *AttackCatalog) Resolve(index int) (*AttackDef, error) {
	if err := checkIndex("attack", index, len(c.attacks)); err != nil {
		return nil, err
	}
	return &c.attacks[index], nil
}

// ByName returns the attack with the given name, or nil if not found.
func (c *AttackCatalog) ByName(name string) *AttackDef {
	return c.byName[name]
}

// All returns all attack definitions in menu order.
func (c *AttackCatalog) All() []AttackDef {
	return c.attacks
}

// Count returns the number of attacks.
func (c *AttackCatalog) Count() int {
	return len(c.attacks)
}

// PotionCatalog is the read-only potion menu.
type PotionCatalog struct {
	potions []PotionDef
	byName  map[string]*PotionDef
}

// NewPotionCatalog creates a catalog from loaded potion definitions.
func NewPotionCatalog(potions []PotionDef) *PotionCatalog {
	c := &PotionCatalog{
		potions: potions,
		byName:  make(map[string]*PotionDef, len(potions)),
	}
	for i := range potions {
		c.byName[potions[i].Name] = &potions[i]
	}
	return c
}

// LoadPotionCatalog loads the catalog from the embedded potions.yaml.
func LoadPotionCatalog() (*PotionCatalog, error) {
	potions, err := LoadPotions()
	if err != nil {
		return nil, err
	}
	if len(potions) == 0 {
		return nil, errors.New("no potions loaded from potions.yaml")
	}
	return NewPotionCatalog(potions), nil
}

// MustLoadPotionCatalog loads the potion catalog, panicking on error.
func MustLoadPotionCatalog() *PotionCatalog {
	c, err := LoadPotionCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve returns the potion at the given menu index.
func (c *PotionCatalog) Resolve(index int) (*PotionDef, error) {
	if err := checkIndex("potion", index, len(c.potions)); err != nil {
		return nil, err
	}
	return &c.potions[index], nil
}

// ByName returns the potion with the given name, or nil if not found.
func (c *PotionCatalog) ByName(name string) *PotionDef {
	return c.byName[name]
}

// All returns all potion definitions in menu order.
func (c *PotionCatalog) All() []PotionDef {
	return c.potions
}

// Count returns the number of potions.
func (c *PotionCatalog) Count() int {
	return len(c.potions)
}

// checkIndex maps a bad menu index to the error taxonomy: negative indices are
// malformed, indices past the end name an action that does not exist.
func checkIndex(kind string, index, size int) error {
	if index < 0 {
		return apperrors.Newf(apperrors.CodeInvalidArgument, "%s index %d is negative", kind, index)
	}
	if index >= size {
		return apperrors.Newf(apperrors.CodeUnknownAction, "%s index %d out of range [0,%d)", kind, index, size)
	}
	return nil
}
