package battle

import (
	"errors"

	"github.com/samdwyer/lowlymage/internal/combat"
	"github.com/samdwyer/lowlymage/internal/entity"
	"github.com/samdwyer/lowlymage/internal/gamedata"
)

// EncounterSize is the number of enemies fought per session.
const EncounterSize = 3

// GenerateEncounter draws EncounterSize enemies: a species, then a behavior
// from that species' pool, each uniformly.
func GenerateEncounter(species *gamedata.SpeciesRegistry, rng combat.Source) ([]*entity.Enemy, error) {
	enemies := make([]*entity.Enemy, 0, EncounterSize)
	for i := 0; i < EncounterSize; i++ {
		def := species.SpawnRandom(rng)
		if def == nil {
			return nil, errors.New("species registry is empty")
		}
		enemies = append(enemies, entity.NewEnemyFromDef(def, def.RandomBehavior(rng)))
	}
	return enemies, nil
}
