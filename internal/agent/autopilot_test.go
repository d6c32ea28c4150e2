package agent

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/lowlymage/internal/battle"
	"github.com/samdwyer/lowlymage/internal/combat"
	"github.com/samdwyer/lowlymage/internal/entity"
	"github.com/samdwyer/lowlymage/internal/gamedata"
	"github.com/samdwyer/lowlymage/internal/rules"
)

func newAutopilot(t *testing.T) *Autopilot {
	t.Helper()
	hints, err := rules.LoadHintBook()
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()
	return NewAutopilot(gamedata.MustLoadAttackCatalog(), gamedata.MustLoadPotionCatalog(), hints, logger)
}

func TestChoose(t *testing.T) {
	pilot := newAutopilot(t)

	goblin := entity.NewEnemy("Goblin", 50, 10, gamedata.BehaviorAggressive)
	knight := entity.NewEnemy("Knight", 100, 25, gamedata.BehaviorDefensive)
	dragon := entity.NewEnemy("Dragon", 200, 75, gamedata.BehaviorTactical)

	tests := []struct {
		name          string
		health, mana  int
		healthPotions int
		manaPotions   int
		enemy         *entity.Enemy
		want          combat.Intent
	}{
		{"low health drinks", 20, 50, 1, 2, dragon, combat.Potion(0)},
		{"low health without potions attacks", 20, 50, 0, 2, dragon, combat.Attack(1)},
		{"low mana drinks", 100, 10, 3, 1, dragon, combat.Potion(1)},
		{"low mana without potions whacks", 100, 10, 3, 0, dragon, combat.Attack(0)},
		{"goblin gets whacked", 100, 50, 3, 2, goblin, combat.Attack(0)},
		{"knight resists fireball", 100, 50, 3, 2, knight, combat.Attack(0)},
		{"dragon gets fireball", 100, 50, 3, 2, dragon, combat.Attack(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player := &entity.Player{
				Name: "Mage", Health: tt.health, MaxHealth: 100, Mana: tt.mana, MaxMana: 50,
				HealthPotions: tt.healthPotions, ManaPotions: tt.manaPotions, HasFireball: true,
			}
			assert.Equal(t, tt.want, pilot.Choose(player, tt.enemy))
		})
	}
}

type passiveDecider struct{}

func (passiveDecider) Decide(*entity.Enemy, *entity.Player) combat.Decision { return combat.Decision{} }

func TestPlayWinsAgainstPassiveEnemies(t *testing.T) {
	pilot := newAutopilot(t)
	logger, _ := test.NewNullLogger()
	session := battle.NewSession(battle.Options{
		Player:   gamedata.MustLoadPlayerTemplate(),
		Species:  gamedata.MustLoadSpeciesRegistry(),
		Resolver: combat.NewResolver(gamedata.MustLoadAttackCatalog(), gamedata.MustLoadPotionCatalog(), passiveDecider{}),
		RNG:      combat.NewSource(3),
		Logger:   logger,
	})

	state, err := pilot.Play(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, battle.StateVictory, state)

	state, err = pilot.Play(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, battle.StateVictory, state, "a finished session can be replayed")
}

func TestPlayAlwaysTerminates(t *testing.T) {
	pilot := newAutopilot(t)
	logger, _ := test.NewNullLogger()

	for seed := int64(1); seed <= 20; seed++ {
		rng := combat.NewSource(seed)
		session := battle.NewSession(battle.Options{
			Player:   gamedata.MustLoadPlayerTemplate(),
			Species:  gamedata.MustLoadSpeciesRegistry(),
			Resolver: combat.NewResolver(gamedata.MustLoadAttackCatalog(), gamedata.MustLoadPotionCatalog(), combat.NewPolicy(rng)),
			RNG:      rng,
			Logger:   logger,
		})

		state, err := pilot.Play(context.Background(), session)
		require.NoError(t, err, "seed %d", seed)
		assert.True(t, state.Terminal(), "seed %d ended in %s", seed, state)
	}
}

func TestPlayStopsOnCancelledContext(t *testing.T) {
	pilot := newAutopilot(t)
	logger, _ := test.NewNullLogger()
	session := battle.NewSession(battle.Options{
		Player:   gamedata.MustLoadPlayerTemplate(),
		Species:  gamedata.MustLoadSpeciesRegistry(),
		Resolver: combat.NewResolver(gamedata.MustLoadAttackCatalog(), gamedata.MustLoadPotionCatalog(), passiveDecider{}),
		RNG:      combat.NewSource(1),
		Logger:   logger,
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pilot.Play(ctx, session)
	assert.ErrorIs(t, err, context.Canceled)
}
