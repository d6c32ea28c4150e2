package battle

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/lowlymage/internal/apperrors"
	"github.com/samdwyer/lowlymage/internal/combat"
	"github.com/samdwyer/lowlymage/internal/entity"
	"github.com/samdwyer/lowlymage/internal/gamedata"
	"github.com/samdwyer/lowlymage/internal/telemetry"
)

// Options configures a new Session.
type Options struct {
	Player   gamedata.PlayerTemplate
	Species  *gamedata.SpeciesRegistry
	Resolver *combat.Resolver
	RNG      combat.Source      // Drives encounter generation
	Logger   logrus.FieldLogger // Defaults to the standard logrus logger
	Listener Listener           // Defaults to NopListener
}

// Session is one player's run against successive encounter queues. It owns
// the Player, which persists across Start calls.
type Session struct {
	id       string
	machine  *fsm.FSM
	player   *entity.Player
	enemies  []*entity.Enemy
	index    int
	turns    int
	species  *gamedata.SpeciesRegistry
	resolver *combat.Resolver
	rng      combat.Source
	log      logrus.FieldLogger
	listener Listener
}

// NewSession creates an idle session. Call Start to build the first encounter.
func NewSession(opts Options) *Session {
	s := &Session{
		player:   entity.NewPlayer(opts.Player),
		species:  opts.Species,
		resolver: opts.Resolver,
		rng:      opts.RNG,
		log:      opts.Logger,
		listener: opts.Listener,
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	if s.listener == nil {
		s.listener = NopListener{}
	}

	s.machine = fsm.NewFSM(
		string(StateIdle),
		fsm.Events{
			{Name: eventStart, Src: []string{string(StateIdle), string(StateVictory), string(StateDefeat)}, Dst: string(StateAwaitingIntent)},
			{Name: eventDefeatEnemy, Src: []string{string(StateAwaitingIntent)}, Dst: string(StateEnemyDefeated)},
			{Name: eventAdvance, Src: []string{string(StateEnemyDefeated)}, Dst: string(StateAwaitingIntent)},
			{Name: eventWin, Src: []string{string(StateEnemyDefeated)}, Dst: string(StateVictory)},
			{Name: eventLose, Src: []string{string(StateAwaitingIntent)}, Dst: string(StatePlayerDefeated)},
			{Name: eventConclude, Src: []string{string(StatePlayerDefeated)}, Dst: string(StateDefeat)},
		},
		fsm.Callbacks{
			"enter_" + string(StateVictory): func(ctx context.Context, e *fsm.Event) {
				s.finish(ctx, StateVictory)
				s.listener.Victory()
			},
			"enter_" + string(StateDefeat): func(ctx context.Context, e *fsm.Event) {
				s.finish(ctx, StateDefeat)
				s.listener.Defeat()
			},
		},
	)
	return s
}

// ID returns the identifier of the current encounter run.
func (s *Session) ID() string { return s.id }

// State returns the current state.
func (s *Session) State() State { return State(s.machine.Current()) }

// Player returns the session's player.
func (s *Session) Player() *entity.Player { return s.player }

// Enemies returns the current encounter queue.
func (s *Session) Enemies() []*entity.Enemy { return s.enemies }

// Index returns the position of the active enemy in the queue.
func (s *Session) Index() int { return s.index }

// Turns returns the number of consumed turns in the current run.
func (s *Session) Turns() int { return s.turns }

// CurrentEnemy returns the enemy being fought, or nil outside of a fight.
func (s *Session) CurrentEnemy() *entity.Enemy {
	if s.State() != StateAwaitingIntent || s.index >= len(s.enemies) {
		return nil
	}
	return s.enemies[s.index]
}

// Start builds a fresh encounter queue and begins the fight against its first
// enemy. It is valid before the first run and after Victory or Defeat.
func (s *Session) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.machine.Can(eventStart) {
		return apperrors.Newf(apperrors.CodeInvalidArgument, "cannot start a battle in state %s", s.State())
	}

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.start")
	defer span.End()

	enemies, err := GenerateEncounter(s.species, s.rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("generate encounter: %w", err)
	}

	s.id = uuid.NewString()
	s.enemies = enemies
	s.index = 0
	s.turns = 0

	if err := s.machine.Event(ctx, eventStart); err != nil {
		return fmt.Errorf("start battle: %w", err)
	}

	names := make([]string, len(enemies))
	for i, e := range enemies {
		names[i] = e.Name + "/" + string(e.Behavior)
	}
	span.SetAttributes(
		attribute.String("session_id", s.id),
		attribute.Int("enemy_count", len(enemies)),
		attribute.StringSlice("enemies", names),
		attribute.Int("player_health", s.player.Health),
	)
	s.log.WithFields(logrus.Fields{
		"session_id": s.id,
		"enemies":    names,
	}).Info("Battle started")
	return nil
}

// Submit resolves one player intent against the current enemy and advances the
// state machine. Invalid intents return an error and leave the session as it
// was. Rejected intents (not enough mana, no potion left) return a
// non-consuming outcome.
func (s *Session) Submit(ctx context.Context, intent combat.Intent) (combat.TurnOutcome, error) {
	if err := ctx.Err(); err != nil {
		return combat.TurnOutcome{}, err
	}
	if s.State() != StateAwaitingIntent {
		return combat.TurnOutcome{}, apperrors.Newf(apperrors.CodeInvalidArgument, "cannot submit %s in state %s", intent, s.State())
	}
	enemy := s.enemies[s.index]

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("session_id", s.id),
		attribute.String("intent", intent.String()),
		attribute.String("enemy", enemy.Name),
		attribute.String("behavior", string(enemy.Behavior)),
		attribute.Int("turn", s.turns),
	)

	out, err := s.resolver.Resolve(intent, s.player, enemy)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.WithFields(logrus.Fields{
			"session_id": s.id,
			"intent":     intent.String(),
		}).WithError(err).Warn("Intent failed")
		return out, err
	}

	span.SetAttributes(
		attribute.String("action", out.Action),
		attribute.Bool("turn_consumed", out.TurnConsumed),
		attribute.Int("damage_dealt", out.EnemyDamageDealt),
		attribute.Int("damage_taken", out.PlayerDamageTaken),
	)
	if out.Rejected() {
		span.SetAttributes(attribute.String("rejection", string(out.Rejection)))
	}
	if out.TurnConsumed {
		s.turns++
	}

	s.log.WithFields(logrus.Fields{
		"session_id":    s.id,
		"action":        out.Action,
		"turn_consumed": out.TurnConsumed,
		"enemy":         enemy.Name,
		"enemy_health":  enemy.Health,
		"player_health": s.player.Health,
	}).Debug("Turn resolved")

	s.listener.TurnResolved(out)

	if err := s.advance(ctx, enemy); err != nil {
		span.RecordError(err)
		return out, err
	}
	return out, nil
}

// advance applies the terminal checks after a resolved turn. Player defeat
// wins over a simultaneous enemy defeat.
func (s *Session) advance(ctx context.Context, enemy *entity.Enemy) error {
	if s.player.IsDefeated() {
		if err := s.machine.Event(ctx, eventLose); err != nil {
			return fmt.Errorf("player defeated: %w", err)
		}
		if err := s.machine.Event(ctx, eventConclude); err != nil {
			return fmt.Errorf("conclude defeat: %w", err)
		}
		return nil
	}

	if !enemy.IsDefeated() {
		return nil
	}

	if err := s.machine.Event(ctx, eventDefeatEnemy); err != nil {
		return fmt.Errorf("enemy defeated: %w", err)
	}
	s.index++

	if s.index >= len(s.enemies) {
		s.log.WithField("session_id", s.id).Info("Final enemy defeated")
		s.listener.EnemyDefeated(nil)
		if err := s.machine.Event(ctx, eventWin); err != nil {
			return fmt.Errorf("victory: %w", err)
		}
		return nil
	}

	next := s.enemies[s.index]
	s.log.WithFields(logrus.Fields{
		"session_id": s.id,
		"defeated":   enemy.Name,
		"next":       next.Name,
	}).Info("Enemy defeated")
	s.listener.EnemyDefeated(next)
	if err := s.machine.Event(ctx, eventAdvance); err != nil {
		return fmt.Errorf("advance to next enemy: %w", err)
	}
	return nil
}

// finish runs on entering Victory or Defeat.
func (s *Session) finish(ctx context.Context, outcome State) {
	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("session_id", s.id),
		attribute.String("outcome", outcome.String()),
		attribute.Int("turns_taken", s.turns),
		attribute.Int("enemies_defeated", s.index),
		attribute.Int("player_health_remaining", s.player.Health),
	)
	span.End()

	s.log.WithFields(logrus.Fields{
		"session_id": s.id,
		"outcome":    outcome.String(),
		"turns":      s.turns,
	}).Info("Battle ended")

	s.player.ResetVitals()
}
