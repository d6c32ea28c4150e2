package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/lowlymage/internal/game"
	"github.com/samdwyer/lowlymage/internal/logging"
	"github.com/samdwyer/lowlymage/internal/rules"
	"github.com/samdwyer/lowlymage/internal/ui"
)

func (a *app) newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlay(cmd.Context())
		},
	}
	cmd.Flags().String("log-file", "lowlymage.log", "file the game logs to while the screen is in use")
	if err := a.v.BindPFlag("log.file", cmd.Flags().Lookup("log-file")); err != nil {
		panic(err)
	}
	return cmd
}

// runPlay runs the interactive game. tcell owns the terminal, so logs go to a file.
func (a *app) runPlay(ctx context.Context) error {
	logFile, err := logging.OpenFile(a.cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log, err := logging.New(logging.Options{
		Level:  a.cfg.Log.Level,
		Format: a.cfg.Log.Format,
		Output: logFile,
	})
	if err != nil {
		return err
	}

	shutdown := a.startTelemetry(ctx, log)
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.WithError(err).Error("Error shutting down telemetry")
		}
	}()

	seed := a.seed()
	log.WithField("seed", seed).Info("Starting game")

	battleOpts, err := battleOptions(seed, log)
	if err != nil {
		return err
	}
	hints, err := rules.LoadHintBook()
	if err != nil {
		return fmt.Errorf("load hints: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	g, err := game.New(screen, game.Options{
		Battle: battleOpts,
		Hints:  hints,
		Pacer:  game.NewPacer(a.cfg.Pacing.AttackDelay, a.cfg.Pacing.EnemyDelay),
		Logger: log,
	})
	if err != nil {
		screen.Close()
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}
