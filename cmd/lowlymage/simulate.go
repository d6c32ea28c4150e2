package main

import (
	"context"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samdwyer/lowlymage/internal/agent"
	"github.com/samdwyer/lowlymage/internal/battle"
	"github.com/samdwyer/lowlymage/internal/logging"
	"github.com/samdwyer/lowlymage/internal/rules"
)

// simulation is the tally of a simulate run.
type simulation struct {
	Runs      int
	Victories int
	Defeats   int
	Turns     int
	Defeated  int // Enemies defeated across all runs
}

// WinRate returns the share of runs that ended in victory.
func (s simulation) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Victories) / float64(s.Runs)
}

func (a *app) newSimulateCmd() *cobra.Command {
	var (
		runs     int
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play runs headlessly with the autopilot and report the outcome",
		Long: `Plays --runs battles with a hint-following autopilot. Each run uses a fresh
mage. Every roll comes from one source seeded with --seed, so a given seed
always produces the same report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runs <= 0 {
				return fmt.Errorf("--runs must be positive, got %d", runs)
			}
			log, err := logging.New(logging.Options{
				Level:  a.cfg.Log.Level,
				Format: a.cfg.Log.Format,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			shutdown := a.startTelemetry(ctx, log)
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("Error shutting down telemetry")
				}
			}()

			var bar io.Writer = io.Discard
			if progress {
				bar = cmd.ErrOrStderr()
			}
			result, err := a.simulate(ctx, runs, log, bar)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "runs: %d\n", result.Runs)
			fmt.Fprintf(out, "victories: %d\n", result.Victories)
			fmt.Fprintf(out, "defeats: %d\n", result.Defeats)
			fmt.Fprintf(out, "win rate: %.1f%%\n", result.WinRate()*100)
			fmt.Fprintf(out, "turns: %d\n", result.Turns)
			fmt.Fprintf(out, "enemies defeated: %d\n", result.Defeated)
			return nil
		},
	}

	cmd.Flags().IntVar(&runs, "runs", 100, "number of runs to play")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar on stderr")
	return cmd
}

// simulate plays runs battles and tallies them.
func (a *app) simulate(ctx context.Context, runs int, log logrus.FieldLogger, progressOut io.Writer) (simulation, error) {
	seed := a.seed()
	log.WithFields(logrus.Fields{"seed": seed, "runs": runs}).Info("Simulation started")

	opts, err := battleOptions(seed, log)
	if err != nil {
		return simulation{}, err
	}
	hints, err := rules.LoadHintBook()
	if err != nil {
		return simulation{}, fmt.Errorf("load hints: %w", err)
	}
	pilot := agent.NewAutopilot(opts.Resolver.Attacks(), opts.Resolver.Potions(), hints, log)

	bar := progressbar.NewOptions(runs,
		progressbar.OptionSetWriter(progressOut),
		progressbar.OptionSetDescription("Simulating"),
		progressbar.OptionClearOnFinish(),
	)

	result := simulation{Runs: runs}
	for i := 0; i < runs; i++ {
		session := battle.NewSession(opts)
		state, err := pilot.Play(ctx, session)
		if err != nil {
			return result, fmt.Errorf("run %d: %w", i+1, err)
		}

		switch state {
		case battle.StateVictory:
			result.Victories++
		case battle.StateDefeat:
			result.Defeats++
		}
		result.Turns += session.Turns()
		result.Defeated += session.Index()

		log.WithFields(logrus.Fields{
			"run":              i + 1,
			"session_id":       session.ID(),
			"outcome":          state.String(),
			"turns":            session.Turns(),
			"enemies_defeated": session.Index(),
		}).Debug("Run finished")
		if err := bar.Add(1); err != nil {
			log.WithError(err).Debug("Progress bar update failed")
		}
	}

	log.WithFields(logrus.Fields{
		"victories": result.Victories,
		"defeats":   result.Defeats,
		"win_rate":  result.WinRate(),
	}).Info("Simulation finished")
	return result, nil
}
