package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/samdwyer/lowlymage/internal/battle"
	"github.com/samdwyer/lowlymage/internal/combat"
	"github.com/samdwyer/lowlymage/internal/config"
	"github.com/samdwyer/lowlymage/internal/gamedata"
	"github.com/samdwyer/lowlymage/internal/telemetry"
)

// app carries the state shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "lowlymage",
		Short: "Struggle of a Lowly Mage, a turn-based terminal battle game",
		Long: `A lowly mage with a staff, a fireball and a few potions faces three
randomly drawn monsters in a row. Running without a subcommand starts the game.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			telemetry.ServiceVersion = Version
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlay(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ./lowlymage.yaml)")
	flags.Int64("seed", 0, "random seed, 0 for a random one")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text or json)")
	flags.Bool("telemetry", false, "export traces to Honeycomb")
	a.bind(flags.Lookup("seed"), "seed")
	a.bind(flags.Lookup("log-level"), "log.level")
	a.bind(flags.Lookup("log-format"), "log.format")
	a.bind(flags.Lookup("telemetry"), "telemetry.enabled")

	rootCmd.AddCommand(a.newPlayCmd(), a.newSimulateCmd(), newVersionCmd())
	return rootCmd
}

func (a *app) bind(flag *pflag.Flag, key string) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// seed returns the configured seed, or a time-based one when it is 0.
func (a *app) seed() int64 {
	if a.cfg.Seed != 0 {
		return a.cfg.Seed
	}
	return time.Now().UnixNano()
}

// battleOptions loads the embedded catalogs and builds a session
// configuration drawing every roll from one source seeded with seed.
func battleOptions(seed int64, log logrus.FieldLogger) (battle.Options, error) {
	attacks, err := gamedata.LoadAttackCatalog()
	if err != nil {
		return battle.Options{}, fmt.Errorf("load attacks: %w", err)
	}
	potions, err := gamedata.LoadPotionCatalog()
	if err != nil {
		return battle.Options{}, fmt.Errorf("load potions: %w", err)
	}
	species, err := gamedata.LoadSpeciesRegistry()
	if err != nil {
		return battle.Options{}, fmt.Errorf("load species: %w", err)
	}
	player, err := gamedata.LoadPlayerTemplate()
	if err != nil {
		return battle.Options{}, fmt.Errorf("load player: %w", err)
	}

	rng := combat.NewSource(seed)
	return battle.Options{
		Player:   player,
		Species:  species,
		Resolver: combat.NewResolver(attacks, potions, combat.NewPolicy(rng)),
		RNG:      rng,
		Logger:   log,
	}, nil
}

// startTelemetry sets up tracing when enabled and returns its shutdown function.
func (a *app) startTelemetry(ctx context.Context, log logrus.FieldLogger) func(context.Context) error {
	if !a.cfg.Telemetry.Enabled {
		return telemetry.Disabled()
	}
	if !telemetry.ConfigureHoneycombEnv() {
		log.Warn("Telemetry enabled but HONEYCOMB_LOWLYMAGE_API_KEY is not set")
	}
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.WithError(err).Warn("Telemetry setup failed, running without observability")
		return telemetry.Disabled()
	}
	return shutdown
}
