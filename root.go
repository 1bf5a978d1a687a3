package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"snowfall/config"
	"snowfall/game"
	"snowfall/logging"
	"snowfall/profiling"
	"snowfall/random"
)

type rootOptions struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}
	config.SetDefaults(opts.v)

	cmd := &cobra.Command{
		Use:           "snowfall",
		Short:         "Interactive snowfall that scatters away from the pointer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				logging.InitializeLogger(config.NewDefaultConfig().Logger)
				return err
			}
			opts.cfg = cfg
			logging.InitializeLogger(cfg.Logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is ./snowfall.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	_ = opts.v.BindPFlag("logger.level", flags.Lookup("log-level"))

	local := cmd.Flags()
	local.Int("width", 1024, "initial window width")
	local.Int("height", 768, "initial window height")
	local.Bool("fullscreen", false, "start in fullscreen")
	local.Bool("debug", false, "show the debug overlay (toggle with F1)")
	local.Bool("profile", false, "capture a CPU profile when the frame rate drops")
	_ = opts.v.BindPFlag("window.width", local.Lookup("width"))
	_ = opts.v.BindPFlag("window.height", local.Lookup("height"))
	_ = opts.v.BindPFlag("window.fullscreen", local.Lookup("fullscreen"))
	_ = opts.v.BindPFlag("debug.overlay", local.Lookup("debug"))
	_ = opts.v.BindPFlag("profile.enabled", local.Lookup("profile"))

	cmd.AddCommand(newSpritesCmd())
	return cmd
}

// load reads the config file and environment into a validated Config
func (o *rootOptions) load() (*config.Config, error) {
	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
	} else {
		o.v.AddConfigPath(".")
		o.v.SetConfigName("snowfall")
		o.v.SetConfigType("yaml")
	}
	o.v.SetEnvPrefix("SNOWFALL")
	o.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	o.v.AutomaticEnv()

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return config.Load(o.v)
}

func (o *rootOptions) run(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.GetLogger()
	profiler, err := profiling.NewProfiler(o.cfg.Profile, logger)
	if err != nil {
		return err
	}
	defer profiler.Close()

	logger.Debug("Configuration loaded", zap.Any("window", o.cfg.Window), zap.Bool("profile", o.cfg.Profile.Enabled))
	return game.Run(ctx, game.ConfigFrom(o.cfg), random.NewCrypto(), profiler, logger)
}
