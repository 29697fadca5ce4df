package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/heartclock/internal/config"
	"github.com/iburimskiy/heartclock/internal/logger"
	"github.com/iburimskiy/heartclock/internal/version"
)

// DefaultConfigPath is read when present; its absence is not an error.
const DefaultConfigPath = "heartclock.yaml"

// WindowRunner opens the graphical view.
type WindowRunner func(ctx context.Context, cfg *config.Config, log *logger.Logger) error

type options struct {
	configPath string
	logLevel   string
}

func Execute(window WindowRunner) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(window)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(window WindowRunner) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "heartclock",
		Short:        "heartclock - how long we've been together, with floating hearts",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			if window == nil {
				return errors.New("no window support in this build")
			}
			return window(cmd.Context(), cfg, log)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", DefaultConfigPath, "path to the YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	cmd.AddCommand(newTUICmd(opts), newVersionCmd())
	return cmd
}

// setup loads the configuration and builds the logger for a command.
func (o *options) setup(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	explicit := cmd.Flags().Changed("config")
	cfg, err := loadConfig(o.configPath, explicit)
	if err != nil {
		return nil, nil, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	log := logger.New(cfg.LogLevel, cmd.ErrOrStderr())
	log.Info("heartclock starting",
		"build", version.Info(),
		"config_path", o.configPath,
		"start", cfg.Reference.Format("2006-01-02 15:04:05 MST"),
		"music", cfg.Music,
		"max_particles", cfg.MaxParticles)
	return cfg, log, nil
}

// loadConfig reads path. When the path was not given explicitly a missing
// file falls back to the defaults.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default()
	}
	return nil, fmt.Errorf("failed to load configuration: %w", err)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}
