// Package cli holds the gigctl commands: offline gig filtering, palette
// cache refreshes and development tokens.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/presetapp/gigboard/internal/config"
	"github.com/presetapp/gigboard/internal/infra/logger"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

var opts rootOptions

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gigctl",
		Short:         "Gig board maintenance tool",
		Long:          "Filter exported gigs offline, warm the palette cache and mint development tokens.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "configs/config.yaml", "config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	return cmd
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

// newLogger logs JSON to stderr.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(logger.Options{Level: cfg.Log.Level})
}
