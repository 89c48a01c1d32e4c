package main

import (
	"github.com/spf13/cobra"

	"BaristaSimulator/internal/config"
)

const DEFAULT_CONFIG_FILE = "barista.toml"

type rootOptions struct {
	configPath string
	envPath    string
	flags      config.Flags
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "barista",
		Short:         "Coffee bar greybox with switchable camera viewpoints",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", DEFAULT_CONFIG_FILE, "TOML config file")
	flags.StringVar(&opts.envPath, "env", ".env", "dotenv file with BARISTA_* overrides")
	flags.StringVar(&opts.flags.ViewpointFile, "viewpoints", "", "viewpoint YAML asset")
	flags.StringVar(&opts.flags.LogDir, "log-dir", "", "directory for session log files")
	flags.BoolVar(&opts.flags.Debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newViewsCommand(opts))
	return cmd
}

// load resolves configuration: defaults, then the TOML file, then .env and
// the environment, then flags.
func (o *rootOptions) load() (config.Config, error) {
	if err := config.LoadEnvFile(o.envPath); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, err
	}
	cfg.Resolve(o.flags)
	return cfg, nil
}
