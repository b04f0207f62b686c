package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noctalia-dev/plugin-registry/internal/config"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved build settings",
		Long: `Show the settings a build would use after combining flags, the optional
config file in the plugin root, and defaults.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print every resolved setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			file := cfg.File
			if file == "" {
				file = "(none)"
			}
			fmt.Fprintf(out, "config file:  %s\n", file)
			for _, key := range configKeys {
				fmt.Fprintf(out, "%-13s %s\n", key+":", configValue(cfg, key))
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print one resolved setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}
			value, ok := lookupConfig(cfg, args[0])
			if !ok {
				return fmt.Errorf("unknown config key %q (known: %s)", args[0], strings.Join(configKeys, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	})

	return cmd
}

var configKeys = []string{
	config.KeyRoot,
	config.KeyOutput,
	config.KeyExclude,
	config.KeyLogLevel,
	config.KeyLogFormat,
}

func lookupConfig(cfg *config.Config, key string) (string, bool) {
	for _, k := range configKeys {
		if k == key {
			return configValue(cfg, key), true
		}
	}
	return "", false
}

func configValue(cfg *config.Config, key string) string {
	switch key {
	case config.KeyRoot:
		return cfg.Root
	case config.KeyOutput:
		return cfg.Output
	case config.KeyExclude:
		return strings.Join(cfg.Exclude, ",")
	case config.KeyLogLevel:
		return cfg.LogLevel
	case config.KeyLogFormat:
		return cfg.LogFormat
	}
	return ""
}
