package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noctalia-dev/plugin-registry/internal/registry"
)

func (a *app) runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := a.setup(cmd)
	if err != nil {
		return err
	}
	if cfg.File != "" {
		a.log.Debug("Loaded config", zap.String("file", cfg.File))
	}

	_, err = registry.Run(registry.Options{
		Root:    cfg.Root,
		Output:  cfg.Output,
		Exclude: cfg.Exclude,
		Check:   cfg.Check,
	}, a.log)
	if err != nil {
		return fmt.Errorf("updating registry: %w", err)
	}
	return nil
}
