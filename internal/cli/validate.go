package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/noctalia-dev/plugin-registry/internal/manifest"
	"github.com/noctalia-dev/plugin-registry/internal/registry"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [plugin-dir...]",
		Short: "Lint plugin manifests",
		Long: `Check plugin manifests against the manifest schema and verify that version
and minNoctaliaVersion are semantic versions.

Without arguments every plugin directory under the root is checked and
directories without a manifest are skipped. Directories given as arguments
must contain a manifest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}

			dirs := args
			explicit := len(args) > 0
			if !explicit {
				scanner := &registry.Scanner{Root: cfg.Root, Exclude: cfg.Exclude}
				if dirs, err = scanner.Dirs(); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			checked, failed := 0, 0
			for _, dir := range dirs {
				label := displayPath(cfg.Root, dir)
				path, ok := manifest.Find(dir)
				if !ok {
					if explicit {
						fmt.Fprintf(out, "✗ %s\n    no %s or %s\n", label, manifest.FileJSON, manifest.FileYAML)
						checked++
						failed++
					}
					continue
				}
				checked++

				result, err := manifest.ValidateFile(path)
				if err != nil {
					fmt.Fprintf(out, "✗ %s\n    %v\n", label, err)
					failed++
					continue
				}
				if result.Valid {
					fmt.Fprintf(out, "✓ %s\n", label)
					continue
				}

				failed++
				fmt.Fprintf(out, "✗ %s\n", label)
				for _, issue := range result.Issues {
					where := issue.Path
					if where == "" {
						where = "/"
					}
					fmt.Fprintf(out, "    %s: %s (%s)\n", where, issue.Message, issue.Keyword)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d manifests failed validation", failed, checked)
			}
			fmt.Fprintf(out, "All %d manifests valid.\n", checked)
			return nil
		},
	}
}

// displayPath shortens dir relative to root when possible.
func displayPath(root, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return dir
	}
	return rel
}
