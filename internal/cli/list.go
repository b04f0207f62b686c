package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/noctalia-dev/plugin-registry/internal/registry"
)

// listEntry represents a registry entry for display.
type listEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (a *app) listCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the plugins in the registry file",
		Long:  `List the plugins recorded in the existing registry file without rescanning.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.setup(cmd)
			if err != nil {
				return err
			}

			reg, err := registry.Load(cfg.Output)
			if err != nil {
				return err
			}

			if len(reg.Plugins) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plugins in registry.")
				return nil
			}

			entries := make([]listEntry, 0, len(reg.Plugins))
			for _, p := range reg.Plugins {
				entries = append(entries, listEntry{
					ID:      p.IDString(),
					Name:    p.NameString(),
					Version: p.VersionString(),
				})
			}

			if asJSON {
				return printListJSON(cmd, entries)
			}
			return printListTable(cmd, entries)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVERSION")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.Name, version)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
