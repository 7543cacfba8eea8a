package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/app"
	"github.com/daybook-app/daybook/internal/infra/backup"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var snapshot bool
	cmd := &cobra.Command{
		Use:     "export [file]",
		Short:   "Export all data as a JSON backup",
		GroupID: groupData,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := backup.Export(c.KV)
			if err != nil {
				return err
			}

			if snapshot || c.Config.Snapshot.Enabled {
				hash, err := c.Snapshotter().Save(doc, c.Clock.Now())
				if err != nil {
					return fmt.Errorf("save snapshot: %w", err)
				}
				if hash != "" {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Snapshot %s\n", hash)
				}
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0o600); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "also commit a snapshot to the backup repository")
	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "import <file>",
		Short:   "Replace all data from a JSON backup",
		Long: `Replace all data from a JSON backup. The document is validated
first; nothing is written when any part of it is invalid. Keys absent
from the document are removed from the store.`,
		GroupID: groupData,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}
			var doc backup.Document
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parse backup: %w", err)
			}
			if err := backup.Import(c.KV, &doc); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", args[0])
			return nil
		},
	}
}
