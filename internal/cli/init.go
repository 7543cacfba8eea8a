package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/daybook-app/daybook/internal/app"
	"github.com/daybook-app/daybook/internal/usecase"
)

// initializer is implemented by store backends that need an explicit
// first-run setup (the file store creates its store file).
type initializer interface {
	IsInitialized() bool
	Initialize() error
}

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var seed string
	cmd := &cobra.Command{
		Use:     "init",
		Short:   "Initialize the data store",
		GroupID: groupData,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if store, ok := c.KV.(initializer); ok {
				if store.IsInitialized() {
					return fmt.Errorf("already initialized in %s", c.Config.DataDir)
				}
				if err := store.Initialize(); err != nil {
					return err
				}
			}
			// sqlite creates its schema on open, nothing to do there.
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized daybook in %s\n", c.Config.DataDir)

			if seed == "" {
				return nil
			}
			data, err := os.ReadFile(seed)
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}
			var in usecase.SeedGoalsInput
			if err := yaml.Unmarshal(data, &in); err != nil {
				return fmt.Errorf("parse seed file: %w", err)
			}
			out, err := c.SeedGoalsUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d area(s), %d goal(s)\n", out.AreasCreated, out.GoalsCreated)
			return nil
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "YAML file of areas and goals to create")
	return cmd
}
