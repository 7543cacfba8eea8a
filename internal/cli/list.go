package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/app"
	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/usecase"
)

// newListCommand creates the list command and its subcommands.
func newListCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "Manage shopping lists",
		GroupID: groupLister,
	}
	cmd.AddCommand(
		newListNewCommand(c),
		newListShowCommand(c),
		newListDeleteCommand(c),
		newListSelectCommand(c),
		newListCategoryCommand(c),
		newListItemCommand(c),
	)
	return cmd
}

func newListNewCommand(c *app.Container) *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.CreateListUseCase().Execute(cmd.Context(), usecase.CreateListInput{
				Name:  args[0],
				Color: color,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created list %s (#%d)\n", args[0], out.ListID)
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	return cmd
}

func newListShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a list grouped by category (default: selected list)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := c.Lister.State()
			if err != nil {
				return err
			}
			id := state.SelectedListID
			if len(args) == 1 {
				id, err = parseIntArg(args[0])
				if err != nil {
					return err
				}
			}
			list, err := state.List(id)
			if err != nil {
				return err
			}
			printList(cmd, list)
			return nil
		},
	}
}

func printList(cmd *cobra.Command, list *domain.ShoppingList) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s (#%d)\n", list.Name, list.ID)
	for _, cat := range list.Categories {
		_, _ = fmt.Fprintf(w, "\n%s (#%d)\n", cat.Name, cat.ID)
		for _, item := range list.Items {
			if item.CategoryID == nil || *item.CategoryID != cat.ID {
				continue
			}
			mark := " "
			if item.InCart {
				mark = "x"
			}
			_, _ = fmt.Fprintf(w, "  [%s] %s (#%d)\n", mark, item.Name, item.ID)
		}
	}
	// Items without a category render under "Other" in the UI; on the
	// CLI they get their own trailing section.
	printed := false
	for _, item := range list.Items {
		if item.CategoryID != nil {
			continue
		}
		if !printed {
			_, _ = fmt.Fprintln(w, "\n(uncategorized)")
			printed = true
		}
		_, _ = fmt.Fprintf(w, "  [ ] %s (#%d)\n", item.Name, item.ID)
	}
}

func newListDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a shopping list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIntArg(args[0])
			if err != nil {
				return err
			}
			if err := c.DeleteListUseCase().Execute(cmd.Context(), usecase.DeleteListInput{ListID: id}); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted list #%d\n", id)
			return nil
		},
	}
}

func newListSelectCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Switch the selected list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIntArg(args[0])
			if err != nil {
				return err
			}
			return c.SelectListUseCase().Execute(cmd.Context(), usecase.SelectListInput{ListID: id})
		},
	}
}

// newListCategoryCommand groups the category subcommands.
func newListCategoryCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage list categories",
	}

	var listID int

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddCategoryUseCase().Execute(cmd.Context(), usecase.AddCategoryInput{
				ListID: listID,
				Name:   args[0],
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added category %s (#%d)\n", args[0], out.CategoryID)
			return nil
		},
	}

	rename := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIntArg(args[0])
			if err != nil {
				return err
			}
			return c.RenameCategoryUseCase().Execute(cmd.Context(), usecase.RenameCategoryInput{
				ListID:     listID,
				CategoryID: id,
				Name:       args[1],
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category (items move to Other)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIntArg(args[0])
			if err != nil {
				return err
			}
			return c.DeleteCategoryUseCase().Execute(cmd.Context(), usecase.DeleteCategoryInput{
				ListID:     listID,
				CategoryID: id,
			})
		},
	}

	reorder := &cobra.Command{
		Use:   "reorder <id>...",
		Short: "Reorder categories to match the given id order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIntArgs(args)
			if err != nil {
				return err
			}
			return c.ReorderCategoriesUseCase().Execute(cmd.Context(), usecase.ReorderCategoriesInput{
				ListID:      listID,
				CategoryIDs: ids,
			})
		},
	}

	for _, sub := range []*cobra.Command{add, rename, del, reorder} {
		sub.Flags().IntVarP(&listID, "list", "l", 0, "list id (required)")
		_ = sub.MarkFlagRequired("list")
		cmd.AddCommand(sub)
	}
	return cmd
}

// newListItemCommand groups the item subcommands.
func newListItemCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage list items",
	}

	var listID, categoryID int

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.AddItemInput{ListID: listID, Name: args[0]}
			if categoryID != 0 {
				in.CategoryID = &categoryID
			}
			out, err := c.AddItemUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added item %s (#%d)\n", args[0], out.ItemID)
			return nil
		},
	}
	add.Flags().IntVarP(&categoryID, "category", "c", 0, "category id")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIntArg(args[0])
			if err != nil {
				return err
			}
			return c.DeleteItemUseCase().Execute(cmd.Context(), usecase.DeleteItemInput{ListID: listID, ItemID: id})
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Move an item into or out of the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIntArg(args[0])
			if err != nil {
				return err
			}
			return c.ToggleItemInCartUseCase().Execute(cmd.Context(), usecase.ToggleItemInCartInput{ListID: listID, ItemID: id})
		},
	}

	var moveCategory int
	move := &cobra.Command{
		Use:   "move <id>",
		Short: "Move an item to another category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIntArg(args[0])
			if err != nil {
				return err
			}
			in := usecase.MoveItemInput{ListID: listID, ItemID: id}
			if moveCategory != 0 {
				in.CategoryID = &moveCategory
			}
			return c.MoveItemUseCase().Execute(cmd.Context(), in)
		},
	}
	move.Flags().IntVarP(&moveCategory, "category", "c", 0, "destination category id (omit for Other)")

	reorder := &cobra.Command{
		Use:   "reorder <id>...",
		Short: "Reorder items to match the given id order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIntArgs(args)
			if err != nil {
				return err
			}
			return c.ReorderItemsUseCase().Execute(cmd.Context(), usecase.ReorderItemsInput{
				ListID:  listID,
				ItemIDs: ids,
			})
		},
	}

	for _, sub := range []*cobra.Command{add, del, toggle, move, reorder} {
		sub.Flags().IntVarP(&listID, "list", "l", 0, "list id (required)")
		_ = sub.MarkFlagRequired("list")
		cmd.AddCommand(sub)
	}
	return cmd
}

func parseIntArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a numeric id: %q", s)
	}
	return n, nil
}

func parseIntArgs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := parseIntArg(a)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
