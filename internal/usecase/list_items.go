package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// AddItemInput contains the parameters for adding an item. A nil
// CategoryID files the item under "Other".
type AddItemInput struct {
	CategoryID *int
	Name       string
	ListID     int
}

// AddItemOutput contains the result of adding an item.
type AddItemOutput struct {
	ItemID int
}

// AddItem is the use case for adding an item to a list.
type AddItem struct {
	repo   domain.ListerRepository
	logger domain.Logger
}

// NewAddItem creates a new AddItem use case.
func NewAddItem(repo domain.ListerRepository, logger domain.Logger) *AddItem {
	return &AddItem{repo: repo, logger: logger}
}

// Execute adds the item.
func (uc *AddItem) Execute(_ context.Context, in AddItemInput) (*AddItemOutput, error) {
	state, err := uc.repo.State()
	if err != nil {
		return nil, fmt.Errorf("load lister state: %w", err)
	}
	item, err := state.AddItem(in.ListID, in.Name, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SaveState(state); err != nil {
		return nil, fmt.Errorf("save lister state: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("lister", fmt.Sprintf("item %q added to list #%d", in.Name, in.ListID))
	}
	return &AddItemOutput{ItemID: item.ID}, nil
}

// DeleteItemInput identifies the item to delete.
type DeleteItemInput struct {
	ListID int
	ItemID int
}

// DeleteItem is the use case for deleting an item.
type DeleteItem struct {
	repo domain.ListerRepository
}

// NewDeleteItem creates a new DeleteItem use case.
func NewDeleteItem(repo domain.ListerRepository) *DeleteItem {
	return &DeleteItem{repo: repo}
}

// Execute deletes the item.
func (uc *DeleteItem) Execute(_ context.Context, in DeleteItemInput) error {
	state, err := uc.repo.State()
	if err != nil {
		return fmt.Errorf("load lister state: %w", err)
	}
	if err := state.DeleteItem(in.ListID, in.ItemID); err != nil {
		return err
	}
	if err := uc.repo.SaveState(state); err != nil {
		return fmt.Errorf("save lister state: %w", err)
	}
	return nil
}

// ToggleItemInCartInput identifies the item to toggle.
type ToggleItemInCartInput struct {
	ListID int
	ItemID int
}

// ToggleItemInCart is the use case for moving an item into or out of
// the cart. The item's original category is remembered on the way in
// and restored on the way out.
type ToggleItemInCart struct {
	repo domain.ListerRepository
}

// NewToggleItemInCart creates a new ToggleItemInCart use case.
func NewToggleItemInCart(repo domain.ListerRepository) *ToggleItemInCart {
	return &ToggleItemInCart{repo: repo}
}

// Execute toggles the item.
func (uc *ToggleItemInCart) Execute(_ context.Context, in ToggleItemInCartInput) error {
	state, err := uc.repo.State()
	if err != nil {
		return fmt.Errorf("load lister state: %w", err)
	}
	if err := state.ToggleItemInCart(in.ListID, in.ItemID); err != nil {
		return err
	}
	if err := uc.repo.SaveState(state); err != nil {
		return fmt.Errorf("save lister state: %w", err)
	}
	return nil
}

// MoveItemInput moves an item to another category. A nil CategoryID
// files it under "Other".
type MoveItemInput struct {
	CategoryID *int
	ListID     int
	ItemID     int
}

// MoveItem is the use case for re-filing an item, with cart
// bookkeeping when the cart is the source or the destination.
type MoveItem struct {
	repo domain.ListerRepository
}

// NewMoveItem creates a new MoveItem use case.
func NewMoveItem(repo domain.ListerRepository) *MoveItem {
	return &MoveItem{repo: repo}
}

// Execute moves the item.
func (uc *MoveItem) Execute(_ context.Context, in MoveItemInput) error {
	state, err := uc.repo.State()
	if err != nil {
		return fmt.Errorf("load lister state: %w", err)
	}
	if err := state.MoveItemToCategory(in.ListID, in.ItemID, in.CategoryID); err != nil {
		return err
	}
	if err := uc.repo.SaveState(state); err != nil {
		return fmt.Errorf("save lister state: %w", err)
	}
	return nil
}

// ReorderItemsInput is the full id ordering for a list's items.
type ReorderItemsInput struct {
	ItemIDs []int
	ListID  int
}

// ReorderItems is the use case for reordering a list's items.
type ReorderItems struct {
	repo domain.ListerRepository
}

// NewReorderItems creates a new ReorderItems use case.
func NewReorderItems(repo domain.ListerRepository) *ReorderItems {
	return &ReorderItems{repo: repo}
}

// Execute applies the ordering.
func (uc *ReorderItems) Execute(_ context.Context, in ReorderItemsInput) error {
	state, err := uc.repo.State()
	if err != nil {
		return fmt.Errorf("load lister state: %w", err)
	}
	if err := state.ReorderItems(in.ListID, in.ItemIDs); err != nil {
		return err
	}
	if err := uc.repo.SaveState(state); err != nil {
		return fmt.Errorf("save lister state: %w", err)
	}
	return nil
}
