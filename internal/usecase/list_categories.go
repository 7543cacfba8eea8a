package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// AddCategoryInput contains the parameters for adding a category.
type AddCategoryInput struct {
	Name   string
	ListID int
}

// AddCategoryOutput contains the result of adding a category.
type AddCategoryOutput struct {
	CategoryID int
}

// AddCategory is the use case for adding a user category to a list.
type AddCategory struct {
	repo   domain.ListerRepository
	logger domain.Logger
}

// NewAddCategory creates a new AddCategory use case.
func NewAddCategory(repo domain.ListerRepository, logger domain.Logger) *AddCategory {
	return &AddCategory{repo: repo, logger: logger}
}

// Execute adds the category.
func (uc *AddCategory) Execute(_ context.Context, in AddCategoryInput) (*AddCategoryOutput, error) {
	state, err := uc.repo.State()
	if err != nil {
		return nil, fmt.Errorf("load lister state: %w", err)
	}
	cat, err := state.AddCategory(in.ListID, in.Name)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SaveState(state); err != nil {
		return nil, fmt.Errorf("save lister state: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("lister", fmt.Sprintf("category %q added to list #%d", in.Name, in.ListID))
	}
	return &AddCategoryOutput{CategoryID: cat.ID}, nil
}

// RenameCategoryInput contains the parameters for renaming a category.
type RenameCategoryInput struct {
	Name       string
	ListID     int
	CategoryID int
}

// RenameCategory is the use case for renaming a user category.
// Reserved categories are rejected.
type RenameCategory struct {
	repo domain.ListerRepository
}

// NewRenameCategory creates a new RenameCategory use case.
func NewRenameCategory(repo domain.ListerRepository) *RenameCategory {
	return &RenameCategory{repo: repo}
}

// Execute renames the category.
func (uc *RenameCategory) Execute(_ context.Context, in RenameCategoryInput) error {
	state, err := uc.repo.State()
	if err != nil {
		return fmt.Errorf("load lister state: %w", err)
	}
	if err := state.RenameCategory(in.ListID, in.CategoryID, in.Name); err != nil {
		return err
	}
	if err := uc.repo.SaveState(state); err != nil {
		return fmt.Errorf("save lister state: %w", err)
	}
	return nil
}

// DeleteCategoryInput identifies the category to delete.
type DeleteCategoryInput struct {
	ListID     int
	CategoryID int
}

// DeleteCategory is the use case for deleting a user category. Items
// filed under it move to "Other"; reserved categories are rejected.
type DeleteCategory struct {
	repo   domain.ListerRepository
	logger domain.Logger
}

// NewDeleteCategory creates a new DeleteCategory use case.
func NewDeleteCategory(repo domain.ListerRepository, logger domain.Logger) *DeleteCategory {
	return &DeleteCategory{repo: repo, logger: logger}
}

// Execute deletes the category.
func (uc *DeleteCategory) Execute(_ context.Context, in DeleteCategoryInput) error {
	state, err := uc.repo.State()
	if err != nil {
		return fmt.Errorf("load lister state: %w", err)
	}
	if err := state.DeleteCategory(in.ListID, in.CategoryID); err != nil {
		return err
	}
	if err := uc.repo.SaveState(state); err != nil {
		return fmt.Errorf("save lister state: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("lister", fmt.Sprintf("category #%d deleted from list #%d", in.CategoryID, in.ListID))
	}
	return nil
}

// ReorderCategoriesInput is the full id ordering for a list's categories.
type ReorderCategoriesInput struct {
	CategoryIDs []int
	ListID      int
}

// ReorderCategories is the use case for reordering a list's categories.
type ReorderCategories struct {
	repo domain.ListerRepository
}

// NewReorderCategories creates a new ReorderCategories use case.
func NewReorderCategories(repo domain.ListerRepository) *ReorderCategories {
	return &ReorderCategories{repo: repo}
}

// Execute applies the ordering.
func (uc *ReorderCategories) Execute(_ context.Context, in ReorderCategoriesInput) error {
	state, err := uc.repo.State()
	if err != nil {
		return fmt.Errorf("load lister state: %w", err)
	}
	if err := state.ReorderCategories(in.ListID, in.CategoryIDs); err != nil {
		return err
	}
	if err := uc.repo.SaveState(state); err != nil {
		return fmt.Errorf("save lister state: %w", err)
	}
	return nil
}
