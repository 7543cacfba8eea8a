package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// CreateListInput contains the parameters for creating a shopping list.
type CreateListInput struct {
	Name  string
	Color string
}

// CreateListOutput contains the result of creating a list.
type CreateListOutput struct {
	ListID int
}

// CreateList is the use case for creating a shopping list. The new
// list is seeded with the reserved "Other" and "In shopping cart"
// categories and becomes the selected list.
type CreateList struct {
	repo   domain.ListerRepository
	logger domain.Logger
}

// NewCreateList creates a new CreateList use case.
func NewCreateList(repo domain.ListerRepository, logger domain.Logger) *CreateList {
	return &CreateList{repo: repo, logger: logger}
}

// Execute creates the list.
func (uc *CreateList) Execute(_ context.Context, in CreateListInput) (*CreateListOutput, error) {
	state, err := uc.repo.State()
	if err != nil {
		return nil, fmt.Errorf("load lister state: %w", err)
	}
	list, err := state.CreateList(in.Name, in.Color)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.SaveState(state); err != nil {
		return nil, fmt.Errorf("save lister state: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("lister", fmt.Sprintf("list created: %q (#%d)", in.Name, list.ID))
	}
	return &CreateListOutput{ListID: list.ID}, nil
}

// DeleteListInput identifies the list to delete.
type DeleteListInput struct {
	ListID int
}

// DeleteList is the use case for deleting a shopping list with all of
// its categories and items.
type DeleteList struct {
	repo   domain.ListerRepository
	logger domain.Logger
}

// NewDeleteList creates a new DeleteList use case.
func NewDeleteList(repo domain.ListerRepository, logger domain.Logger) *DeleteList {
	return &DeleteList{repo: repo, logger: logger}
}

// Execute deletes the list.
func (uc *DeleteList) Execute(_ context.Context, in DeleteListInput) error {
	state, err := uc.repo.State()
	if err != nil {
		return fmt.Errorf("load lister state: %w", err)
	}
	if err := state.DeleteList(in.ListID); err != nil {
		return err
	}
	if err := uc.repo.SaveState(state); err != nil {
		return fmt.Errorf("save lister state: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("lister", fmt.Sprintf("list #%d deleted", in.ListID))
	}
	return nil
}

// SelectListInput identifies the list to make current.
type SelectListInput struct {
	ListID int
}

// SelectList is the use case for switching the selected list.
type SelectList struct {
	repo domain.ListerRepository
}

// NewSelectList creates a new SelectList use case.
func NewSelectList(repo domain.ListerRepository) *SelectList {
	return &SelectList{repo: repo}
}

// Execute marks the list as selected.
func (uc *SelectList) Execute(_ context.Context, in SelectListInput) error {
	state, err := uc.repo.State()
	if err != nil {
		return fmt.Errorf("load lister state: %w", err)
	}
	if _, err := state.List(in.ListID); err != nil {
		return err
	}
	state.SelectedListID = in.ListID
	if err := uc.repo.SaveState(state); err != nil {
		return fmt.Errorf("save lister state: %w", err)
	}
	return nil
}
