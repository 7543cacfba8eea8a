package domain

import "slices"

// Reserved category names seeded into every list.
const (
	CategoryOtherName = "Other"
	CategoryCartName  = "In shopping cart"
)

// ListerCategory groups items inside a shopping list.
type ListerCategory struct {
	Name  string `json:"name"`
	ID    int    `json:"id"`
	Order int    `json:"order"`
}

// ListerItem is a shopping-list entry. CategoryID may be nil, which
// renders under "Other". OriginalCategoryID is only meaningful while
// the item is in the cart, so it can be restored on the way out.
type ListerItem struct {
	CategoryID         *int   `json:"categoryId"`
	OriginalCategoryID *int   `json:"originalCategoryId,omitempty"`
	Name               string `json:"name"`
	ID                 int    `json:"id"`
	Order              int    `json:"order"`
	InCart             bool   `json:"inCart"`
}

// ShoppingList owns its categories and items.
type ShoppingList struct {
	Name       string            `json:"name"`
	Color      string            `json:"color"`
	Categories []*ListerCategory `json:"categories"`
	Items      []*ListerItem     `json:"items"`
	ID         int               `json:"id"`
}

// ListerState is the whole persisted lister slice: every list plus the
// monotonic id counter shared by lists, categories, and items.
type ListerState struct {
	Lists          []*ShoppingList `json:"lists"`
	LastID         int             `json:"lastId"`
	SelectedListID int             `json:"selectedListId"`
}

// NewListerState returns an empty lister state.
func NewListerState() *ListerState {
	return &ListerState{}
}

func (s *ListerState) nextID() int {
	s.LastID++
	return s.LastID
}

// List returns the list with the given id.
func (s *ListerState) List(id int) (*ShoppingList, error) {
	for _, l := range s.Lists {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, ErrListNotFound
}

// CreateList creates a list seeded with the two reserved categories
// ("Other" first, "In shopping cart" second) and selects it.
func (s *ListerState) CreateList(name, color string) (*ShoppingList, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	list := &ShoppingList{
		ID:    s.nextID(),
		Name:  name,
		Color: color,
		Categories: []*ListerCategory{
			{ID: s.nextID(), Name: CategoryOtherName, Order: 0},
			{ID: s.nextID(), Name: CategoryCartName, Order: 1},
		},
	}
	s.Lists = append(s.Lists, list)
	s.SelectedListID = list.ID
	return list, nil
}

// DeleteList removes a list and everything in it.
func (s *ListerState) DeleteList(id int) error {
	for i, l := range s.Lists {
		if l.ID == id {
			s.Lists = slices.Delete(s.Lists, i, i+1)
			if s.SelectedListID == id {
				s.SelectedListID = 0
			}
			return nil
		}
	}
	return ErrListNotFound
}

// AddCategory appends a user category to the list.
func (s *ListerState) AddCategory(listID int, name string) (*ListerCategory, error) {
	list, err := s.List(listID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	cat := &ListerCategory{ID: s.nextID(), Name: name, Order: len(list.Categories)}
	list.Categories = append(list.Categories, cat)
	return cat, nil
}

// RenameCategory renames a user category. Reserved categories keep
// their names.
func (s *ListerState) RenameCategory(listID, categoryID int, name string) error {
	list, err := s.List(listID)
	if err != nil {
		return err
	}
	cat := list.category(categoryID)
	if cat == nil {
		return ErrCategoryNotFound
	}
	if cat.Name == CategoryOtherName || cat.Name == CategoryCartName {
		return ErrReservedCategory
	}
	if name == "" {
		return ErrEmptyName
	}
	cat.Name = name
	return nil
}

// DeleteCategory removes a user category and reassigns its items to
// "Other" so no item is left with a dangling category reference.
func (s *ListerState) DeleteCategory(listID, categoryID int) error {
	list, err := s.List(listID)
	if err != nil {
		return err
	}
	cat := list.category(categoryID)
	if cat == nil {
		return ErrCategoryNotFound
	}
	if cat.Name == CategoryOtherName || cat.Name == CategoryCartName {
		return ErrReservedCategory
	}

	// A nil category id renders under "Other", which also covers a
	// corrupted list missing its reserved categories.
	var otherID *int
	if other := list.categoryByName(CategoryOtherName); other != nil {
		id := other.ID
		otherID = &id
	}
	for _, item := range list.Items {
		if item.CategoryID != nil && *item.CategoryID == categoryID {
			item.CategoryID = otherID
		}
		if item.OriginalCategoryID != nil && *item.OriginalCategoryID == categoryID {
			item.OriginalCategoryID = otherID
		}
	}
	for i, c := range list.Categories {
		if c.ID == categoryID {
			list.Categories = slices.Delete(list.Categories, i, i+1)
			break
		}
	}
	return nil
}

// AddItem appends an item outside the cart. A nil categoryID files the
// item under "Other".
func (s *ListerState) AddItem(listID int, name string, categoryID *int) (*ListerItem, error) {
	list, err := s.List(listID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if categoryID != nil && list.category(*categoryID) == nil {
		return nil, ErrCategoryNotFound
	}
	item := &ListerItem{
		ID:         s.nextID(),
		Name:       name,
		CategoryID: categoryID,
		Order:      len(list.Items),
	}
	list.Items = append(list.Items, item)
	return item, nil
}

// DeleteItem removes an item from the list.
func (s *ListerState) DeleteItem(listID, itemID int) error {
	list, err := s.List(listID)
	if err != nil {
		return err
	}
	for i, item := range list.Items {
		if item.ID == itemID {
			list.Items = slices.Delete(list.Items, i, i+1)
			return nil
		}
	}
	return ErrItemNotFound
}

// ToggleItemInCart moves an item into the cart category, remembering
// where it came from, or moves it back out restoring that category.
func (s *ListerState) ToggleItemInCart(listID, itemID int) error {
	list, err := s.List(listID)
	if err != nil {
		return err
	}
	item := list.item(itemID)
	if item == nil {
		return ErrItemNotFound
	}

	if item.InCart {
		item.CategoryID = item.OriginalCategoryID
		item.OriginalCategoryID = nil
		item.InCart = false
		return nil
	}

	cart := list.categoryByName(CategoryCartName)
	if cart == nil {
		return ErrCategoryNotFound
	}
	item.OriginalCategoryID = item.CategoryID
	cartID := cart.ID
	item.CategoryID = &cartID
	item.InCart = true
	return nil
}

// MoveItemToCategory moves an item to another category, applying the
// cart bookkeeping when the destination or the source is the cart.
func (s *ListerState) MoveItemToCategory(listID, itemID int, categoryID *int) error {
	list, err := s.List(listID)
	if err != nil {
		return err
	}
	item := list.item(itemID)
	if item == nil {
		return ErrItemNotFound
	}
	if categoryID != nil && list.category(*categoryID) == nil {
		return ErrCategoryNotFound
	}

	cart := list.categoryByName(CategoryCartName)
	toCart := cart != nil && categoryID != nil && *categoryID == cart.ID

	switch {
	case toCart && !item.InCart:
		item.OriginalCategoryID = item.CategoryID
		item.InCart = true
	case !toCart && item.InCart:
		item.OriginalCategoryID = nil
		item.InCart = false
	}
	item.CategoryID = categoryID
	return nil
}

// ReorderCategories rewrites category order fields to match the given
// id ordering. Every category of the list must appear exactly once;
// partial or duplicated orderings are rejected before anything changes.
func (s *ListerState) ReorderCategories(listID int, ids []int) error {
	list, err := s.List(listID)
	if err != nil {
		return err
	}
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if list.category(id) == nil {
			return ErrCategoryNotFound
		}
		if seen[id] {
			return ErrBadOrdering
		}
		seen[id] = true
	}
	if len(seen) != len(list.Categories) {
		return ErrBadOrdering
	}
	for pos, id := range ids {
		list.category(id).Order = pos
	}
	slices.SortStableFunc(list.Categories, func(a, b *ListerCategory) int { return a.Order - b.Order })
	return nil
}

// ReorderItems rewrites item order fields to match the given id
// ordering, under the same exactly-once rule as ReorderCategories.
func (s *ListerState) ReorderItems(listID int, ids []int) error {
	list, err := s.List(listID)
	if err != nil {
		return err
	}
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if list.item(id) == nil {
			return ErrItemNotFound
		}
		if seen[id] {
			return ErrBadOrdering
		}
		seen[id] = true
	}
	if len(seen) != len(list.Items) {
		return ErrBadOrdering
	}
	for pos, id := range ids {
		list.item(id).Order = pos
	}
	slices.SortStableFunc(list.Items, func(a, b *ListerItem) int { return a.Order - b.Order })
	return nil
}

func (l *ShoppingList) category(id int) *ListerCategory {
	for _, c := range l.Categories {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (l *ShoppingList) categoryByName(name string) *ListerCategory {
	for _, c := range l.Categories {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (l *ShoppingList) item(id int) *ListerItem {
	for _, i := range l.Items {
		if i.ID == id {
			return i
		}
	}
	return nil
}
