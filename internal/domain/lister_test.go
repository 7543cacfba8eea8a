package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T) (*ListerState, *ShoppingList) {
	t.Helper()
	s := NewListerState()
	list, err := s.CreateList("Groceries", "#00aa00")
	require.NoError(t, err)
	return s, list
}

func TestListerState_CreateList_SeedsReservedCategories(t *testing.T) {
	s, list := newTestList(t)

	require.Len(t, list.Categories, 2)
	assert.Equal(t, CategoryOtherName, list.Categories[0].Name)
	assert.Equal(t, CategoryCartName, list.Categories[1].Name)
	assert.Equal(t, list.ID+1, list.Categories[0].ID)
	assert.Equal(t, list.ID+2, list.Categories[1].ID)
	assert.Equal(t, list.ID, s.SelectedListID)
	assert.Equal(t, list.Categories[1].ID, s.LastID)

	// Ids keep advancing monotonically across lists.
	second, err := s.CreateList("Hardware", "#333333")
	require.NoError(t, err)
	assert.Greater(t, second.ID, list.Categories[1].ID)
}

func TestListerState_CreateList_EmptyName(t *testing.T) {
	s := NewListerState()
	_, err := s.CreateList("", "#fff")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestListerState_AddItem_AppendOrder(t *testing.T) {
	s, list := newTestList(t)

	a, err := s.AddItem(list.ID, "Milk", nil)
	require.NoError(t, err)
	b, err := s.AddItem(list.ID, "Bread", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Order)
	assert.Equal(t, 1, b.Order)
	assert.False(t, a.InCart)
	assert.Nil(t, a.CategoryID)
}

func TestListerState_AddItem_UnknownCategory(t *testing.T) {
	s, list := newTestList(t)
	bogus := 9999
	_, err := s.AddItem(list.ID, "Milk", &bogus)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestListerState_ToggleItemInCart_RoundTrip(t *testing.T) {
	s, list := newTestList(t)
	dairy, err := s.AddCategory(list.ID, "Dairy")
	require.NoError(t, err)
	item, err := s.AddItem(list.ID, "Milk", &dairy.ID)
	require.NoError(t, err)

	cartID := list.Categories[1].ID

	require.NoError(t, s.ToggleItemInCart(list.ID, item.ID))
	assert.True(t, item.InCart)
	require.NotNil(t, item.CategoryID)
	assert.Equal(t, cartID, *item.CategoryID)
	require.NotNil(t, item.OriginalCategoryID)
	assert.Equal(t, dairy.ID, *item.OriginalCategoryID)

	require.NoError(t, s.ToggleItemInCart(list.ID, item.ID))
	assert.False(t, item.InCart)
	require.NotNil(t, item.CategoryID)
	assert.Equal(t, dairy.ID, *item.CategoryID)
	assert.Nil(t, item.OriginalCategoryID)
}

func TestListerState_ToggleItemInCart_NilCategoryRoundTrip(t *testing.T) {
	s, list := newTestList(t)
	item, err := s.AddItem(list.ID, "Milk", nil)
	require.NoError(t, err)

	require.NoError(t, s.ToggleItemInCart(list.ID, item.ID))
	require.NoError(t, s.ToggleItemInCart(list.ID, item.ID))
	assert.Nil(t, item.CategoryID)
	assert.Nil(t, item.OriginalCategoryID)
	assert.False(t, item.InCart)
}

func TestListerState_MoveItemToCategory_CartBookkeeping(t *testing.T) {
	s, list := newTestList(t)
	dairy, err := s.AddCategory(list.ID, "Dairy")
	require.NoError(t, err)
	bakery, err := s.AddCategory(list.ID, "Bakery")
	require.NoError(t, err)
	item, err := s.AddItem(list.ID, "Milk", &dairy.ID)
	require.NoError(t, err)

	cartID := list.Categories[1].ID

	// Moving into the cart records the origin.
	require.NoError(t, s.MoveItemToCategory(list.ID, item.ID, &cartID))
	assert.True(t, item.InCart)
	require.NotNil(t, item.OriginalCategoryID)
	assert.Equal(t, dairy.ID, *item.OriginalCategoryID)

	// Moving out of the cart to an explicit category clears the origin.
	require.NoError(t, s.MoveItemToCategory(list.ID, item.ID, &bakery.ID))
	assert.False(t, item.InCart)
	assert.Nil(t, item.OriginalCategoryID)
	require.NotNil(t, item.CategoryID)
	assert.Equal(t, bakery.ID, *item.CategoryID)
}

func TestListerState_DeleteCategory_ReassignsToOther(t *testing.T) {
	s, list := newTestList(t)
	dairy, err := s.AddCategory(list.ID, "Dairy")
	require.NoError(t, err)
	item, err := s.AddItem(list.ID, "Milk", &dairy.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteCategory(list.ID, dairy.ID))

	otherID := list.Categories[0].ID
	require.NotNil(t, item.CategoryID)
	assert.Equal(t, otherID, *item.CategoryID)
	assert.Len(t, list.Categories, 2)
}

func TestListerState_DeleteCategory_ReservedRejected(t *testing.T) {
	s, list := newTestList(t)
	assert.ErrorIs(t, s.DeleteCategory(list.ID, list.Categories[0].ID), ErrReservedCategory)
	assert.ErrorIs(t, s.DeleteCategory(list.ID, list.Categories[1].ID), ErrReservedCategory)
	assert.ErrorIs(t, s.RenameCategory(list.ID, list.Categories[1].ID, "Basket"), ErrReservedCategory)
}

func TestListerState_Reorder(t *testing.T) {
	s, list := newTestList(t)
	a, _ := s.AddItem(list.ID, "Milk", nil)
	b, _ := s.AddItem(list.ID, "Bread", nil)
	c, _ := s.AddItem(list.ID, "Eggs", nil)

	require.NoError(t, s.ReorderItems(list.ID, []int{c.ID, a.ID, b.ID}))
	assert.Equal(t, []int{c.ID, a.ID, b.ID}, []int{list.Items[0].ID, list.Items[1].ID, list.Items[2].ID})
	assert.Equal(t, 0, c.Order)
	assert.Equal(t, 2, b.Order)

	assert.ErrorIs(t, s.ReorderItems(list.ID, []int{9999}), ErrItemNotFound)
}

func TestListerState_Reorder_RejectsPartialOrDuplicate(t *testing.T) {
	s, list := newTestList(t)
	a, _ := s.AddItem(list.ID, "Milk", nil)
	b, _ := s.AddItem(list.ID, "Bread", nil)
	c, _ := s.AddItem(list.ID, "Eggs", nil)

	// A partial ordering would leave unmentioned items with stale
	// positions; it is rejected and nothing moves.
	assert.ErrorIs(t, s.ReorderItems(list.ID, []int{c.ID, a.ID}), ErrBadOrdering)
	assert.Equal(t, []int{a.ID, b.ID, c.ID}, []int{list.Items[0].ID, list.Items[1].ID, list.Items[2].ID})
	assert.Equal(t, 0, a.Order)

	assert.ErrorIs(t, s.ReorderItems(list.ID, []int{c.ID, c.ID, a.ID}), ErrBadOrdering)
	assert.Equal(t, []int{a.ID, b.ID, c.ID}, []int{list.Items[0].ID, list.Items[1].ID, list.Items[2].ID})

	cat, err := s.AddCategory(list.ID, "Produce")
	require.NoError(t, err)
	assert.ErrorIs(t, s.ReorderCategories(list.ID, []int{cat.ID}), ErrBadOrdering)
	assert.ErrorIs(t, s.ReorderCategories(list.ID, []int{cat.ID, cat.ID, cat.ID}), ErrBadOrdering)

	other := list.Categories[0]
	cart := list.Categories[1]
	require.NoError(t, s.ReorderCategories(list.ID, []int{cat.ID, other.ID, cart.ID}))
	assert.Equal(t, cat.ID, list.Categories[0].ID)
}

func TestListerState_DeleteList(t *testing.T) {
	s, list := newTestList(t)
	require.NoError(t, s.DeleteList(list.ID))
	assert.Empty(t, s.Lists)
	assert.Zero(t, s.SelectedListID)
	assert.ErrorIs(t, s.DeleteList(list.ID), ErrListNotFound)
}
