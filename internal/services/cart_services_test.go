package services

import (
	"context"
	"testing"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture(t *testing.T) (*CartService, *fakeCartStore, *fakeProductStore) {
	t.Helper()
	products := newFakeProductStore(
		mustProduct(1, "Blue Mug", "9.99"),
		mustProduct(2, "Red Plate", "14.50"),
	)
	carts := newFakeCartStore(products)
	return NewCartService(carts, products), carts, products
}

func TestAddMergesExistingLine(t *testing.T) {
	svc, _, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 1, 2)
	require.NoError(t, err)
	item, err := svc.Add(ctx, 1, 1, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, item.Quantity)

	cart, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].ProductID)
}

func TestAddUnknownProduct(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	_, err := svc.Add(context.Background(), 1, 999, 1)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	item, err := svc.Add(context.Background(), 1, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, item.Quantity)
}

func TestUpdateItemRejectsNegativeQuantity(t *testing.T) {
	svc, _, _ := newCartFixture(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, 1, 1, 2)
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, item.CartItemID, -1)
	assert.ErrorIs(t, err, ErrValidation)

	// stored quantity must be unchanged
	unchanged, err := svc.Repo.GetItem(ctx, item.CartItemID)
	require.NoError(t, err)
	assert.Equal(t, 2, unchanged.Quantity)
}

func TestUpdateItemZeroDeletesLine(t *testing.T) {
	svc, _, _ := newCartFixture(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, 1, 1, 2)
	require.NoError(t, err)

	out, err := svc.UpdateItem(ctx, item.CartItemID, 0)
	require.NoError(t, err)
	assert.Nil(t, out)

	cart, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateItemOverwritesQuantity(t *testing.T) {
	svc, _, _ := newCartFixture(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, 1, 1, 2)
	require.NoError(t, err)

	out, err := svc.UpdateItem(ctx, item.CartItemID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, out.Quantity)
}

func TestUpdateMissingItem(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	_, err := svc.UpdateItem(context.Background(), 42, 3)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCreatesCartLazily(t *testing.T) {
	svc, carts, _ := newCartFixture(t)
	ctx := context.Background()

	first, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, first.Items)
	assert.True(t, first.Total.IsZero())

	// repeat access returns the same cart, no second row
	second, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, first.CartID, second.CartID)
	assert.Len(t, carts.carts, 1)
}

func TestGetTotalsLines(t *testing.T) {
	svc, _, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 1, 2) // 2 × 9.99
	require.NoError(t, err)
	_, err = svc.Add(ctx, 1, 2, 1) // 1 × 14.50
	require.NoError(t, err)

	cart, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "34.48", cart.Total.StringFixed(2))
}

func TestReplaceSwapsContents(t *testing.T) {
	svc, _, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 1, 5)
	require.NoError(t, err)

	cart, err := svc.Replace(ctx, 1, []model.CartLine{{ProductID: 2, Quantity: 3}})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].ProductID)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestReplaceRejectsUnknownProduct(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	_, err := svc.Replace(context.Background(), 1, []model.CartLine{{ProductID: 999, Quantity: 1}})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceRejectsNonPositiveQuantity(t *testing.T) {
	svc, _, _ := newCartFixture(t)

	_, err := svc.Replace(context.Background(), 1, []model.CartLine{{ProductID: 1, Quantity: 0}})

	assert.ErrorIs(t, err, ErrValidation)
}
