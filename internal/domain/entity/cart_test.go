package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(name string, priceCents int64) *Product {
	return &Product{
		ID:    uuid.New(),
		Name:  name,
		Price: priceCents,
	}
}

func TestCart_AddNewProduct(t *testing.T) {
	cart := NewCart()
	burger := testProduct("Burger", 500)

	require.NoError(t, cart.Add(burger, 500))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, burger.ID, cart.Lines[0].ProductID)
	assert.Equal(t, "Burger", cart.Lines[0].Name)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
	assert.Equal(t, int64(500), cart.Lines[0].UnitPrice)
}

func TestCart_AddSameProductIncrementsQuantity(t *testing.T) {
	cart := NewCart()
	burger := testProduct("Burger", 500)

	require.NoError(t, cart.Add(burger, 500))
	require.NoError(t, cart.Add(burger, 500))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, int64(1000), cart.Total())
}

func TestCart_AddSameProductKeepsOriginalPrice(t *testing.T) {
	cart := NewCart()
	burger := testProduct("Burger", 500)

	require.NoError(t, cart.Add(burger, 500))
	// A second add with a different resolved price must not re-price the
	// existing line
	require.NoError(t, cart.Add(burger, 450))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(500), cart.Lines[0].UnitPrice)
	assert.Equal(t, int64(1000), cart.Total())
}

func TestCart_AddNegativePriceRejected(t *testing.T) {
	cart := NewCart()
	burger := testProduct("Burger", 500)

	err := cart.Add(burger, -1)

	require.Error(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCart_SetQuantity(t *testing.T) {
	cart := NewCart()
	burger := testProduct("Burger", 500)
	require.NoError(t, cart.Add(burger, 500))

	cart.SetQuantity(burger.ID, 5)

	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, int64(2500), cart.Total())
}

func TestCart_SetQuantityBelowOneRemovesLine(t *testing.T) {
	cart := NewCart()
	burger := testProduct("Burger", 500)

	for _, quantity := range []int{0, -3} {
		require.NoError(t, cart.Add(burger, 500))
		cart.SetQuantity(burger.ID, quantity)
		assert.True(t, cart.IsEmpty())
	}
}

func TestCart_SetQuantityUnknownProductNoop(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(testProduct("Burger", 500), 500))

	cart.SetQuantity(uuid.New(), 3)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCart_SetPrice(t *testing.T) {
	cart := NewCart()
	burger := testProduct("Burger", 500)
	require.NoError(t, cart.Add(burger, 500))

	require.NoError(t, cart.SetPrice(burger.ID, 450))

	assert.Equal(t, int64(450), cart.Lines[0].UnitPrice)
}

func TestCart_SetPriceNegativeRejectedCartUnchanged(t *testing.T) {
	cart := NewCart()
	burger := testProduct("Burger", 500)
	require.NoError(t, cart.Add(burger, 500))

	err := cart.SetPrice(burger.ID, -100)

	require.Error(t, err)
	assert.Equal(t, int64(500), cart.Lines[0].UnitPrice)
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart()
	burger := testProduct("Burger", 500)
	fries := testProduct("Fries", 250)
	require.NoError(t, cart.Add(burger, 500))
	require.NoError(t, cart.Add(fries, 250))

	cart.Remove(burger.ID)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, fries.ID, cart.Lines[0].ProductID)

	// Removing an absent product is a no-op
	cart.Remove(burger.ID)
	assert.Len(t, cart.Lines, 1)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(testProduct("Burger", 500), 500))
	require.NoError(t, cart.Add(testProduct("Fries", 250), 250))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Total())
}

func TestCart_TotalIsExactAndOrderIndependent(t *testing.T) {
	burger := testProduct("Burger", 500)
	fries := testProduct("Fries", 250)
	coffee := testProduct("Coffee", 199)

	forward := NewCart()
	require.NoError(t, forward.Add(burger, 500))
	require.NoError(t, forward.Add(burger, 500))
	require.NoError(t, forward.Add(fries, 250))
	require.NoError(t, forward.Add(coffee, 199))

	backward := NewCart()
	require.NoError(t, backward.Add(coffee, 199))
	require.NoError(t, backward.Add(fries, 250))
	require.NoError(t, backward.Add(burger, 500))
	require.NoError(t, backward.Add(burger, 500))

	// 2x5.00 + 2.50 + 1.99 = 14.49, exact in cents
	assert.Equal(t, int64(1449), forward.Total())
	assert.Equal(t, forward.Total(), backward.Total())
}

func TestCart_CopyIsDetached(t *testing.T) {
	cart := NewCart()
	burger := testProduct("Burger", 500)
	require.NoError(t, cart.Add(burger, 500))

	dup := cart.Copy()
	cart.SetQuantity(burger.ID, 9)
	cart.Remove(burger.ID)

	require.Len(t, dup.Lines, 1)
	assert.Equal(t, 1, dup.Lines[0].Quantity)
	assert.Equal(t, int64(500), dup.Total())
}

func TestCartLine_Extension(t *testing.T) {
	line := CartLine{Quantity: 3, UnitPrice: 333}
	assert.Equal(t, int64(999), line.Extension())
}
