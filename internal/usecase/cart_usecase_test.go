package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-abishek/online-shopping/internal/domain"
)

func newTestCart() CartUseCase {
	return NewCartUseCase(0, testLogger())
}

func TestAddToCartTwiceIncrementsOneLine(t *testing.T) {
	cart := newTestCart()
	p := domain.Product{ID: 1, Name: "Laptop", Price: 10.00, TotalItemsInStock: 5}

	require.NoError(t, cart.AddToCart(p))
	require.NoError(t, cart.AddToCart(p))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddToCartOutOfStock(t *testing.T) {
	cart := newTestCart()
	p := domain.Product{ID: 1, Name: "Gone", Price: 10.00, TotalItemsInStock: 0}

	err := cart.AddToCart(p)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Empty(t, cart.Items())
}

func TestAddToCartStockLimit(t *testing.T) {
	cart := newTestCart()
	p := domain.Product{ID: 1, Name: "Rare", Price: 10.00, TotalItemsInStock: 2}

	require.NoError(t, cart.AddToCart(p))
	require.NoError(t, cart.AddToCart(p))
	err := cart.AddToCart(p)
	assert.ErrorIs(t, err, ErrStockLimit)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddToCartPendingFlagBlocksDuplicates(t *testing.T) {
	cart := NewCartUseCase(100*time.Millisecond, testLogger())
	p := domain.Product{ID: 1, Name: "Slow", Price: 10.00, TotalItemsInStock: 5}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, cart.AddToCart(p))
	}()

	// Let the first add reach its simulated delay, then submit a duplicate.
	time.Sleep(20 * time.Millisecond)
	err := cart.AddToCart(p)
	assert.ErrorIs(t, err, ErrAddInProgress)

	wg.Wait()
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	cart := newTestCart()
	p := domain.Product{ID: 1, Name: "Laptop", Price: 10.00, TotalItemsInStock: 5}
	require.NoError(t, cart.AddToCart(p))

	require.NoError(t, cart.UpdateQuantity(1, 0))
	assert.Empty(t, cart.Items())
}

func TestUpdateQuantitySetsValueWithinStock(t *testing.T) {
	cart := newTestCart()
	p := domain.Product{ID: 1, Name: "Laptop", Price: 10.00, TotalItemsInStock: 5}
	require.NoError(t, cart.AddToCart(p))

	require.NoError(t, cart.UpdateQuantity(1, 4))
	assert.Equal(t, 4, cart.Items()[0].Quantity)

	err := cart.UpdateQuantity(1, 6)
	assert.ErrorIs(t, err, ErrStockLimit)
	assert.Equal(t, 4, cart.Items()[0].Quantity)
}

func TestRemoveFromCartAbsentIsNoOp(t *testing.T) {
	cart := newTestCart()
	p := domain.Product{ID: 1, Name: "Laptop", Price: 10.00, TotalItemsInStock: 5}
	require.NoError(t, cart.AddToCart(p))

	cart.RemoveFromCart(99)
	assert.Len(t, cart.Items(), 1)

	cart.RemoveFromCart(1)
	assert.Empty(t, cart.Items())
	cart.RemoveFromCart(1)
	assert.Empty(t, cart.Items())
}

func TestTotalPrice(t *testing.T) {
	cart := newTestCart()
	a := domain.Product{ID: 1, Name: "A", Price: 10.00, TotalItemsInStock: 10}
	b := domain.Product{ID: 2, Name: "B", Price: 5.50, TotalItemsInStock: 10}

	require.NoError(t, cart.AddToCart(a))
	require.NoError(t, cart.UpdateQuantity(1, 2))
	require.NoError(t, cart.AddToCart(b))
	require.NoError(t, cart.UpdateQuantity(2, 3))

	assert.InDelta(t, 36.50, cart.TotalPrice(), 1e-9)
}

func TestCheckoutEmptyCart(t *testing.T) {
	cart := newTestCart()

	total, err := cart.Checkout()
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Zero(t, total)
	assert.Empty(t, cart.Items())
}

func TestCheckoutReportsTotalAndClears(t *testing.T) {
	cart := newTestCart()
	p := domain.Product{ID: 1, Name: "Laptop", Price: 12.25, TotalItemsInStock: 5}
	require.NoError(t, cart.AddToCart(p))
	require.NoError(t, cart.AddToCart(p))

	total, err := cart.Checkout()
	require.NoError(t, err)
	assert.InDelta(t, 24.50, total, 1e-9)
	assert.Empty(t, cart.Items())
}
