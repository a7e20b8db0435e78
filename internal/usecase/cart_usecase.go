package usecase

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/domain"
)

var (
	// ErrCartEmpty is reported when checkout is attempted with no lines.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrOutOfStock rejects adding a product whose stock snapshot is zero.
	ErrOutOfStock = errors.New("product is out of stock")
	// ErrStockLimit rejects raising a line past the product's stock snapshot.
	ErrStockLimit = errors.New("quantity exceeds available stock")
	// ErrAddInProgress rejects a duplicate add while one is still pending.
	ErrAddInProgress = errors.New("add to cart already in progress")
)

// CartUseCase keeps the session's cart lines. Lines hold the product
// snapshot taken at add time; no server-side stock re-check happens on cart
// mutation.
type CartUseCase interface {
	AddToCart(product domain.Product) error
	UpdateQuantity(productID, newQuantity int) error
	RemoveFromCart(productID int)
	Items() []domain.CartItem
	Count() int
	TotalPrice() float64
	Checkout() (float64, error)
	Clear()
}

type cartUseCase struct {
	addDelay time.Duration
	log      *logrus.Logger

	mu     sync.Mutex
	items  []domain.CartItem
	adding bool
}

// NewCartUseCase builds a cart with the given add-to-cart latency. The delay
// simulates upstream latency on adds; tests pass 0.
func NewCartUseCase(addDelay time.Duration, logger *logrus.Logger) CartUseCase {
	return &cartUseCase{
		addDelay: addDelay,
		log:      logger,
	}
}

// AddToCart increments the existing line for the product or appends a new
// line with quantity 1. While one add is pending, further adds are rejected.
func (uc *cartUseCase) AddToCart(product domain.Product) error {
	if product.TotalItemsInStock == 0 {
		uc.log.Warnf("Use Case: Rejected add to cart for out-of-stock product ID %d", product.ID)
		return ErrOutOfStock
	}

	uc.mu.Lock()
	if uc.adding {
		uc.mu.Unlock()
		uc.log.Warn("Use Case: Rejected duplicate add to cart while pending")
		return ErrAddInProgress
	}
	uc.adding = true
	uc.mu.Unlock()

	if uc.addDelay > 0 {
		time.Sleep(uc.addDelay)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.adding = false

	for i := range uc.items {
		if uc.items[i].Product.ID == product.ID {
			if uc.items[i].Quantity >= uc.items[i].Product.TotalItemsInStock {
				uc.log.Warnf("Use Case: Line for product ID %d already at stock limit", product.ID)
				return ErrStockLimit
			}
			uc.items[i].Quantity++
			uc.log.Infof("Use Case: Incremented cart line for product ID %d to quantity %d",
				product.ID, uc.items[i].Quantity)
			return nil
		}
	}

	uc.items = append(uc.items, domain.CartItem{Product: product, Quantity: 1})
	uc.log.Infof("Use Case: Added product ID %d to cart", product.ID)
	return nil
}

// UpdateQuantity sets the line's quantity; zero or below removes the line.
// A missing line is left alone. Raising a line past its stock snapshot is
// rejected.
func (uc *cartUseCase) UpdateQuantity(productID, newQuantity int) error {
	if newQuantity <= 0 {
		uc.RemoveFromCart(productID)
		return nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.items {
		if uc.items[i].Product.ID == productID {
			if newQuantity > uc.items[i].Product.TotalItemsInStock {
				uc.log.Warnf("Use Case: Rejected quantity %d for product ID %d (stock %d)",
					newQuantity, productID, uc.items[i].Product.TotalItemsInStock)
				return ErrStockLimit
			}
			uc.items[i].Quantity = newQuantity
			uc.log.Infof("Use Case: Set cart quantity for product ID %d to %d", productID, newQuantity)
			return nil
		}
	}
	return nil
}

// RemoveFromCart deletes the line; a no-op when absent.
func (uc *cartUseCase) RemoveFromCart(productID int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.items {
		if uc.items[i].Product.ID == productID {
			uc.items = append(uc.items[:i], uc.items[i+1:]...)
			uc.log.Infof("Use Case: Removed product ID %d from cart", productID)
			return
		}
	}
}

func (uc *cartUseCase) Items() []domain.CartItem {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]domain.CartItem, len(uc.items))
	copy(out, uc.items)
	return out
}

func (uc *cartUseCase) Count() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.items)
}

// TotalPrice sums price times quantity over all lines. The running total is
// not rounded; display formatting rounds to two places at the edge.
func (uc *cartUseCase) TotalPrice() float64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.totalLocked()
}

func (uc *cartUseCase) totalLocked() float64 {
	var total float64
	for i := range uc.items {
		total += uc.items[i].Subtotal()
	}
	return total
}

// Checkout reports the order total and clears the cart. This is a simulated
// checkout: no payment or inventory decrement reaches the backend.
func (uc *cartUseCase) Checkout() (float64, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if len(uc.items) == 0 {
		uc.log.Warn("Use Case: Checkout attempted with empty cart")
		return 0, ErrCartEmpty
	}

	total := uc.totalLocked()
	uc.items = nil
	uc.log.Infof("Use Case: Checkout completed for total %.2f", total)
	return total, nil
}

// Clear drops every line, used when the session ends.
func (uc *cartUseCase) Clear() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.items = nil
}
