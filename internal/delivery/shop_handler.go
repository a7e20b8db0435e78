package delivery

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/usecase"
)

// ShopHandler serves the storefront: the filtered catalog, the cart and the
// simulated checkout.
type ShopHandler struct {
	catalog usecase.CatalogUseCase
	cart    usecase.CartUseCase
	log     *logrus.Logger
}

func NewShopHandler(catalog usecase.CatalogUseCase, cart usecase.CartUseCase, logger *logrus.Logger) *ShopHandler {
	return &ShopHandler{
		catalog: catalog,
		cart:    cart,
		log:     logger,
	}
}

func (h *ShopHandler) RegisterRoutes(router gin.IRouter) {
	shop := router.Group("/shop")
	{
		shop.GET("", h.Browse)
		shop.GET("/products/:id", h.ProductDetail)
		shop.GET("/cart", h.Cart)
		shop.POST("/cart", h.AddToCart)
		shop.PUT("/cart/:id", h.UpdateQuantity)
		shop.DELETE("/cart/:id", h.RemoveFromCart)
		shop.POST("/checkout", h.Checkout)
	}
}

// Browse fetches the catalog and applies the search and category filters
// from the query string. A fetch failure replaces the whole view with a
// page-level error; there is no automatic retry.
func (h *ShopHandler) Browse(c *gin.Context) {
	if err := h.catalog.LoadCatalog(c.Request.Context()); err != nil {
		ErrorResponse(c, mapErrorToStatus(err),
			"Failed to fetch products. Please ensure the backend is running.")
		return
	}

	searchTerm := c.Query("q")
	category := c.DefaultQuery("category", usecase.AllCategories)
	products := h.catalog.Filter(searchTerm, category)

	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", gin.H{
		"products":   products,
		"categories": h.catalog.CategoryNames(),
		"cartCount":  h.cart.Count(),
	})
}

// ProductDetail serves the product modal from the cached catalog.
func (h *ShopHandler) ProductDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, ok := h.catalog.ProductByID(id)
	if !ok {
		ErrorResponse(c, http.StatusNotFound, "Product not found")
		return
	}
	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ShopHandler) Cart(c *gin.Context) {
	items := h.cart.Items()
	total := h.cart.TotalPrice()
	SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", gin.H{
		"items":        items,
		"total":        total,
		"totalDisplay": fmt.Sprintf("%.2f", total),
	})
}

type addToCartRequest struct {
	ProductID int `json:"productId" form:"productId"`
}

func (h *ShopHandler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		h.log.Warnf("Failed to bind add-to-cart request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, ok := h.catalog.ProductByID(req.ProductID)
	if !ok {
		ErrorResponse(c, http.StatusNotFound, "Product not found")
		return
	}

	if err := h.cart.AddToCart(*product); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Product added to cart", gin.H{
		"cartCount": h.cart.Count(),
	})
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" form:"quantity"`
}

func (h *ShopHandler) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBind(&req); err != nil {
		h.log.Warnf("Failed to bind quantity update for product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.cart.UpdateQuantity(id, req.Quantity); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Cart updated", gin.H{
		"cartCount": h.cart.Count(),
	})
}

func (h *ShopHandler) RemoveFromCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	h.cart.RemoveFromCart(id)
	SuccessResponse(c, http.StatusOK, "Cart updated", gin.H{
		"cartCount": h.cart.Count(),
	})
}

// Checkout reports the order total and empties the cart. An empty cart is a
// validation error, not an order.
func (h *ShopHandler) Checkout(c *gin.Context) {
	total, err := h.cart.Checkout()
	if err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Your cart is empty!")
		return
	}
	SuccessResponse(c, http.StatusOK,
		fmt.Sprintf("Order placed successfully! Total: ₹%.2f", total), gin.H{
			"total": total,
		})
}
