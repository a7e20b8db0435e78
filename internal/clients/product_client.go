package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/domain"
)

type productClient struct {
	baseClient
}

// NewProductClient returns a domain.ProductAPI backed by the REST catalog
// endpoints under baseURL.
func NewProductClient(baseURL string, timeout time.Duration, logger *logrus.Logger) domain.ProductAPI {
	return &productClient{
		baseClient: newBaseClient(baseURL, timeout, logger, "ProductClient"),
	}
}

func (c *productClient) GetAll(ctx context.Context) ([]domain.Product, error) {
	url := fmt.Sprintf("%s/products", c.baseURL)
	c.log.Debugf("ProductClient: Requesting product list from %s", url)

	var products []domain.Product
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	c.log.Infof("ProductClient: Retrieved %d products", len(products))
	return products, nil
}

func (c *productClient) Create(ctx context.Context, payload domain.ProductPayload) (*domain.Product, error) {
	url := fmt.Sprintf("%s/products", c.baseURL)
	c.log.Debugf("ProductClient: Creating product '%s'", payload.Name)

	var product domain.Product
	if err := c.doJSON(ctx, http.MethodPost, url, payload, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	c.log.Infof("ProductClient: Product created with ID %d", product.ID)
	return &product, nil
}

func (c *productClient) Update(ctx context.Context, id int, payload domain.ProductPayload) (*domain.Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)
	c.log.Debugf("ProductClient: Updating product ID %d", id)

	var product domain.Product
	if err := c.doJSON(ctx, http.MethodPut, url, payload, &product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}

	c.log.Infof("ProductClient: Product updated for ID %d", product.ID)
	return &product, nil
}

func (c *productClient) Delete(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)
	c.log.Debugf("ProductClient: Deleting product ID %d", id)

	if err := c.doJSON(ctx, http.MethodDelete, url, nil, nil); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}

	c.log.Infof("ProductClient: Product deleted for ID %d", id)
	return nil
}
