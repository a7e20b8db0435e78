package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/domain"
)

type categoryClient struct {
	baseClient
}

// NewCategoryClient returns a domain.CategoryAPI backed by the REST category
// endpoints under baseURL.
func NewCategoryClient(baseURL string, timeout time.Duration, logger *logrus.Logger) domain.CategoryAPI {
	return &categoryClient{
		baseClient: newBaseClient(baseURL, timeout, logger, "CategoryClient"),
	}
}

func (c *categoryClient) GetAll(ctx context.Context) ([]domain.Category, error) {
	url := fmt.Sprintf("%s/categories", c.baseURL)
	c.log.Debugf("CategoryClient: Requesting category list from %s", url)

	var categories []domain.Category
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	c.log.Infof("CategoryClient: Retrieved %d categories", len(categories))
	return categories, nil
}

func (c *categoryClient) Create(ctx context.Context, payload domain.CategoryPayload) (*domain.Category, error) {
	url := fmt.Sprintf("%s/categories", c.baseURL)
	c.log.Debugf("CategoryClient: Creating category '%s'", payload.Name)

	var category domain.Category
	if err := c.doJSON(ctx, http.MethodPost, url, payload, &category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	c.log.Infof("CategoryClient: Category created with ID %d", category.ID)
	return &category, nil
}

func (c *categoryClient) Update(ctx context.Context, id int, payload domain.CategoryPayload) (*domain.Category, error) {
	url := fmt.Sprintf("%s/categories/%d", c.baseURL, id)
	c.log.Debugf("CategoryClient: Updating category ID %d", id)

	var category domain.Category
	if err := c.doJSON(ctx, http.MethodPut, url, payload, &category); err != nil {
		return nil, fmt.Errorf("failed to update category %d: %w", id, err)
	}

	c.log.Infof("CategoryClient: Category updated for ID %d", category.ID)
	return &category, nil
}

func (c *categoryClient) Delete(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/categories/%d", c.baseURL, id)
	c.log.Debugf("CategoryClient: Deleting category ID %d", id)

	if err := c.doJSON(ctx, http.MethodDelete, url, nil, nil); err != nil {
		// The usual cause is products still referencing the category; the
		// backend's message is preserved inside err for the admin alert.
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}

	c.log.Infof("CategoryClient: Category deleted for ID %d", id)
	return nil
}
