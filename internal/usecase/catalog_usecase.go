package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/domain"
)

// AllCategories is the filter value that disables category filtering.
const AllCategories = "all"

// CatalogUseCase caches the fetched product list for the shop view and
// derives the filtered listing from it.
type CatalogUseCase interface {
	LoadCatalog(ctx context.Context) error
	Products() []domain.Product
	ProductByID(id int) (*domain.Product, bool)
	Filter(searchTerm, category string) []domain.Product
	CategoryNames() []string
}

type catalogUseCase struct {
	productAPI domain.ProductAPI
	log        *logrus.Logger

	mu         sync.RWMutex
	products   []domain.Product
	categories []string
}

func NewCatalogUseCase(productAPI domain.ProductAPI, logger *logrus.Logger) CatalogUseCase {
	return &catalogUseCase{
		productAPI: productAPI,
		log:        logger,
	}
}

// LoadCatalog refetches the full product list and rebuilds the offered
// category set. On failure the previous cache is left untouched so the view
// can keep showing the last successful fetch.
func (uc *catalogUseCase) LoadCatalog(ctx context.Context) error {
	uc.log.Info("Use Case: Fetching product catalog")
	products, err := uc.productAPI.GetAll(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to fetch product catalog: %v", err)
		return fmt.Errorf("failed to fetch products: %w", err)
	}

	uc.mu.Lock()
	uc.products = products
	uc.categories = distinctCategoryNames(products)
	uc.mu.Unlock()

	uc.log.Infof("Use Case: Catalog loaded with %d products, %d categories",
		len(products), len(uc.categories))
	return nil
}

func (uc *catalogUseCase) Products() []domain.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]domain.Product, len(uc.products))
	copy(out, uc.products)
	return out
}

func (uc *catalogUseCase) ProductByID(id int) (*domain.Product, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	for i := range uc.products {
		if uc.products[i].ID == id {
			p := uc.products[i]
			return &p, true
		}
	}
	return nil, false
}

func (uc *catalogUseCase) Filter(searchTerm, category string) []domain.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return FilterProducts(uc.products, searchTerm, category)
}

func (uc *catalogUseCase) CategoryNames() []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]string, len(uc.categories))
	copy(out, uc.categories)
	return out
}

// FilterProducts narrows products to those matching the selected category
// (unless AllCategories) and containing the search term in their name,
// case-insensitively. Source order is preserved; an empty search term
// matches everything.
func FilterProducts(products []domain.Product, searchTerm, category string) []domain.Product {
	filtered := products

	if category != AllCategories && category != "" {
		narrowed := make([]domain.Product, 0, len(filtered))
		for _, p := range filtered {
			if p.CategoryName() == category {
				narrowed = append(narrowed, p)
			}
		}
		filtered = narrowed
	}

	if searchTerm != "" {
		needle := strings.ToLower(searchTerm)
		narrowed := make([]domain.Product, 0, len(filtered))
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				narrowed = append(narrowed, p)
			}
		}
		filtered = narrowed
	}

	out := make([]domain.Product, len(filtered))
	copy(out, filtered)
	return out
}

// distinctCategoryNames keeps the first-seen order of category names present
// in the product list. Uncategorized products contribute nothing.
func distinctCategoryNames(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	names := make([]string, 0, len(products))
	for _, p := range products {
		name := p.CategoryName()
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
