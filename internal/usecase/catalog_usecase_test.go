package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-abishek/online-shopping/internal/domain"
)

func sampleProducts() []domain.Product {
	electronics := &domain.Category{ID: 1, Name: "Electronics"}
	grocery := &domain.Category{ID: 2, Name: "Grocery"}
	return []domain.Product{
		{ID: 1, Name: "Laptop Pro", Price: 999.99, TotalItemsInStock: 5, Category: electronics},
		{ID: 2, Name: "Rice Bag", Price: 25.50, TotalItemsInStock: 40, Category: grocery},
		{ID: 3, Name: "Laptop Sleeve", Price: 19.00, TotalItemsInStock: 12, Category: electronics},
		{ID: 4, Name: "Mystery Box", Price: 5.00, TotalItemsInStock: 3},
	}
}

func TestFilterProductsBySearchTerm(t *testing.T) {
	products := sampleProducts()

	got := FilterProducts(products, "laptop", AllCategories)
	require.Len(t, got, 2)
	assert.Equal(t, "Laptop Pro", got[0].Name)
	assert.Equal(t, "Laptop Sleeve", got[1].Name)

	// Case-insensitive in both directions.
	assert.Len(t, FilterProducts(products, "LAPTOP", AllCategories), 2)
	assert.Len(t, FilterProducts(products, "rIcE", AllCategories), 1)
}

func TestFilterProductsEmptySearchMatchesAll(t *testing.T) {
	products := sampleProducts()
	got := FilterProducts(products, "", AllCategories)
	assert.Equal(t, products, got)
}

func TestFilterProductsByCategory(t *testing.T) {
	products := sampleProducts()

	got := FilterProducts(products, "", "Electronics")
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, "Electronics", p.CategoryName())
	}

	// Combined: category AND search term.
	got = FilterProducts(products, "sleeve", "Electronics")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

func TestFilterProductsNoMatchesIsEmptyNotError(t *testing.T) {
	products := sampleProducts()
	assert.Empty(t, FilterProducts(products, "zzz", AllCategories))
	assert.Empty(t, FilterProducts(products, "", "Toys"))
}

func TestFilterProductsPreservesOrder(t *testing.T) {
	products := sampleProducts()
	got := FilterProducts(products, "", "Electronics")
	require.Len(t, got, 2)
	assert.True(t, got[0].ID < got[1].ID)
}

func TestCategoryNamesFirstSeenOrder(t *testing.T) {
	api := &fakeProductAPI{products: sampleProducts()}
	uc := NewCatalogUseCase(api, testLogger())

	require.NoError(t, uc.LoadCatalog(context.Background()))
	// Uncategorized products contribute nothing; duplicates collapse to the
	// first occurrence.
	assert.Equal(t, []string{"Electronics", "Grocery"}, uc.CategoryNames())
}

func TestLoadCatalogFailureKeepsPreviousCache(t *testing.T) {
	api := &fakeProductAPI{products: sampleProducts()}
	uc := NewCatalogUseCase(api, testLogger())
	require.NoError(t, uc.LoadCatalog(context.Background()))

	api.fail = true
	err := uc.LoadCatalog(context.Background())
	require.Error(t, err)
	assert.Len(t, uc.Products(), 4)
}

func TestProductByID(t *testing.T) {
	api := &fakeProductAPI{products: sampleProducts()}
	uc := NewCatalogUseCase(api, testLogger())
	require.NoError(t, uc.LoadCatalog(context.Background()))

	p, ok := uc.ProductByID(2)
	require.True(t, ok)
	assert.Equal(t, "Rice Bag", p.Name)

	_, ok = uc.ProductByID(99)
	assert.False(t, ok)
}
