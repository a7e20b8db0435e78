package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var errBackendDown = errors.New("backend returned status 500")

// fakeProductAPI is an in-memory stand-in for the backend product endpoints.
// Setting fail rejects every call, the way an unreachable backend would.
type fakeProductAPI struct {
	products []domain.Product
	nextID   int
	fail     bool
	getCalls int
}

func (f *fakeProductAPI) GetAll(ctx context.Context) ([]domain.Product, error) {
	if f.fail {
		return nil, errBackendDown
	}
	f.getCalls++
	out := make([]domain.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeProductAPI) Create(ctx context.Context, payload domain.ProductPayload) (*domain.Product, error) {
	if f.fail {
		return nil, errBackendDown
	}
	f.nextID++
	p := domain.Product{
		ID:                f.nextID,
		Name:              payload.Name,
		Price:             payload.Price,
		TotalItemsInStock: payload.TotalItemsInStock,
		ImageURL:          payload.ImageURL,
	}
	f.products = append(f.products, p)
	return &p, nil
}

func (f *fakeProductAPI) Update(ctx context.Context, id int, payload domain.ProductPayload) (*domain.Product, error) {
	if f.fail {
		return nil, errBackendDown
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Name = payload.Name
			f.products[i].Price = payload.Price
			f.products[i].TotalItemsInStock = payload.TotalItemsInStock
			f.products[i].ImageURL = payload.ImageURL
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, errors.New("product not found")
}

func (f *fakeProductAPI) Delete(ctx context.Context, id int) error {
	if f.fail {
		return errBackendDown
	}
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return errors.New("product not found")
}

// fakeCategoryAPI mirrors fakeProductAPI for categories. failDelete models
// the backend rejecting a delete for a category still referenced by
// products.
type fakeCategoryAPI struct {
	categories []domain.Category
	nextID     int
	fail       bool
	failDelete bool
}

func (f *fakeCategoryAPI) GetAll(ctx context.Context) ([]domain.Category, error) {
	if f.fail {
		return nil, errBackendDown
	}
	out := make([]domain.Category, len(f.categories))
	copy(out, f.categories)
	return out, nil
}

func (f *fakeCategoryAPI) Create(ctx context.Context, payload domain.CategoryPayload) (*domain.Category, error) {
	if f.fail {
		return nil, errBackendDown
	}
	f.nextID++
	cat := domain.Category{ID: f.nextID, Name: payload.Name}
	f.categories = append(f.categories, cat)
	return &cat, nil
}

func (f *fakeCategoryAPI) Update(ctx context.Context, id int, payload domain.CategoryPayload) (*domain.Category, error) {
	if f.fail {
		return nil, errBackendDown
	}
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories[i].Name = payload.Name
			cat := f.categories[i]
			return &cat, nil
		}
	}
	return nil, errors.New("category not found")
}

func (f *fakeCategoryAPI) Delete(ctx context.Context, id int) error {
	if f.fail || f.failDelete {
		return errors.New("backend returned status 409: category is still referenced by products")
	}
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return errors.New("category not found")
}
