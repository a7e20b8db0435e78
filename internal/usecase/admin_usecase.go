package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/domain"
)

var (
	// ErrNoPendingDelete is returned when a delete is confirmed without a
	// staged target.
	ErrNoPendingDelete = errors.New("no delete is pending")
	// ErrFormClosed is returned when a form is submitted without being opened.
	ErrFormClosed = errors.New("no form is open")
)

// ProductForm holds the raw text of the product form fields. Numeric fields
// stay strings until submit, when they are parsed and validated.
type ProductForm struct {
	Name              string `json:"name"`
	Price             string `json:"price"`
	TotalItemsInStock string `json:"totalItemsInStock"`
	CategoryID        string `json:"categoryId"`
	ImageURL          string `json:"imageUrl"`
}

// CategoryForm holds the raw text of the category form.
type CategoryForm struct {
	Name string `json:"name"`
}

// ProductFormState is the current product form as seen by the view.
type ProductFormState struct {
	Open      bool        `json:"open"`
	EditingID int         `json:"editingId,omitempty"`
	Form      ProductForm `json:"form"`
}

// CategoryFormState is the current category form as seen by the view.
type CategoryFormState struct {
	Open      bool         `json:"open"`
	EditingID int          `json:"editingId,omitempty"`
	Form      CategoryForm `json:"form"`
}

// AdminUseCase drives the two admin CRUD flows. The backend stays the single
// source of truth: every successful mutation triggers a refetch of the
// affected list instead of patching local state, and a failed mutation
// leaves both the local lists and the open form untouched.
type AdminUseCase interface {
	LoadAll(ctx context.Context) error
	Products() []domain.Product
	Categories() []domain.Category

	BeginCreateProduct()
	BeginEditProduct(id int) error
	SetProductForm(form ProductForm)
	ProductForm() ProductFormState
	SubmitProduct(ctx context.Context) error
	CloseProductForm()

	StageProductDelete(id int)
	ConfirmProductDelete(ctx context.Context) error
	CancelProductDelete()

	BeginCreateCategory()
	BeginEditCategory(id int) error
	SetCategoryForm(form CategoryForm)
	CategoryForm() CategoryFormState
	SubmitCategory(ctx context.Context) error
	CloseCategoryForm()

	StageCategoryDelete(id int)
	ConfirmCategoryDelete(ctx context.Context) error
	CancelCategoryDelete()

	Reset()
}

type adminUseCase struct {
	productAPI  domain.ProductAPI
	categoryAPI domain.CategoryAPI
	log         *logrus.Logger

	mu         sync.Mutex
	products   []domain.Product
	categories []domain.Category

	productFormOpen bool
	editingProduct  *domain.Product
	productForm     ProductForm
	pendingProduct  int

	categoryFormOpen bool
	editingCategory  *domain.Category
	categoryForm     CategoryForm
	pendingCategory  int
}

func NewAdminUseCase(productAPI domain.ProductAPI, categoryAPI domain.CategoryAPI, logger *logrus.Logger) AdminUseCase {
	return &adminUseCase{
		productAPI:  productAPI,
		categoryAPI: categoryAPI,
		log:         logger,
	}
}

// LoadAll fetches both lists on admin page entry. A product fetch failure is
// page-level; a category fetch failure is logged but does not replace the
// page.
func (uc *adminUseCase) LoadAll(ctx context.Context) error {
	if err := uc.refetchProducts(ctx); err != nil {
		return err
	}
	if err := uc.refetchCategories(ctx); err != nil {
		uc.log.Errorf("Use Case: Failed to fetch categories: %v", err)
	}
	return nil
}

func (uc *adminUseCase) refetchProducts(ctx context.Context) error {
	uc.log.Info("Use Case: Fetching admin product list")
	products, err := uc.productAPI.GetAll(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to fetch products: %v", err)
		return fmt.Errorf("failed to fetch products: %w", err)
	}
	uc.mu.Lock()
	uc.products = products
	uc.mu.Unlock()
	return nil
}

func (uc *adminUseCase) refetchCategories(ctx context.Context) error {
	uc.log.Info("Use Case: Fetching admin category list")
	categories, err := uc.categoryAPI.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch categories: %w", err)
	}
	uc.mu.Lock()
	uc.categories = categories
	uc.mu.Unlock()
	return nil
}

func (uc *adminUseCase) Products() []domain.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]domain.Product, len(uc.products))
	copy(out, uc.products)
	return out
}

func (uc *adminUseCase) Categories() []domain.Category {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]domain.Category, len(uc.categories))
	copy(out, uc.categories)
	return out
}

// BeginCreateProduct opens the form in create mode with cleared fields. The
// category defaults to the first available category when one exists.
func (uc *adminUseCase) BeginCreateProduct() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.editingProduct = nil
	uc.productForm = ProductForm{}
	if len(uc.categories) > 0 {
		uc.productForm.CategoryID = strconv.Itoa(uc.categories[0].ID)
	}
	uc.productFormOpen = true
	uc.log.Info("Use Case: Opened product form in create mode")
}

// BeginEditProduct opens the form in update mode, prepopulated from the
// cached product's current field values.
func (uc *adminUseCase) BeginEditProduct(id int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.products {
		if uc.products[i].ID == id {
			p := uc.products[i]
			uc.editingProduct = &p
			uc.productForm = ProductForm{
				Name:              p.Name,
				Price:             strconv.FormatFloat(p.Price, 'f', -1, 64),
				TotalItemsInStock: strconv.Itoa(p.TotalItemsInStock),
				ImageURL:          p.ImageURL,
			}
			switch {
			case p.Category != nil:
				uc.productForm.CategoryID = strconv.Itoa(p.Category.ID)
			case len(uc.categories) > 0:
				uc.productForm.CategoryID = strconv.Itoa(uc.categories[0].ID)
			}
			uc.productFormOpen = true
			uc.log.Infof("Use Case: Opened product form in edit mode for ID %d", id)
			return nil
		}
	}
	uc.log.Warnf("Use Case: Product ID %d not found for edit", id)
	return fmt.Errorf("product with id %d not found", id)
}

func (uc *adminUseCase) SetProductForm(form ProductForm) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.productForm = form
}

func (uc *adminUseCase) ProductForm() ProductFormState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	state := ProductFormState{Open: uc.productFormOpen, Form: uc.productForm}
	if uc.editingProduct != nil {
		state.EditingID = uc.editingProduct.ID
	}
	return state
}

// SubmitProduct parses the form, sends a create or update depending on the
// editing target, and refetches the product list on success. On failure the
// form stays open with the entered values intact.
func (uc *adminUseCase) SubmitProduct(ctx context.Context) error {
	uc.mu.Lock()
	if !uc.productFormOpen {
		uc.mu.Unlock()
		return ErrFormClosed
	}
	form := uc.productForm
	editing := uc.editingProduct
	uc.mu.Unlock()

	payload, err := parseProductForm(form)
	if err != nil {
		uc.log.Warnf("Use Case: Product form validation failed: %v", err)
		return err
	}

	if editing != nil {
		_, err = uc.productAPI.Update(ctx, editing.ID, *payload)
	} else {
		_, err = uc.productAPI.Create(ctx, *payload)
	}
	if err != nil {
		uc.log.Errorf("Use Case: Failed to save product: %v", err)
		return fmt.Errorf("failed to save product: %w", err)
	}

	if err := uc.refetchProducts(ctx); err != nil {
		return err
	}

	uc.mu.Lock()
	uc.productFormOpen = false
	uc.editingProduct = nil
	uc.productForm = ProductForm{}
	uc.mu.Unlock()
	uc.log.Info("Use Case: Product saved and list resynchronized")
	return nil
}

func (uc *adminUseCase) CloseProductForm() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.productFormOpen = false
	uc.editingProduct = nil
	uc.productForm = ProductForm{}
}

func (uc *adminUseCase) StageProductDelete(id int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.pendingProduct = id
	uc.log.Infof("Use Case: Staged product ID %d for deletion", id)
}

// ConfirmProductDelete executes the staged delete and refetches the product
// list. The staged id is cleared either way; on failure the entity remains
// because the list is never patched locally.
func (uc *adminUseCase) ConfirmProductDelete(ctx context.Context) error {
	uc.mu.Lock()
	id := uc.pendingProduct
	uc.pendingProduct = 0
	uc.mu.Unlock()
	if id == 0 {
		return ErrNoPendingDelete
	}

	if err := uc.productAPI.Delete(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("failed to delete product: %w", err)
	}
	uc.log.Infof("Use Case: Product ID %d deleted", id)
	return uc.refetchProducts(ctx)
}

func (uc *adminUseCase) CancelProductDelete() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.pendingProduct = 0
}

func (uc *adminUseCase) BeginCreateCategory() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.editingCategory = nil
	uc.categoryForm = CategoryForm{}
	uc.categoryFormOpen = true
	uc.log.Info("Use Case: Opened category form in create mode")
}

func (uc *adminUseCase) BeginEditCategory(id int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.categories {
		if uc.categories[i].ID == id {
			c := uc.categories[i]
			uc.editingCategory = &c
			uc.categoryForm = CategoryForm{Name: c.Name}
			uc.categoryFormOpen = true
			uc.log.Infof("Use Case: Opened category form in edit mode for ID %d", id)
			return nil
		}
	}
	uc.log.Warnf("Use Case: Category ID %d not found for edit", id)
	return fmt.Errorf("category with id %d not found", id)
}

func (uc *adminUseCase) SetCategoryForm(form CategoryForm) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.categoryForm = form
}

func (uc *adminUseCase) CategoryForm() CategoryFormState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	state := CategoryFormState{Open: uc.categoryFormOpen, Form: uc.categoryForm}
	if uc.editingCategory != nil {
		state.EditingID = uc.editingCategory.ID
	}
	return state
}

func (uc *adminUseCase) SubmitCategory(ctx context.Context) error {
	uc.mu.Lock()
	if !uc.categoryFormOpen {
		uc.mu.Unlock()
		return ErrFormClosed
	}
	form := uc.categoryForm
	editing := uc.editingCategory
	uc.mu.Unlock()

	payload := domain.CategoryPayload{Name: form.Name}
	var err error
	if editing != nil {
		_, err = uc.categoryAPI.Update(ctx, editing.ID, payload)
	} else {
		_, err = uc.categoryAPI.Create(ctx, payload)
	}
	if err != nil {
		uc.log.Errorf("Use Case: Failed to save category: %v", err)
		return fmt.Errorf("failed to save category: %w", err)
	}

	if err := uc.refetchCategories(ctx); err != nil {
		return err
	}

	uc.mu.Lock()
	uc.categoryFormOpen = false
	uc.editingCategory = nil
	uc.categoryForm = CategoryForm{}
	uc.mu.Unlock()
	uc.log.Info("Use Case: Category saved and list resynchronized")
	return nil
}

func (uc *adminUseCase) CloseCategoryForm() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.categoryFormOpen = false
	uc.editingCategory = nil
	uc.categoryForm = CategoryForm{}
}

func (uc *adminUseCase) StageCategoryDelete(id int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.pendingCategory = id
	uc.log.Infof("Use Case: Staged category ID %d for deletion", id)
}

// ConfirmCategoryDelete executes the staged delete. On success both lists
// are refetched: removing a category changes which category name products
// display. The usual failure is a category still referenced by products; the
// backend's message rides inside the returned error.
func (uc *adminUseCase) ConfirmCategoryDelete(ctx context.Context) error {
	uc.mu.Lock()
	id := uc.pendingCategory
	uc.pendingCategory = 0
	uc.mu.Unlock()
	if id == 0 {
		return ErrNoPendingDelete
	}

	if err := uc.categoryAPI.Delete(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Failed to delete category ID %d: %v", id, err)
		return fmt.Errorf("failed to delete category (make sure no products are assigned to it): %w", err)
	}
	uc.log.Infof("Use Case: Category ID %d deleted", id)

	if err := uc.refetchCategories(ctx); err != nil {
		return err
	}
	return uc.refetchProducts(ctx)
}

func (uc *adminUseCase) CancelCategoryDelete() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.pendingCategory = 0
}

// Reset discards all cached lists and form state, used when the session ends.
func (uc *adminUseCase) Reset() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.products = nil
	uc.categories = nil
	uc.productFormOpen = false
	uc.editingProduct = nil
	uc.productForm = ProductForm{}
	uc.pendingProduct = 0
	uc.categoryFormOpen = false
	uc.editingCategory = nil
	uc.categoryForm = CategoryForm{}
	uc.pendingCategory = 0
}

// parseProductForm converts the raw form text into the backend payload.
// Non-numeric price, stock or category input is rejected here rather than
// forwarded: the wire format cannot carry a NaN, so the backend's validation
// gate is pulled forward into the client.
func parseProductForm(form ProductForm) (*domain.ProductPayload, error) {
	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: must be a number", form.Price)
	}
	stock, err := strconv.Atoi(form.TotalItemsInStock)
	if err != nil {
		return nil, fmt.Errorf("invalid stock %q: must be a whole number", form.TotalItemsInStock)
	}
	categoryID, err := strconv.Atoi(form.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category id %q: must be a whole number", form.CategoryID)
	}

	return &domain.ProductPayload{
		Name:              form.Name,
		Price:             price,
		TotalItemsInStock: stock,
		CategoryID:        categoryID,
		ImageURL:          form.ImageURL,
	}, nil
}
