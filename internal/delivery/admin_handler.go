package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/usecase"
)

// AdminHandler drives the admin console: both CRUD flows with their forms
// and staged deletes.
type AdminHandler struct {
	admin usecase.AdminUseCase
	log   *logrus.Logger
}

func NewAdminHandler(admin usecase.AdminUseCase, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		admin: admin,
		log:   logger,
	}
}

func (h *AdminHandler) RegisterRoutes(router gin.IRouter) {
	admin := router.Group("/admin")
	{
		admin.GET("", h.Overview)

		products := admin.Group("/products")
		{
			products.POST("/form/create", h.OpenProductCreate)
			products.POST("/form/edit/:id", h.OpenProductEdit)
			products.GET("/form", h.ProductForm)
			products.POST("/form/submit", h.SubmitProduct)
			products.POST("/form/close", h.CloseProductForm)
			products.POST("/:id/delete", h.StageProductDelete)
			products.POST("/delete/confirm", h.ConfirmProductDelete)
			products.POST("/delete/cancel", h.CancelProductDelete)
		}

		categories := admin.Group("/categories")
		{
			categories.POST("/form/create", h.OpenCategoryCreate)
			categories.POST("/form/edit/:id", h.OpenCategoryEdit)
			categories.GET("/form", h.CategoryForm)
			categories.POST("/form/submit", h.SubmitCategory)
			categories.POST("/form/close", h.CloseCategoryForm)
			categories.POST("/:id/delete", h.StageCategoryDelete)
			categories.POST("/delete/confirm", h.ConfirmCategoryDelete)
			categories.POST("/delete/cancel", h.CancelCategoryDelete)
		}
	}
}

// Overview fetches both lists on console entry.
func (h *AdminHandler) Overview(c *gin.Context) {
	if err := h.admin.LoadAll(c.Request.Context()); err != nil {
		ErrorResponse(c, mapErrorToStatus(err),
			"Failed to fetch products. Please ensure the backend is running.")
		return
	}
	SuccessResponse(c, http.StatusOK, "Admin data retrieved successfully", gin.H{
		"products":   h.admin.Products(),
		"categories": h.admin.Categories(),
	})
}

func (h *AdminHandler) OpenProductCreate(c *gin.Context) {
	h.admin.BeginCreateProduct()
	SuccessResponse(c, http.StatusOK, "Product form opened", h.admin.ProductForm())
}

func (h *AdminHandler) OpenProductEdit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	if err := h.admin.BeginEditProduct(id); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Product form opened", h.admin.ProductForm())
}

func (h *AdminHandler) ProductForm(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Product form state", h.admin.ProductForm())
}

// SubmitProduct saves the entered values. On failure the form keeps them so
// the admin can correct and retry.
func (h *AdminHandler) SubmitProduct(c *gin.Context) {
	var form usecase.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Warnf("Failed to bind product form: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	h.admin.SetProductForm(form)

	if err := h.admin.SubmitProduct(c.Request.Context()); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to save product. Please try again.")
		return
	}
	SuccessResponse(c, http.StatusOK, "Product saved successfully", gin.H{
		"products": h.admin.Products(),
	})
}

func (h *AdminHandler) CloseProductForm(c *gin.Context) {
	h.admin.CloseProductForm()
	SuccessResponse(c, http.StatusOK, "Product form closed", nil)
}

func (h *AdminHandler) StageProductDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	h.admin.StageProductDelete(id)
	SuccessResponse(c, http.StatusOK, "Are you sure you want to delete this product?", gin.H{
		"confirmPath": "/admin/products/delete/confirm",
	})
}

func (h *AdminHandler) ConfirmProductDelete(c *gin.Context) {
	if err := h.admin.ConfirmProductDelete(c.Request.Context()); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to delete product. Please try again.")
		return
	}
	SuccessResponse(c, http.StatusOK, "Product deleted successfully", gin.H{
		"products": h.admin.Products(),
	})
}

func (h *AdminHandler) CancelProductDelete(c *gin.Context) {
	h.admin.CancelProductDelete()
	SuccessResponse(c, http.StatusOK, "Delete cancelled", nil)
}

func (h *AdminHandler) OpenCategoryCreate(c *gin.Context) {
	h.admin.BeginCreateCategory()
	SuccessResponse(c, http.StatusOK, "Category form opened", h.admin.CategoryForm())
}

func (h *AdminHandler) OpenCategoryEdit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}
	if err := h.admin.BeginEditCategory(id); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Category form opened", h.admin.CategoryForm())
}

func (h *AdminHandler) CategoryForm(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Category form state", h.admin.CategoryForm())
}

func (h *AdminHandler) SubmitCategory(c *gin.Context) {
	var form usecase.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Warnf("Failed to bind category form: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	h.admin.SetCategoryForm(form)

	if err := h.admin.SubmitCategory(c.Request.Context()); err != nil {
		ErrorResponse(c, mapErrorToStatus(err), "Failed to save category. Please try again.")
		return
	}
	SuccessResponse(c, http.StatusOK, "Category saved successfully", gin.H{
		"categories": h.admin.Categories(),
	})
}

func (h *AdminHandler) CloseCategoryForm(c *gin.Context) {
	h.admin.CloseCategoryForm()
	SuccessResponse(c, http.StatusOK, "Category form closed", nil)
}

func (h *AdminHandler) StageCategoryDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}
	h.admin.StageCategoryDelete(id)
	SuccessResponse(c, http.StatusOK, "Are you sure you want to delete this category?", gin.H{
		"confirmPath": "/admin/categories/delete/confirm",
	})
}

// ConfirmCategoryDelete surfaces the referential-constraint failure message
// the admin needs when products still reference the category.
func (h *AdminHandler) ConfirmCategoryDelete(c *gin.Context) {
	if err := h.admin.ConfirmCategoryDelete(c.Request.Context()); err != nil {
		ErrorResponse(c, mapErrorToStatus(err),
			"Failed to delete category. Make sure no products are assigned to it.")
		return
	}
	SuccessResponse(c, http.StatusOK, "Category deleted successfully", gin.H{
		"categories": h.admin.Categories(),
		"products":   h.admin.Products(),
	})
}

func (h *AdminHandler) CancelCategoryDelete(c *gin.Context) {
	h.admin.CancelCategoryDelete()
	SuccessResponse(c, http.StatusOK, "Delete cancelled", nil)
}
