package delivery

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/k-abishek/online-shopping/internal/domain"
	"github.com/k-abishek/online-shopping/internal/usecase"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// mapErrorToStatus sorts engine errors into the storefront's taxonomy:
// validation problems are client errors, duplicate submissions conflict, and
// anything that died talking to the backend is a bad gateway.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrCartEmpty),
		errors.Is(err, usecase.ErrOutOfStock),
		errors.Is(err, usecase.ErrStockLimit),
		errors.Is(err, usecase.ErrNoPendingDelete),
		errors.Is(err, usecase.ErrFormClosed),
		errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrAddInProgress):
		return http.StatusConflict
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "not found") {
		return http.StatusNotFound
	}
	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "must be") {
		return http.StatusBadRequest
	}
	if strings.Contains(errMsg, "failed to fetch") ||
		strings.Contains(errMsg, "backend") ||
		strings.Contains(errMsg, "failed to save") ||
		strings.Contains(errMsg, "failed to delete") {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
