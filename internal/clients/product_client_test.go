package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-abishek/online-shopping/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func writeEnvelope(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	payload := map[string]interface{}{"Status": "Success", "Message": message}
	if status >= 400 {
		payload["Status"] = "Fail"
	}
	if data != nil {
		payload["Data"] = data
	}
	json.NewEncoder(w).Encode(payload)
}

func TestProductClientGetAll(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Laptop", Price: 999.99, TotalItemsInStock: 5,
			Category: &domain.Category{ID: 1, Name: "Electronics"}},
		{ID: 2, Name: "Rice Bag", Price: 25.50, TotalItemsInStock: 40},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		writeEnvelope(w, http.StatusOK, "Products retrieved successfully", products)
	}))
	defer srv.Close()

	client := NewProductClient(srv.URL, time.Second, testLogger())
	got, err := client.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Laptop", got[0].Name)
	assert.Equal(t, "Electronics", got[0].CategoryName())
	assert.Equal(t, "", got[1].CategoryName())
}

func TestProductClientCreateSendsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var payload domain.ProductPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Tablet", payload.Name)
		assert.Equal(t, 3, payload.CategoryID)

		writeEnvelope(w, http.StatusCreated, "Product created successfully", domain.Product{
			ID: 7, Name: payload.Name, Price: payload.Price,
			TotalItemsInStock: payload.TotalItemsInStock,
		})
	}))
	defer srv.Close()

	client := NewProductClient(srv.URL, time.Second, testLogger())
	created, err := client.Create(context.Background(), domain.ProductPayload{
		Name: "Tablet", Price: 299.99, TotalItemsInStock: 10, CategoryID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
}

func TestProductClientSurfacesBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, "product price must be positive", nil)
	}))
	defer srv.Close()

	client := NewProductClient(srv.URL, time.Second, testLogger())
	_, err := client.Create(context.Background(), domain.ProductPayload{Name: "Bad"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product price must be positive")
}

func TestProductClientDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/4", r.URL.Path)
		writeEnvelope(w, http.StatusOK, "Product deleted successfully", nil)
	}))
	defer srv.Close()

	client := NewProductClient(srv.URL, time.Second, testLogger())
	assert.NoError(t, client.Delete(context.Background(), 4))
}

func TestCategoryClientDeleteReferencedConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusConflict, "category is still referenced by products", nil)
	}))
	defer srv.Close()

	client := NewCategoryClient(srv.URL, time.Second, testLogger())
	err := client.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 409")
	assert.Contains(t, err.Error(), "still referenced by products")
}

func TestDashboardClientGetStats(t *testing.T) {
	stats := domain.DashboardStats{
		TotalProducts:     12,
		TotalValue:        5230.75,
		TotalItemsInStock: 180,
		Categories: []domain.Category{
			{ID: 1, Name: "Electronics"},
			{ID: 2, Name: "Grocery"},
		},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard", r.URL.Path)
		writeEnvelope(w, http.StatusOK, "Dashboard statistics retrieved successfully", stats)
	}))
	defer srv.Close()

	client := NewDashboardClient(srv.URL, time.Second, testLogger())
	got, err := client.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, stats, *got)
}

func TestClientUnreachableBackend(t *testing.T) {
	client := NewProductClient("http://127.0.0.1:1", 200*time.Millisecond, testLogger())
	_, err := client.GetAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch products")
}
