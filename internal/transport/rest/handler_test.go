package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository is a canned implementation of repository.ProductRepository.
// It records the arguments of the last call.
type mockRepository struct {
	product  repository.ProductDto
	products []repository.ProductDto
	found    bool
	error    error

	gotSkip, gotLimit int32
	gotQuery          string
	gotName           string
	gotUpdate         repository.ProductUpdateDto
	gotQuantity       int32
	searched          bool
}

func (m *mockRepository) GetProduct(_ context.Context, _ int64) (repository.ProductDto, bool, error) {
	return m.product, m.found, m.error
}

func (m *mockRepository) GetProductByName(_ context.Context, name string) (repository.ProductDto, bool, error) {
	m.gotName = name
	return m.product, m.found, m.error
}

func (m *mockRepository) GetProducts(_ context.Context, skip, limit int32) ([]repository.ProductDto, error) {
	m.gotSkip, m.gotLimit = skip, limit
	return m.products, m.error
}

func (m *mockRepository) SearchProducts(_ context.Context, query string, skip, limit int32) ([]repository.ProductDto, error) {
	m.searched = true
	m.gotQuery, m.gotSkip, m.gotLimit = query, skip, limit
	return m.products, m.error
}

func (m *mockRepository) CreateProduct(_ context.Context, _ repository.ProductCreateDto) (repository.ProductDto, error) {
	return m.product, m.error
}

func (m *mockRepository) UpdateProduct(_ context.Context, _ int64, update repository.ProductUpdateDto) (repository.ProductDto, bool, error) {
	m.gotUpdate = update
	return m.product, m.found, m.error
}

func (m *mockRepository) DeleteProduct(_ context.Context, _ int64) (repository.ProductDto, bool, error) {
	return m.product, m.found, m.error
}

func (m *mockRepository) SellProduct(_ context.Context, _ int64, quantity int32) (repository.ProductDto, bool, error) {
	m.gotQuantity = quantity
	return m.product, m.found, m.error
}

func (m *mockRepository) Ping(_ context.Context) error {
	return m.error
}

var widget = repository.ProductDto{ID: 1, Name: "Widget", Description: "d", Price: 19.99, Quantity: 10}

const widgetJSON = `{"id":1,"name":"Widget","description":"d","price":19.99,"quantity":10}`

func newRouter(repo repository.ProductRepository) http.Handler {
	r := chi.NewRouter()
	NewHandler(repo, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(r)
	return r
}

func serve(repo repository.ProductRepository, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rr, req)
	return rr
}

func Test_Handler_Get(t *testing.T) {
	testCases := []struct {
		name         string
		repo         *mockRepository
		target       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product found",
			repo:         &mockRepository{product: widget, found: true},
			target:       "/api/v1/products/1",
			expectedCode: http.StatusOK,
			expectedBody: widgetJSON,
		},
		{
			name:         "Error - product not found",
			repo:         &mockRepository{},
			target:       "/api/v1/products/999",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"Product not found"}`,
		},
		{
			name:         "Error - invalid id",
			repo:         &mockRepository{},
			target:       "/api/v1/products/abc",
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"Invalid ID: abc"}`,
		},
		{
			name:         "Error - store unavailable",
			repo:         &mockRepository{error: perrors.ErrStoreUnavailable},
			target:       "/api/v1/products/1",
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: `{"detail":"Service temporarily unavailable"}`,
		},
		{
			name:         "Error - unexpected",
			repo:         &mockRepository{error: errors.New("boom")},
			target:       "/api/v1/products/1",
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Failed to retrieve product"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			rr := serve(tc.repo, http.MethodGet, tc.target, "")

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_Handler_List(t *testing.T) {
	testCases := []struct {
		name          string
		target        string
		expectedCode  int
		expectedSkip  int32
		expectedLimit int32
		expectedQuery string
	}{
		{name: "defaults", target: "/api/v1/products", expectedCode: http.StatusOK, expectedSkip: 0, expectedLimit: 100},
		{name: "explicit page", target: "/api/v1/products?skip=3&limit=2", expectedCode: http.StatusOK, expectedSkip: 3, expectedLimit: 2},
		{name: "limit clamped", target: "/api/v1/products?limit=5000", expectedCode: http.StatusOK, expectedLimit: 1000},
		{name: "zero limit", target: "/api/v1/products?limit=0", expectedCode: http.StatusOK, expectedLimit: 0},
		{name: "search", target: "/api/v1/products?q=+lamp+", expectedCode: http.StatusOK, expectedLimit: 100, expectedQuery: "lamp"},
		{name: "negative skip", target: "/api/v1/products?skip=-1", expectedCode: http.StatusUnprocessableEntity},
		{name: "negative limit", target: "/api/v1/products?limit=-5", expectedCode: http.StatusUnprocessableEntity},
		{name: "non numeric limit", target: "/api/v1/products?limit=ten", expectedCode: http.StatusUnprocessableEntity},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			repo := &mockRepository{products: []repository.ProductDto{widget}}

			// when
			rr := serve(repo, http.MethodGet, tc.target, "")

			// then
			require.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedCode != http.StatusOK {
				return
			}
			assert.JSONEq(t, "["+widgetJSON+"]", rr.Body.String())
			assert.Equal(t, tc.expectedSkip, repo.gotSkip)
			assert.Equal(t, tc.expectedLimit, repo.gotLimit)
			assert.Equal(t, tc.expectedQuery != "", repo.searched)
			assert.Equal(t, tc.expectedQuery, repo.gotQuery)
		})
	}
}

func Test_Handler_List_Empty(t *testing.T) {
	rr := serve(&mockRepository{products: []repository.ProductDto{}}, http.MethodGet, "/api/v1/products?skip=50", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func Test_Handler_Create(t *testing.T) {
	testCases := []struct {
		name         string
		repo         *mockRepository
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success",
			repo:         &mockRepository{product: widget},
			body:         `{"name":"Widget","description":"d","price":19.99,"quantity":10}`,
			expectedCode: http.StatusCreated,
			expectedBody: widgetJSON,
		},
		{
			name:         "Success - zero values and empty description",
			repo:         &mockRepository{product: widget},
			body:         `{"name":"Widget","description":"","price":0,"quantity":0}`,
			expectedCode: http.StatusCreated,
			expectedBody: widgetJSON,
		},
		{
			name:         "Error - missing fields",
			repo:         &mockRepository{},
			body:         `{"name":"Widget"}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"Validation failed","validation_errors":{"description":"failed on rule: required","price":"failed on rule: required","quantity":"failed on rule: required"}}`,
		},
		{
			name:         "Error - rule violations",
			repo:         &mockRepository{},
			body:         `{"name":"","description":"d","price":-1,"quantity":-2}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"Validation failed","validation_errors":{"name":"failed on rule: min","price":"failed on rule: gte","quantity":"failed on rule: gte"}}`,
		},
		{
			name:         "Error - wrong type",
			repo:         &mockRepository{},
			body:         `{"name":"Widget","description":"d","price":"cheap","quantity":1}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"Invalid request body"}`,
		},
		{
			name:         "Error - duplicate name",
			repo:         &mockRepository{error: perrors.ErrDuplicateName},
			body:         `{"name":"Widget","description":"d","price":1,"quantity":1}`,
			expectedCode: http.StatusConflict,
			expectedBody: `{"detail":"Product with this name already exists"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			rr := serve(tc.repo, http.MethodPost, "/api/v1/products", tc.body)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_Handler_Create_NameTooLong(t *testing.T) {
	body := `{"name":"` + strings.Repeat("x", 256) + `","description":"d","price":1,"quantity":1}`
	rr := serve(&mockRepository{}, http.MethodPost, "/api/v1/products", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{"detail":"Validation failed","validation_errors":{"name":"failed on rule: max"}}`, rr.Body.String())
}

func Test_Handler_Replace(t *testing.T) {
	// given
	repo := &mockRepository{product: widget, found: true}

	// when
	rr := serve(repo, http.MethodPut, "/api/v1/products/1", `{"name":"Widget","description":"d","price":19.99,"quantity":10}`)

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, repo.gotUpdate.Name)
	require.NotNil(t, repo.gotUpdate.Description)
	require.NotNil(t, repo.gotUpdate.Price)
	require.NotNil(t, repo.gotUpdate.Quantity)
	assert.Equal(t, int32(10), *repo.gotUpdate.Quantity)

	// a partial body is not a full replacement
	rr = serve(&mockRepository{found: true}, http.MethodPut, "/api/v1/products/1", `{"quantity":5}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func Test_Handler_Update(t *testing.T) {
	testCases := []struct {
		name         string
		repo         *mockRepository
		target       string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - quantity only",
			repo:         &mockRepository{product: widget, found: true},
			target:       "/api/v1/products/1",
			body:         `{"quantity":5}`,
			expectedCode: http.StatusOK,
			expectedBody: widgetJSON,
		},
		{
			name:         "Error - not found",
			repo:         &mockRepository{},
			target:       "/api/v1/products/9",
			body:         `{"quantity":5}`,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"Product not found"}`,
		},
		{
			name:         "Error - empty name",
			repo:         &mockRepository{found: true},
			target:       "/api/v1/products/1",
			body:         `{"name":""}`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"Validation failed","validation_errors":{"name":"failed on rule: min"}}`,
		},
		{
			name:         "Error - malformed json",
			repo:         &mockRepository{found: true},
			target:       "/api/v1/products/1",
			body:         `{"quantity":`,
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"Invalid request body"}`,
		},
		{
			name:         "Error - duplicate name",
			repo:         &mockRepository{error: perrors.ErrDuplicateName},
			target:       "/api/v1/products/1",
			body:         `{"name":"Gadget"}`,
			expectedCode: http.StatusConflict,
			expectedBody: `{"detail":"Product with this name already exists"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			rr := serve(tc.repo, http.MethodPatch, tc.target, tc.body)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_Handler_Update_PassesOnlySuppliedFields(t *testing.T) {
	// given
	repo := &mockRepository{product: widget, found: true}

	// when
	rr := serve(repo, http.MethodPatch, "/api/v1/products/1", `{"quantity":7}`)

	// then
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, repo.gotUpdate.Name)
	assert.Nil(t, repo.gotUpdate.Description)
	assert.Nil(t, repo.gotUpdate.Price)
	require.NotNil(t, repo.gotUpdate.Quantity)
	assert.Equal(t, int32(7), *repo.gotUpdate.Quantity)
}

func Test_Handler_Delete(t *testing.T) {
	testCases := []struct {
		name         string
		repo         *mockRepository
		expectedCode int
		expectedBody string
	}{
		{name: "Success - returns snapshot", repo: &mockRepository{product: widget, found: true}, expectedCode: http.StatusOK, expectedBody: widgetJSON},
		{name: "Error - not found", repo: &mockRepository{}, expectedCode: http.StatusNotFound, expectedBody: `{"detail":"Product not found"}`},
		{name: "Error - unexpected", repo: &mockRepository{error: errors.New("boom")}, expectedCode: http.StatusInternalServerError, expectedBody: `{"detail":"Failed to delete product"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(tc.repo, http.MethodDelete, "/api/v1/products/1", "")
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_Handler_Sell(t *testing.T) {
	testCases := []struct {
		name         string
		repo         *mockRepository
		body         string
		expectedCode int
	}{
		{name: "Success", repo: &mockRepository{product: widget, found: true}, body: `{"quantity":2}`, expectedCode: http.StatusOK},
		{name: "Error - zero quantity", repo: &mockRepository{found: true}, body: `{"quantity":0}`, expectedCode: http.StatusUnprocessableEntity},
		{name: "Error - missing quantity", repo: &mockRepository{found: true}, body: `{}`, expectedCode: http.StatusUnprocessableEntity},
		{name: "Error - insufficient stock", repo: &mockRepository{error: perrors.ErrInsufficientStock}, body: `{"quantity":99}`, expectedCode: http.StatusConflict},
		{name: "Error - not found", repo: &mockRepository{}, body: `{"quantity":1}`, expectedCode: http.StatusNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(tc.repo, http.MethodPost, "/api/v1/products/1/sell", tc.body)
			assert.Equal(t, tc.expectedCode, rr.Code)
		})
	}
}

func Test_Handler_GetByName(t *testing.T) {
	testCases := []struct {
		name         string
		repo         *mockRepository
		target       string
		expectedName string
		expectedCode int
	}{
		{name: "plain", repo: &mockRepository{product: widget, found: true}, target: "/api/v1/products/by-name/Widget", expectedName: "Widget", expectedCode: http.StatusOK},
		{name: "escaped space", repo: &mockRepository{product: widget, found: true}, target: "/api/v1/products/by-name/Desk%20Lamp", expectedName: "Desk Lamp", expectedCode: http.StatusOK},
		{name: "escaped slash", repo: &mockRepository{product: widget, found: true}, target: "/api/v1/products/by-name/A%2FB", expectedName: "A/B", expectedCode: http.StatusOK},
		{name: "missing", repo: &mockRepository{}, target: "/api/v1/products/by-name/Nope", expectedName: "Nope", expectedCode: http.StatusNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(tc.repo, http.MethodGet, tc.target, "")
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.Equal(t, tc.expectedName, tc.repo.gotName)
		})
	}
}

func Test_Handler_HealthChecks(t *testing.T) {
	assert.Equal(t, http.StatusOK, serve(&mockRepository{}, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, serve(&mockRepository{}, http.MethodGet, "/readyz", "").Code)

	rr := serve(&mockRepository{error: perrors.ErrStoreUnavailable}, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"detail":"Store unavailable"}`, rr.Body.String())
}
