// Package rest provides HTTP handlers for product-related operations.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/repository"
	"github.com/abgdnv/inventory/pkg/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	defaultLimit = 100
	maxLimit     = 1000

	notFoundDetail = "Product not found"
)

type Handler struct {
	repo     repository.ProductRepository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates a new instance of Handler with the provided repository.
func NewHandler(repo repository.ProductRepository, logger *slog.Logger) *Handler {
	return &Handler{
		repo:     repo,
		validate: repository.NewValidator(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the product API and the health checks.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/by-name/{name}", h.GetByName)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Put("/", h.Replace)
			r.Patch("/", h.Update)
			r.Delete("/", h.Delete)
			r.Post("/sell", h.Sell)
		})
	})

	r.Get("/healthz", h.HealthCheck)
	r.Get("/readyz", h.ReadyCheck)
}

// List returns a page of products, optionally filtered by the q query parameter.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	skip, ok := web.QueryIntGte(r, w, h.logger, "skip", 0, 0)
	if !ok {
		return
	}
	limit, ok := web.QueryIntGte(r, w, h.logger, "limit", 0, defaultLimit)
	if !ok {
		return
	}
	limit = min(limit, maxLimit)
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	h.logger.DebugContext(r.Context(), "Received request to list products", "skip", skip, "limit", limit, "q", query)
	var (
		list []repository.ProductDto
		err  error
	)
	if query == "" {
		list, err = h.repo.GetProducts(r.Context(), skip, limit)
	} else {
		list, err = h.repo.SearchProducts(r.Context(), query, skip, limit)
	}
	if err != nil {
		h.respondFailure(w, r, err, "Failed to fetch products")
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

// Get retrieves a product by its ID.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	product, found, err := h.repo.GetProduct(r.Context(), id)
	if err != nil {
		h.respondFailure(w, r, err, "Failed to retrieve product")
		return
	}
	if !found {
		h.respondNotFound(w, r, "id", id)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, product)
}

// GetByName retrieves a product by its exact name.
func (h *Handler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(name)
		if err != nil {
			web.RespondError(w, h.logger, http.StatusUnprocessableEntity, "Invalid product name")
			return
		}
		name = unescaped
	}
	product, found, err := h.repo.GetProductByName(r.Context(), name)
	if err != nil {
		h.respondFailure(w, r, err, "Failed to retrieve product")
		return
	}
	if !found {
		h.respondNotFound(w, r, "name", name)
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, product)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto repository.ProductCreateDto
	if !h.decodeAndValidate(w, r, &dto) {
		return
	}
	created, err := h.repo.CreateProduct(r.Context(), dto)
	if err != nil {
		h.respondFailure(w, r, err, "Failed to create product")
		return
	}
	h.logger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, created)
}

// Replace requires the full product body and overwrites every field.
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	var dto repository.ProductCreateDto
	if !h.decodeAndValidate(w, r, &dto) {
		return
	}
	h.update(w, r, id, dto.AsUpdate())
}

// Update overwrites only the fields present in the body.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	var dto repository.ProductUpdateDto
	if !h.decodeAndValidate(w, r, &dto) {
		return
	}
	h.update(w, r, id, dto)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, id int64, dto repository.ProductUpdateDto) {
	updated, found, err := h.repo.UpdateProduct(r.Context(), id, dto)
	if err != nil {
		h.respondFailure(w, r, err, "Failed to update product")
		return
	}
	if !found {
		h.respondNotFound(w, r, "id", id)
		return
	}
	h.logger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

// Delete removes a product and returns its last state.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	deleted, found, err := h.repo.DeleteProduct(r.Context(), id)
	if err != nil {
		h.respondFailure(w, r, err, "Failed to delete product")
		return
	}
	if !found {
		h.respondNotFound(w, r, "id", id)
		return
	}
	h.logger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	web.RespondJSON(w, h.logger, http.StatusOK, deleted)
}

// Sell lowers the stock of a product.
func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	id, ok := web.ParseID(w, r, h.logger)
	if !ok {
		return
	}
	var dto repository.SellDto
	if !h.decodeAndValidate(w, r, &dto) {
		return
	}
	sold, found, err := h.repo.SellProduct(r.Context(), id, *dto.Quantity)
	if err != nil {
		h.respondFailure(w, r, err, "Failed to sell product")
		return
	}
	if !found {
		h.respondNotFound(w, r, "id", id)
		return
	}
	h.logger.InfoContext(r.Context(), "Product sold", "ID", id, "Quantity", *dto.Quantity, "Left", sold.Quantity)
	web.RespondJSON(w, h.logger, http.StatusOK, sold)
}

// HealthCheck is a simple liveness endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ReadyCheck reports 503 while the store cannot be reached.
func (h *Handler) ReadyCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Ping(r.Context()); err != nil {
		h.logger.WarnContext(r.Context(), "Readiness check failed", "error", err)
		web.RespondError(w, h.logger, http.StatusServiceUnavailable, "Store unavailable")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// decodeAndValidate reads the JSON body into dst and validates it.
// On failure it writes a 422 and returns false.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, h.logger, http.StatusUnprocessableEntity, "Invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		if errorResponse, ok := repository.FieldErrors(err); ok {
			h.logger.WarnContext(r.Context(), "Validation errors occurred", "errors", errorResponse)
			web.RespondValidationError(w, h.logger, errorResponse)
			return false
		}
		h.logger.ErrorContext(r.Context(), "Error validating request body", "error", err)
		web.RespondError(w, h.logger, http.StatusUnprocessableEntity, "Invalid request body")
		return false
	}
	return true
}

func (h *Handler) respondNotFound(w http.ResponseWriter, r *http.Request, key string, value any) {
	h.logger.WarnContext(r.Context(), "Product not found", key, value)
	web.RespondError(w, h.logger, http.StatusNotFound, notFoundDetail)
}

// respondFailure maps repository errors to status codes. Anything unknown is a 500 with detail.
func (h *Handler) respondFailure(w http.ResponseWriter, r *http.Request, err error, detail string) {
	switch {
	case errors.Is(err, perrors.ErrDuplicateName):
		h.logger.WarnContext(r.Context(), "Duplicate product name", "error", err)
		web.RespondError(w, h.logger, http.StatusConflict, "Product with this name already exists")
	case errors.Is(err, perrors.ErrInsufficientStock):
		h.logger.WarnContext(r.Context(), "Insufficient stock", "error", err)
		web.RespondError(w, h.logger, http.StatusConflict, "Insufficient stock")
	case errors.Is(err, perrors.ErrInvalidQuantity):
		web.RespondError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, perrors.ErrStoreUnavailable):
		h.logger.ErrorContext(r.Context(), "Store unavailable", "error", err)
		web.RespondError(w, h.logger, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		h.logger.ErrorContext(r.Context(), detail, "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, detail)
	}
}
