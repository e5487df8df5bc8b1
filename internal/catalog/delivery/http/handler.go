package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/product-catalog/internal/catalog/domain"
	"github.com/tair/product-catalog/internal/catalog/usecase/command"
	"github.com/tair/product-catalog/internal/catalog/usecase/query"
	"github.com/tair/product-catalog/internal/catalog/validation"
	"github.com/tair/product-catalog/pkg/logger"
)

// CatalogHandler handles HTTP requests for the catalog using CQRS pattern
type CatalogHandler struct {
	// Command handlers
	uploadHandler      *command.UploadProductHandler
	editHandler        *command.EditProductHandler
	deleteHandler      *command.DeleteProductHandler
	deleteImageHandler *command.DeleteImageHandler

	// Query handlers
	getProductHandler *query.GetProductHandler
	listHandler       *query.ListCategoryProductsHandler
	categoryHandler   *query.GetCategoryHandler
	featuredHandler   *query.FeaturedCategoriesHandler

	validator *validation.Validator
	repo      domain.CatalogRepository
	metrics   *Metrics
}

// NewCatalogHandler creates a new catalog handler
// This is used by Wire for automatic dependency injection
func NewCatalogHandler(
	uploadHandler *command.UploadProductHandler,
	editHandler *command.EditProductHandler,
	deleteHandler *command.DeleteProductHandler,
	deleteImageHandler *command.DeleteImageHandler,
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListCategoryProductsHandler,
	categoryHandler *query.GetCategoryHandler,
	featuredHandler *query.FeaturedCategoriesHandler,
	validator *validation.Validator,
	repo domain.CatalogRepository,
	metrics *Metrics,
) *CatalogHandler {
	return &CatalogHandler{
		uploadHandler:      uploadHandler,
		editHandler:        editHandler,
		deleteHandler:      deleteHandler,
		deleteImageHandler: deleteImageHandler,
		getProductHandler:  getProductHandler,
		listHandler:        listHandler,
		categoryHandler:    categoryHandler,
		featuredHandler:    featuredHandler,
		validator:          validator,
		repo:               repo,
		metrics:            metrics,
	}
}

type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CatalogHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		h.metrics.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.metrics.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.metrics.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()

	// featured must be registered ahead of the numeric id routes
	api.HandleFunc("/products/featured", h.metricsMiddleware("/api/products/featured", h.FeaturedCategories)).Methods("GET")
	api.HandleFunc("/products", h.metricsMiddleware("/api/products", h.UploadProduct)).Methods("POST")
	api.HandleFunc("/products/{id:[0-9]+}", h.metricsMiddleware("/api/products/{id}", h.GetProduct)).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}", h.metricsMiddleware("/api/products/{id}", h.EditProduct)).Methods("PUT")
	api.HandleFunc("/products/{id:[0-9]+}", h.metricsMiddleware("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")

	api.HandleFunc("/categories/{id:[0-9]+}", h.metricsMiddleware("/api/categories/{id}", h.GetCategory)).Methods("GET")
	api.HandleFunc("/categories/{id:[0-9]+}/products", h.metricsMiddleware("/api/categories/{id}/products", h.ListCategoryProducts)).Methods("GET")

	api.HandleFunc("/product-images/{id:[0-9]+}", h.metricsMiddleware("/api/product-images/{id}", h.DeleteImage)).Methods("DELETE")
}

// UploadProduct handles POST /api/products
func (h *CatalogHandler) UploadProduct(w http.ResponseWriter, r *http.Request) {
	form, err := h.validator.ParseProductForm(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	cmd := command.UploadProductCommand{
		Category:     form.Category,
		Name:         form.Name,
		Price:        form.Price,
		Description:  form.Description,
		Manufacturer: form.Manufacturer,
		NafdacNo:     form.NafdacNo,
		Expiry:       form.Expiry,
		Images:       imageFiles(form.Images),
	}

	result, err := h.uploadHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.metrics.categoriesTouched.Inc()
	h.updateProductsMetric(r)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product Uploaded.",
		Data:    result,
	})
}

// EditProduct handles PUT /api/products/{id}
func (h *CatalogHandler) EditProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid product ID")
	if !ok {
		return
	}

	form, err := h.validator.ParseProductForm(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	cmd := command.EditProductCommand{
		ID:           id,
		Category:     form.Category,
		Name:         form.Name,
		Price:        form.Price,
		Description:  form.Description,
		Manufacturer: form.Manufacturer,
		NafdacNo:     form.NafdacNo,
		Expiry:       form.Expiry,
		Images:       imageFiles(form.Images),
	}

	result, err := h.editHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.metrics.categoriesTouched.Inc()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Update successful",
		Data:    result,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid product ID")
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.updateProductsMetric(r)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted",
		Data:    "Product deleted",
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid product ID")
	if !ok {
		return
	}

	view, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product found",
		Data:    view,
	})
}

// ListCategoryProducts handles GET /api/categories/{id}/products
func (h *CatalogHandler) ListCategoryProducts(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid category ID")
	if !ok {
		return
	}

	listing, err := h.listHandler.Handle(r.Context(), query.ListCategoryProductsQuery{CategoryID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "All products",
		Data:    listing,
	})
}

// GetCategory handles GET /api/categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid category ID")
	if !ok {
		return
	}

	category, err := h.categoryHandler.Handle(r.Context(), query.GetCategoryQuery{ID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Specific Product Category",
		Data:    category,
	})
}

// DeleteImage handles DELETE /api/product-images/{id}
func (h *CatalogHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "Invalid image ID")
	if !ok {
		return
	}

	if err := h.deleteImageHandler.Handle(r.Context(), command.DeleteImageCommand{ID: id}); err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Image deleted",
		Data:    "Image deleted",
	})
}

// FeaturedCategories handles GET /api/products/featured
func (h *CatalogHandler) FeaturedCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.featuredHandler.Handle(r.Context(), query.FeaturedCategoriesQuery{})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Featured Categories",
		Data:    categories,
	})
}

// Pinger is an optional backing service reported by /health
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterHealthCheck serves /health. The database decides the status code;
// optional services only show up as "down" in the payload.
func (h *CatalogHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB, optional map[string]Pinger) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		status := map[string]string{"database": "up"}
		for name, dep := range optional {
			status[name] = "up"
			if err := dep.Ping(r.Context()); err != nil {
				logger.Warn(r.Context()).Err(err).Str("dependency", name).Msg("Health check dependency down")
				status[name] = "down"
			}
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Catalog service is healthy",
			Data:    status,
		})
	}).Methods("GET")
}

// respondError maps domain and validation errors onto HTTP statuses
func (h *CatalogHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid validation.Errors
	switch {
	case errors.As(err, &invalid):
		respondJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Message: "The given data was invalid.",
			Errors:  invalid,
		})
	case errors.Is(err, domain.ErrProductNotFound):
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Message: "product does not exist",
		})
	case errors.Is(err, domain.ErrCategoryNotFound):
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Message: "Such category does not exist",
		})
	case errors.Is(err, domain.ErrInvalidProduct),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrUnknownSlot):
		respondJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Message: "The given data was invalid.",
			Error:   err.Error(),
		})
	default:
		logger.Error(r.Context()).
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Catalog request failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Internal server error",
		})
	}
}

// updateProductsMetric updates the total products gauge
func (h *CatalogHandler) updateProductsMetric(r *http.Request) {
	count, err := h.repo.CountProducts(r.Context())
	if err == nil {
		h.metrics.totalProducts.Set(float64(count))
	}
}

func parseID(w http.ResponseWriter, r *http.Request, message string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   message,
		})
		return 0, false
	}
	return uint(id), true
}

func imageFiles(images []validation.Image) []command.ImageFile {
	files := make([]command.ImageFile, len(images))
	for i, img := range images {
		files[i] = command.ImageFile{
			Slot:      img.Slot,
			Data:      img.Data,
			Extension: img.Extension,
		}
	}
	return files
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Debug().Err(err).Int("status", status).Msg("Failed to write response body")
	}
}
