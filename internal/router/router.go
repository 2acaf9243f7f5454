package router

import (
	"net/http"
	"strings"

	"cottage-store/internal/handler"
	"cottage-store/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Order    *handler.OrderHandler
	Settings *handler.SettingsHandler
	Upload   *handler.UploadHandler
	POS      *handler.POSHandler
}

// New creates the HTTP router with all routes and middleware configured.
// Routes under /api/admin/ require the X-API-Key header; the storefront
// surface is open.
func New(h Handlers, adminAPIKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Public storefront surface.
	productRoute := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			h.Product.GetByID(w, r)
			return
		}
		h.Product.List(w, r)
	}
	mux.HandleFunc("/api/products", productRoute)
	mux.HandleFunc("/api/products/", productRoute)

	mux.HandleFunc("/api/categories", h.Category.List)
	mux.HandleFunc("/api/settings", h.Settings.Get)
	mux.HandleFunc("/api/checkout", h.Order.Checkout)

	// Admin surface.
	adminProductRoute := func(w http.ResponseWriter, r *http.Request) {
		onCollection := r.URL.Path == "/api/admin/products" || r.URL.Path == "/api/admin/products/"
		switch {
		case r.Method == http.MethodPost && onCollection:
			h.Product.Create(w, r)
		case r.Method == http.MethodPut && !onCollection:
			h.Product.Update(w, r)
		case r.Method == http.MethodDelete && !onCollection:
			h.Product.Delete(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/admin/products", adminProductRoute)
	mux.HandleFunc("/api/admin/products/", adminProductRoute)

	adminCategoryRoute := func(w http.ResponseWriter, r *http.Request) {
		onCollection := r.URL.Path == "/api/admin/categories" || r.URL.Path == "/api/admin/categories/"
		switch {
		case r.Method == http.MethodPost && onCollection:
			h.Category.Create(w, r)
		case r.Method == http.MethodPut && !onCollection:
			h.Category.Update(w, r)
		case r.Method == http.MethodDelete && !onCollection:
			h.Category.Delete(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/admin/categories", adminCategoryRoute)
	mux.HandleFunc("/api/admin/categories/", adminCategoryRoute)

	adminOrderRoute := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			h.Order.List(w, r)
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/admin/orders/"):
			h.Order.Delete(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/admin/orders", adminOrderRoute)
	mux.HandleFunc("/api/admin/orders/", adminOrderRoute)

	mux.HandleFunc("/api/admin/settings", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.Settings.Get(w, r)
			return
		}
		h.Settings.Update(w, r)
	})
	mux.HandleFunc("/api/admin/pos/bills", h.POS.CreateBill)
	mux.HandleFunc("/api/admin/uploads", h.Upload.Upload)

	// Apply middleware in order: Recovery -> Logging -> CORS -> AdminAuth
	var root http.Handler = mux
	root = middleware.AdminAuth(adminAPIKey, logger)(root)
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
