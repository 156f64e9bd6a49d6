package http

import (
	_ "github.com/DRSN-tech/catalog-service/docs" // регистрация swagger-спецификации
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Handlers — зависимости HTTP-слоя.
type Handlers struct {
	Products  usecase.ProductUC
	Customers usecase.CustomerUC
	Reviews   usecase.ReviewUC
	DB        Pinger
}

func (r *Router) Init(h Handlers) {
	r.router.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(r.logger),
		middleware.Recoverer,
	)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.router.Get("/healthz", NewHealthHandler(h.DB, r.logger).healthz)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(h.Products, r.logger))
		registerCustomerRoutes(v1, NewCustomerHandler(h.Customers, r.logger))
		registerReviewRoutes(v1, NewReviewHandler(h.Reviews, r.logger))
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Post("/", prHandler.createProduct)
		pr.Get("/search", prHandler.searchProducts)
		pr.Get("/stats", prHandler.productStats)
		pr.Get("/{id}", prHandler.getProduct)
		pr.Put("/{id}", prHandler.updateProduct)
		pr.Delete("/{id}", prHandler.deleteProduct)
	})

	router.Get("/categories/{categoryId}", prHandler.listProductsByCategory)
}

func registerCustomerRoutes(router chi.Router, cHandler *CustomerHandler) {
	router.Route("/customers", func(cr chi.Router) {
		cr.Get("/", cHandler.listCustomers)
		cr.Get("/{id}", cHandler.getCustomer)
		cr.Put("/{id}", cHandler.updateCustomer)
		cr.Get("/{id}/orders", cHandler.listCustomerOrders)
	})
}

func registerReviewRoutes(router chi.Router, rHandler *ReviewHandler) {
	router.Get("/reviews/rating-stats", rHandler.ratingStats)
}
