package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/takara-tech/product-api/docs" // Импорт сгенерированных файлов
	"github.com/takara-tech/product-api/internal/usecase"
	"github.com/takara-tech/product-api/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

type UseCases struct {
	Create usecase.CreateProduct
	Get    usecase.GetProduct
	Update usecase.UpdateProduct
	Delete usecase.DeleteProduct
	Search usecase.SearchProducts
}

func (r *Router) Init(ucs UseCases, healthHandler *HealthHandler) {
	r.router.Use(recoverer(r.logger))
	r.router.Use(requestLogger(r.logger))
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Get("/", healthHandler.root)
	r.router.Get("/health", healthHandler.healthCheck)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(ucs.Create, ucs.Get, ucs.Update, ucs.Delete, ucs.Search, r.logger)
		registerProductRoutes(v1, prHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.createProduct)
		pr.Get("/search", prHandler.searchProducts)
		pr.Get("/{id}", prHandler.getProduct)
		pr.Put("/{id}", prHandler.updateProduct)
		pr.Delete("/{id}", prHandler.deleteProduct)
	})
}
