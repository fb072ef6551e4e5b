package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/handlers"
	custommiddleware "github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/middleware"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/config"
	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/service"

	"go.uber.org/zap"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	herdService *service.HerdService,
	priceService *service.PriceService,
	portfolioService *service.PortfolioService,
	snapshotService *service.SnapshotService,
	cfg *config.Config,
	logger *zap.Logger,
) (http.Handler, error) {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.NewLogger(logger))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// Mutating endpoints require an API key when one is configured.
	requireAPIKey, err := custommiddleware.NewAPIKey(cfg.Auth.FernetKey)
	if err != nil {
		return nil, err
	}

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		herdHandler := handlers.NewHerdHandler(herdService)
		portfolioHandler := handlers.NewPortfolioHandler(portfolioService, snapshotService)

		r.Route("/herd", func(r chi.Router) {
			r.Get("/", herdHandler.Herds)
			r.With(requireAPIKey).Post("/", herdHandler.CreateHerd)
			r.With(requireAPIKey).Post("/import", herdHandler.ImportHerds)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", herdHandler.Herd)
				r.With(requireAPIKey).Put("/", herdHandler.UpdateHerd)
				r.With(requireAPIKey).Post("/sell", herdHandler.SellHerd)
				r.Get("/valuation", portfolioHandler.HerdValuation)
			})
		})

		r.Route("/price", func(r chi.Router) {
			priceHandler := handlers.NewPriceHandler(priceService)
			r.Get("/", priceHandler.Prices)
			r.Get("/history", priceHandler.PriceHistory)
			r.With(requireAPIKey).Post("/", priceHandler.CreatePrice)
			r.With(requireAPIKey).Post("/refresh", priceHandler.RefreshPrices)
		})

		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/summary", portfolioHandler.Summary)
			r.Get("/overview", portfolioHandler.Overview)
			r.With(requireAPIKey).Post("/snapshot/refresh", portfolioHandler.RefreshSnapshot)
		})
	})

	return r, nil
}
