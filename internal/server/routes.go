package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"excuses/internal/cache"
	"excuses/internal/handlers/api"
	"excuses/internal/provider"
)

// Deps are the collaborators the routes serve.
type Deps struct {
	Provider *provider.Provider
	Cache    *cache.LRU
	Mode     string

	// Upstream receives proxied generation requests. ProxyConfigured
	// reports whether it carries a server-side API key.
	Upstream        api.Forwarder
	ProxyConfigured bool
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(d Deps) {
	excuseHandler := api.NewExcuseHandler(d.Provider, d.Cache)
	proxyHandler := api.NewProxyHandler(d.Upstream, d.ProxyConfigured)
	var stats api.CacheStats
	if d.Cache != nil {
		stats = d.Cache
	}
	healthHandler := api.NewHealthHandler(stats, d.Mode, d.Provider.Deployment())

	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	apiGroup := s.App.Group("/api")
	apiGroup.Post("/excuses", excuseHandler.Generate)
	apiGroup.Post("/excuses/another", excuseHandler.Another)
	apiGroup.Get("/corpus", excuseHandler.Corpus)
	apiGroup.Get("/classify", excuseHandler.Classify)
	apiGroup.Delete("/cache", excuseHandler.ClearCache)
	apiGroup.All("/together-proxy", proxyHandler.Handle)
}
