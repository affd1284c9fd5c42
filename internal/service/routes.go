package service

import (
	"fmt"
	"net/http"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// Route paths served by the Service.
const (
	PathHome     = "/"
	PathHealth   = "/health"
	PathFeatureX = "/feature-x"
	PathVersion  = "/api/version"
)

type routeSpec struct {
	name    string
	path    string
	handler http.HandlerFunc
}

func (s *Service) routeSpecs() []routeSpec {
	return []routeSpec{
		{name: "home", path: PathHome, handler: s.HomeHandler},
		{name: "health", path: PathHealth, handler: s.HealthHandler},
		{name: "feature-x", path: PathFeatureX, handler: s.FeatureXHandler},
		{name: "version", path: PathVersion, handler: s.VersionHandler},
	}
}

// Routes returns the go-supervisor routes for every endpoint, each wrapped by middlewares in
// the order given.
func (s *Service) Routes(middlewares ...httpserver.HandlerFunc) ([]httpserver.Route, error) {
	specs := s.routeSpecs()
	routes := make([]httpserver.Route, 0, len(specs))
	for _, spec := range specs {
		route, err := httpserver.NewRouteFromHandlerFunc(
			spec.name,
			spec.path,
			allowMethods(spec.handler),
			middlewares...,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create route %s: %w", spec.name, err)
		}
		routes = append(routes, *route)
	}

	s.logger.Debug("Built routes", "count", len(routes))
	return routes, nil
}
