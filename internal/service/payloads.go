package service

// Fixed strings returned by the routes.
const (
	HomeMessage          = "Azure Web App Slots Lab"
	HealthStatusHealthy  = "healthy"
	HealthCheckOK        = "ok"
	FeatureXName         = "X"
	FeatureXEnabledText  = "Dette er den nye funksjonen!"
	FeatureXDisabledText = "Feature X er ikke tilgjengelig ennå."
)

// HomeResponse is the body of GET /
type HomeResponse struct {
	Message         string `json:"message"`
	Environment     string `json:"environment"`
	Version         string `json:"version"`
	Hostname        string `json:"hostname"`
	FeatureXEnabled bool   `json:"feature_x_enabled"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status      string       `json:"status"`
	Environment string       `json:"environment"`
	Checks      HealthChecks `json:"checks"`
}

// HealthChecks is the nested "checks" object of HealthResponse
type HealthChecks struct {
	App           string `json:"app"`
	FeatureToggle bool   `json:"feature_toggle"`
}

// FeatureResponse is the body of GET /feature-x
type FeatureResponse struct {
	Feature     string `json:"feature"`
	Enabled     bool   `json:"enabled"`
	Message     string `json:"message"`
	Environment string `json:"environment"`
}

// VersionResponse is the body of GET /api/version
type VersionResponse struct {
	Version        string `json:"version"`
	Environment    string `json:"environment"`
	DeploymentSlot string `json:"deployment_slot"`
}

// Home builds the root payload
func (s *Service) Home() HomeResponse {
	return HomeResponse{
		Message:         HomeMessage,
		Environment:     s.cfg.Environment,
		Version:         s.cfg.Version,
		Hostname:        s.hostname,
		FeatureXEnabled: s.cfg.FeatureToggleX,
	}
}

// Health builds the health payload. The service has no dependencies, so it is always healthy.
func (s *Service) Health() HealthResponse {
	return HealthResponse{
		Status:      HealthStatusHealthy,
		Environment: s.cfg.Environment,
		Checks: HealthChecks{
			App:           HealthCheckOK,
			FeatureToggle: s.cfg.FeatureToggleX,
		},
	}
}

// FeatureX builds the feature toggle payload
func (s *Service) FeatureX() FeatureResponse {
	resp := FeatureResponse{
		Feature:     FeatureXName,
		Enabled:     s.cfg.FeatureToggleX,
		Message:     FeatureXDisabledText,
		Environment: s.cfg.Environment,
	}
	if s.cfg.FeatureToggleX {
		resp.Message = FeatureXEnabledText
	}
	return resp
}

// Version builds the version payload
func (s *Service) Version() VersionResponse {
	return VersionResponse{
		Version:        s.cfg.Version,
		Environment:    s.cfg.Environment,
		DeploymentSlot: s.cfg.DeploymentSlot(),
	}
}
