package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
)

var allowedMethods = []string{http.MethodGet, http.MethodHead}

// HomeHandler serves GET /. It is registered on the catch-all pattern, so any other
// unmatched path is answered with 404 here.
func (s *Service) HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != PathHome {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, r, http.StatusOK, s.Home())
}

// HealthHandler serves GET /health
func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.Health())
}

// FeatureXHandler serves GET /feature-x
func (s *Service) FeatureXHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.FeatureX())
}

// VersionHandler serves GET /api/version
func (s *Service) VersionHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.Version())
}

// writeJSON encodes payload before touching the response, so an encoding failure can still
// become a clean 500.
func (s *Service) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		s.logger.Error("Failed to encode response", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Debug("Failed to write response", "path", r.URL.Path, "error", err)
	}
}

// allowMethods rejects anything but GET and HEAD with 405 and an Allow header
func allowMethods(next http.HandlerFunc) http.HandlerFunc {
	allow := strings.Join(allowedMethods, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		for _, m := range allowedMethods {
			if r.Method == m {
				next(w, r)
				return
			}
		}
		w.Header().Set("Allow", allow)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}
