// Package headers sets static response headers on every route.
//
// Header names and values are validated before the go-supervisor headers middleware is built,
// so a bad config fails at startup rather than per request.
package headers

import (
	"net/http"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	supervisorHeaders "github.com/robbyt/go-supervisor/runnables/httpserver/middleware/headers"

	"github.com/atlanticdynamic/slotlab/internal/config"
)

// New builds the middleware setting every header in set on the response. Invalid names or
// values are reported as config.ErrInvalidHeader.
func New(set map[string]string) (httpserver.HandlerFunc, error) {
	if err := config.ValidateHeaders(set); err != nil {
		return nil, err
	}

	h := make(http.Header, len(set))
	for key, value := range set {
		h.Set(key, value)
	}
	return supervisorHeaders.NewWithOperations(supervisorHeaders.WithSet(h)), nil
}
