// Package requestid tags every response with a request identifier.
package requestid

import (
	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// HeaderName is the request and response header carrying the identifier.
const HeaderName = "X-Request-Id"

// maxIncomingLength bounds identifiers accepted from clients.
const maxIncomingLength = 128

// New returns a middleware that echoes a client supplied X-Request-Id, or generates a UUIDv7
// when none is present.
func New() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		id := rp.Request().Header.Get(HeaderName)
		if id == "" || len(id) > maxIncomingLength {
			id = generate()
		}
		rp.Writer().Header().Set(HeaderName, id)
		rp.Next()
	}
}

func generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Must(uuid.NewV4()).String()
	}
	return id.String()
}
