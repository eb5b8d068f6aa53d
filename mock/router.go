package mock

import (
	"net/http"
)

// Handler routes HTTP requests to the appropriate mock token service endpoints.
type Handler struct {
	// Service is the mock token service with endpoint handlers.
	Service *TokenService
}

// ServeHTTP dispatches incoming HTTP requests based on URL path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/v1/token":
		if h.Service.TokenHandler != nil {
			h.Service.TokenHandler(w, r)
		} else {
			h.Service.defaultTokenHandler(w, r)
		}
	case "/resource":
		if h.Service.ResourceHandler != nil {
			h.Service.ResourceHandler(w, r)
		} else {
			h.Service.defaultResourceHandler(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}
