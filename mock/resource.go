package mock

import (
	"encoding/json"
	"net/http"
	"strings"
)

// defaultResourceHandler serves /resource to callers presenting a valid bearer token
func (m *TokenService) defaultResourceHandler(w http.ResponseWriter, r *http.Request) {
	authorization := r.Header.Get("Authorization")
	if !strings.HasPrefix(authorization, "Bearer ") {
		w.Header().Set("WWW-Authenticate", `Bearer realm="mock"`)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	uid, err := m.Verify(strings.TrimPrefix(authorization, "Bearer "))
	if err != nil {
		w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"uid": uid})
}
