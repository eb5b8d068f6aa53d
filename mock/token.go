package mock

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type errorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status,omitempty"`
	} `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message, statusText string) {
	body := errorBody{}
	body.Error.Code = status
	body.Error.Message = message
	body.Error.Status = statusText
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// defaultTokenHandler handles /v1/token refresh requests
func (m *TokenService) defaultTokenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "")
		return
	}
	m.record(r.PostForm)
	if r.URL.Query().Get("key") != m.APIKey {
		writeError(w, http.StatusBadRequest, "API key not valid. Please pass a valid API key.", "INVALID_ARGUMENT")
		return
	}
	if r.PostForm.Get("grant_type") != "refresh_token" {
		writeError(w, http.StatusBadRequest, "INVALID_GRANT_TYPE", "")
		return
	}
	refreshToken := r.PostForm.Get("refresh_token")
	if refreshToken == "" {
		writeError(w, http.StatusBadRequest, "MISSING_REFRESH_TOKEN", "")
		return
	}
	if code, ok := m.revoked.Get(refreshToken); ok {
		writeError(w, http.StatusBadRequest, code, "")
		return
	}
	uid, ok := m.refreshTokens.Get(refreshToken)
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_REFRESH_TOKEN", "")
		return
	}
	accessToken, err := m.createJWT(uid, m.Lifetime)
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	// refresh tokens rotate on every exchange
	m.refreshTokens.Delete(refreshToken)
	response := map[string]interface{}{
		"access_token":  accessToken,
		"expires_in":    fmt.Sprintf("%d", int(m.Lifetime.Seconds())),
		"token_type":    "Bearer",
		"refresh_token": m.IssueRefreshToken(uid),
		"id_token":      accessToken,
		"user_id":       uid,
		"project_id":    "mock-project",
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
