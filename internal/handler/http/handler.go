package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pontoseguro/ponto-backend-go/internal/domain/auth"
	"github.com/pontoseguro/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontoseguro/ponto-backend-go/internal/handler/http/response"
)

// principal returns the authenticated caller or writes a 401.
func principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := middleware.CurrentPrincipal(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return auth.Principal{}, false
	}
	return p, true
}

// decodeJSON reads the request body into dst or writes a 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

func getIntQueryParam(r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}

func getBoolQueryParam(r *http.Request, key string) (*bool, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}
