package api

import (
	"encoding/json"
	"net/http"

	"github.com/soaringjerry/bemestar/internal/middleware"
	"github.com/soaringjerry/bemestar/internal/services"
	"github.com/soaringjerry/bemestar/internal/utils"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func tr(r *http.Request, key string) string {
	if key == "" {
		return ""
	}
	return utils.T(middleware.LocaleFromContext(r.Context()), key)
}

// writeEnvelope localizes the envelope message and writes it.
func writeEnvelope[T any](w http.ResponseWriter, r *http.Request, status int, env services.Envelope[T]) {
	env.Message = tr(r, env.Message)
	writeJSON(w, status, env)
}

func writeFailure(w http.ResponseWriter, r *http.Request, status int, key string) {
	writeJSON(w, status, services.Envelope[any]{Success: false, Message: tr(r, key)})
}

func statusFor(code services.ErrorCode) int {
	switch code {
	case services.ErrorInvalid:
		return http.StatusBadRequest
	case services.ErrorForbidden:
		return http.StatusForbidden
	case services.ErrorNotFound:
		return http.StatusNotFound
	case services.ErrorConflict:
		return http.StatusConflict
	case services.ErrorUnauthorized:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func (rt *Router) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if se, ok := services.AsServiceError(err); ok {
		writeFailure(w, r, statusFor(se.Code), se.Message)
		return
	}
	rt.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeFailure(w, r, http.StatusInternalServerError, "error.internal")
}

// decodeJSON reads a JSON body into v. Malformed bodies are reported as
// invalid service errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return services.NewInvalidError("request.invalid_body")
	}
	return nil
}
