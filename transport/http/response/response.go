package response

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

// Base is the envelope for every JSON response.
type Base struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// WithJSON sends a response containing a JSON payload.
func WithJSON(w http.ResponseWriter, code int, jsonPayload any) {
	respond(w, code, Base{Data: jsonPayload})
}

// WithMessage sends a response with a simple text message.
func WithMessage(w http.ResponseWriter, code int, message string) {
	respond(w, code, Base{Message: message})
}

// WithError sends a response with an error message, using the HTTP code
// carried by the failure when present.
func WithError(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if code == http.StatusInternalServerError {
		log.Error().Err(err).Msg("internal server error")

		respond(w, code, Base{Error: "internal server error"})

		return
	}

	respond(w, code, Base{Error: err.Error()})
}

func respond(w http.ResponseWriter, code int, payload Base) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response payload")
	}
}
