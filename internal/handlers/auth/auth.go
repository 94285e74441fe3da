package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotelier/internal/domains/auth/model/dto"
	"hotelier/internal/domains/auth/service"
	"hotelier/shared/validator"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/response"
)

type Handler struct {
	service service.Auth
	auth    *middleware.Auth
}

func ProvideHandler(service service.Auth, auth *middleware.Auth) Handler {
	return Handler{service: service, auth: auth}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/refresh", h.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(h.auth.Authenticate, h.auth.Permit)
			r.Post("/change-password", h.ChangePassword)
		})
	})
}

// Login authenticates a staff member and issues a token pair.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, resp)
}

// RefreshToken exchanges a refresh token for a new token pair.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	resp, err := h.service.RefreshToken(r.Context(), req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, resp)
}

// ChangePassword updates the password of the authenticated staff member.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangePasswordRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	if err := h.service.ChangePassword(r.Context(), req, middleware.StaffIDFromContext(r.Context())); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "password changed")
}
