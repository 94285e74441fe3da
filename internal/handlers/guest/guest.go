package guest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotelier/internal/domains/guest/model/dto"
	"hotelier/internal/domains/guest/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/response"
)

type Handler struct {
	service service.Guest
	auth    *middleware.Auth
}

func ProvideHandler(service service.Guest, auth *middleware.Auth) Handler {
	return Handler{service: service, auth: auth}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/guests", func(r chi.Router) {
		r.Use(h.auth.Authenticate, h.auth.Permit)
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.GetByID)
		r.Patch("/{id}", h.Update)
	})
}

// GetAll lists guests with pagination.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	params := gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}
	params.FromRequest(r, true)

	resp, err := h.service.GetAll(r.Context(), params)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, resp)
}

// GetByID returns a single guest.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, resp)
}

// Update modifies a guest's profile.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateGuestRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Update(r.Context(), req, id, middleware.StaffIDFromContext(r.Context())); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "guest updated")
}
