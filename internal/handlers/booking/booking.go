package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/response"
)

type Handler struct {
	service service.Booking
	auth    *middleware.Auth
}

func ProvideHandler(service service.Booking, auth *middleware.Auth) Handler {
	return Handler{service: service, auth: auth}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Use(h.auth.Authenticate, h.auth.Permit)
		r.Post("/", h.CreateReservation)
		r.Get("/", h.GetAll)
		r.Get("/{id}", h.GetByID)
		r.Patch("/{id}", h.Update)
	})
}

// CreateReservation books a room for a guest, creating the guest record when
// the directory does not know them yet.
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReservationRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	resp, err := h.service.CreateReservation(r.Context(), req, middleware.StaffIDFromContext(r.Context()))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, resp)
}

// GetAll lists bookings with their guests. A search term switches to an in
// memory match over id, guest name, room, voucher and stay dates.
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	if term := r.URL.Query().Get(constant.RequestParamSearch); term != "" {
		resp, err := h.service.Search(r.Context(), term)
		if err != nil {
			response.WithError(w, err)

			return
		}

		response.WithJSON(w, http.StatusOK, resp)

		return
	}

	params := gDto.QueryParams{
		SortBy:  "bookings." + constant.DefaultValueSortBy,
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

// GetByID returns a booking joined with its guest.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, resp)
}

// Update modifies a booking.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Update(r.Context(), req, id, middleware.StaffIDFromContext(r.Context())); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "booking updated")
}
