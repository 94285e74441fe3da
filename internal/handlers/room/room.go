package room

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/response"
)

type Handler struct {
	service service.Room
	auth    *middleware.Auth
}

func ProvideHandler(service service.Room, auth *middleware.Auth) Handler {
	return Handler{service: service, auth: auth}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/rooms", func(r chi.Router) {
		r.Get("/availability", h.FindAvailable)
		r.Get("/types", h.RoomTypes)

		r.Group(func(r chi.Router) {
			r.Use(h.auth.Authenticate, h.auth.Permit)
			r.Post("/", h.Create)
			r.Get("/", h.GetAll)
			r.Get("/{id}", h.GetByID)
			r.Patch("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})
}

// Create registers a new room.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	resp, err := h.service.Create(r.Context(), req, middleware.StaffIDFromContext(r.Context()))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, resp)
}

// GetAll lists rooms with pagination.
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

// GetByID returns a single room.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, resp)
}

// Update modifies a room.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Update(r.Context(), req, id, middleware.StaffIDFromContext(r.Context())); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "room updated")
}

// Delete removes a room without bookings.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "room deleted")
}

// RoomTypes lists the distinct room types on offer.
func (h *Handler) RoomTypes(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.RoomTypes(r.Context())
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, resp)
}

// FindAvailable lists rooms of a type that are free for the requested stay.
func (h *Handler) FindAvailable(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := dto.AvailabilityRequest{
		RoomType: query.Get(constant.RequestParamRoomType),
		CheckIn:  query.Get(constant.RequestParamCheckIn),
		CheckOut: query.Get(constant.RequestParamCheckOut),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		response.WithError(w, err)

		return
	}

	resp, err := h.service.FindAvailable(r.Context(), req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, resp)
}
