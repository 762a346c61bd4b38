package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/elite-arena/apiserver/internal/services"
	"github.com/elite-arena/apiserver/internal/store"
	"github.com/elite-arena/apiserver/types"
)

// RegistrationHandler provides competition-registration endpoints.
type RegistrationHandler struct {
	service *services.RegistrationService
}

func NewRegistrationHandler(service *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// RegistrationRouter registers registration routes on the given router.
//
// The list, status, and delete routes are moderator operations but carry no
// authorization yet. Known gap; tracked in DESIGN.md.
func RegistrationRouter(r chi.Router, service *services.RegistrationService) {
	handler := NewRegistrationHandler(service)

	r.Post("/", handler.Submit)
	r.Get("/", handler.List)
	r.Route("/{registrationID}", func(r chi.Router) {
		r.Patch("/status", handler.UpdateStatus)
		r.Delete("/", handler.Remove)
	})
}

// Submit creates a new registration in the pending state.
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req services.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	reg, err := h.service.Submit(r.Context(), req)
	if err != nil {
		if services.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, reg)
}

// List returns every registration, newest first.
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, registrations)
}

type updateStatusRequest struct {
	Status types.Status `json:"status"`
}

// UpdateStatus moves a registration to the requested status.
func (h *RegistrationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseRegistrationID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "invalid status")
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "registration not found")
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Remove deletes a registration.
func (h *RegistrationHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := parseRegistrationID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "registration not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func parseRegistrationID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "registrationID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid registration id")
	}
	return id, nil
}
