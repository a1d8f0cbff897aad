package guests

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	guestsService "github.com/m04kA/HMS-ReservationService/internal/service/guests"
	serviceModels "github.com/m04kA/HMS-ReservationService/internal/service/guests/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidGuestID     = "некорректный ID гостя"
	msgInvalidInput       = "некорректные данные гостя"
	msgGuestNotFound      = "гость не найден"
	msgDocumentTaken      = "гость с таким документом уже зарегистрирован"
)

type Handler struct {
	service GuestService
	logger  Logger
}

func NewHandler(service GuestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/guests
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceModels.CreateGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /guests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, guestsService.ErrInvalidInput):
			h.logger.Warn("POST /guests - Invalid input: document=%s, error=%v", req.DocumentNumber, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, guestsService.ErrDocumentTaken):
			h.logger.Warn("POST /guests - Document taken: document=%s", req.DocumentNumber)
			handlers.RespondError(w, http.StatusConflict, msgDocumentTaken)

		default:
			h.logger.Error("POST /guests - Failed to create guest: document=%s, error=%v", req.DocumentNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /guests - Guest created successfully: guest_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// GetByID GET /api/v1/guests/{guestId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	guestID, ok := h.parseGuestID(w, r)
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), guestID)
	if err != nil {
		switch {
		case errors.Is(err, guestsService.ErrGuestNotFound):
			h.logger.Warn("GET /guests/{id} - Guest not found: guest_id=%s", guestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		default:
			h.logger.Error("GET /guests/{id} - Failed to get guest: guest_id=%s, error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/guests
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /guests - Failed to list guests: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/guests/{guestId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	guestID, ok := h.parseGuestID(w, r)
	if !ok {
		return
	}

	var req serviceModels.UpdateGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /guests/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), guestID, &req)
	if err != nil {
		switch {
		case errors.Is(err, guestsService.ErrInvalidInput):
			h.logger.Warn("PUT /guests/{id} - Invalid input: guest_id=%s, error=%v", guestID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, guestsService.ErrGuestNotFound):
			h.logger.Warn("PUT /guests/{id} - Guest not found: guest_id=%s", guestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, guestsService.ErrDocumentTaken):
			h.logger.Warn("PUT /guests/{id} - Document taken: guest_id=%s", guestID)
			handlers.RespondError(w, http.StatusConflict, msgDocumentTaken)

		default:
			h.logger.Error("PUT /guests/{id} - Failed to update guest: guest_id=%s, error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /guests/{id} - Guest updated successfully: guest_id=%s", guestID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/guests/{guestId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	guestID, ok := h.parseGuestID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), guestID); err != nil {
		switch {
		case errors.Is(err, guestsService.ErrGuestNotFound):
			h.logger.Warn("DELETE /guests/{id} - Guest not found: guest_id=%s", guestID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		default:
			h.logger.Error("DELETE /guests/{id} - Failed to delete guest: guest_id=%s, error=%v", guestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /guests/{id} - Guest deleted successfully: guest_id=%s", guestID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// parseGuestID извлекает и валидирует UUID гостя из URL
func (h *Handler) parseGuestID(w http.ResponseWriter, r *http.Request) (string, bool) {
	guestID := mux.Vars(r)["guestId"]
	if _, err := uuid.Parse(guestID); err != nil {
		h.logger.Warn("%s %s - Invalid guest ID: %v", r.Method, r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidGuestID)
		return "", false
	}
	return guestID, true
}
