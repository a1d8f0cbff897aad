package rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	roomsService "github.com/m04kA/HMS-ReservationService/internal/service/rooms"
	serviceModels "github.com/m04kA/HMS-ReservationService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidInput       = "некорректные данные комнаты"
	msgRoomNotFound       = "комната не найдена"
	msgRoomNumberTaken    = "комната с таким номером уже существует"
	msgInvalidState       = "некорректное состояние комнаты"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/rooms
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceModels.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, roomsService.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: number=%s, error=%v", req.Number, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, roomsService.ErrRoomNumberTaken):
			h.logger.Warn("POST /rooms - Room number taken: number=%s", req.Number)
			handlers.RespondError(w, http.StatusConflict, msgRoomNumberTaken)

		default:
			h.logger.Error("POST /rooms - Failed to create room: number=%s, error=%v", req.Number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created successfully: room_id=%d, number=%s", result.ID, req.Number)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// GetByID GET /api/v1/rooms/{roomId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.service.GetByID(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, roomsService.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id} - Failed to get room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateState PATCH /api/v1/rooms/{roomId}/state
func (h *Handler) UpdateState(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id}/state - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req serviceModels.UpdateRoomStateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rooms/{id}/state - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateState(r.Context(), roomID, &req)
	if err != nil {
		switch {
		case errors.Is(err, roomsService.ErrInvalidInput):
			h.logger.Warn("PATCH /rooms/{id}/state - Invalid state: room_id=%d, state=%s", roomID, req.State)
			handlers.RespondBadRequest(w, msgInvalidState)

		case errors.Is(err, roomsService.ErrRoomNotFound):
			h.logger.Warn("PATCH /rooms/{id}/state - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("PATCH /rooms/{id}/state - Failed to update state: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{id}/state - Room state updated: room_id=%d, state=%s", roomID, result.State)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/rooms
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
