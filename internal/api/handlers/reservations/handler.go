package reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	reservationsService "github.com/m04kA/HMS-ReservationService/internal/service/reservations"
	serviceModels "github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
	cancelReservation "github.com/m04kA/HMS-ReservationService/internal/usecase/cancel_reservation"
	createReservation "github.com/m04kA/HMS-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/HMS-ReservationService/pkg/txmanager"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidReservationID = "некорректный ID резервации"
	msgInvalidRoomID        = "некорректный ID комнаты"
	msgInvalidRange         = "дата заезда должна быть раньше даты выезда"
	msgRoomNotFound         = "комната не найдена"
	msgRoomUnavailable      = "комната недоступна для бронирования"
	msgDateConflict         = "даты пересекаются с существующей резервацией"
	msgReservationNotFound  = "резервация не найдена"
	msgAlreadyCancelled     = "резервация уже отменена"
	msgConcurrencyConflict  = "конфликт одновременного доступа, повторите запрос"
	msgInvalidStatus        = "некорректный статус резервации"
)

type Handler struct {
	createUseCase CreateReservationUseCase
	cancelUseCase CancelReservationUseCase
	service       ReservationService
	logger        Logger
}

func NewHandler(
	createUseCase CreateReservationUseCase,
	cancelUseCase CancelReservationUseCase,
	service ReservationService,
	logger Logger,
) *Handler {
	return &Handler{
		createUseCase: createUseCase,
		cancelUseCase: cancelUseCase,
		service:       service,
		logger:        logger,
	}
}

// Create POST /api/v1/reservations
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.createUseCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidRange),
			errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrRoomUnavailable):
			h.logger.Warn("POST /reservations - Room unavailable: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgRoomUnavailable)

		case errors.Is(err, createReservation.ErrDateConflict):
			h.logger.Warn("POST /reservations - Date conflict: room_id=%d, start=%s, end=%s",
				req.RoomID, req.StartDate, req.EndDate)
			handlers.RespondError(w, http.StatusConflict, msgDateConflict)

		case errors.Is(err, txmanager.ErrSerialization):
			h.logger.Warn("POST /reservations - Serialization conflict: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrencyConflict)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: room_id=%d, error=%v",
				req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, room_id=%d",
		result.ID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromCreateResponse(result))
}

// Cancel PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.cancelUseCase.Execute(r.Context(), &cancelReservation.Request{ReservationID: reservationID})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, cancelReservation.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Already cancelled: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgAlreadyCancelled)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid input: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		case errors.Is(err, txmanager.ErrSerialization):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Serialization conflict: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrencyConflict)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed to cancel reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled successfully: reservation_id=%d",
		reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromCancelResponse(result))
}

// GetByID GET /api/v1/reservations/{reservationId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("GET /reservations/{id} - Failed to get reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/reservations
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListByRoom GET /api/v1/rooms/{roomId}/reservations
func (h *Handler) ListByRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/reservations - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	req := &serviceModels.ListByRoomRequest{RoomID: roomID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.ListByRoom(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/reservations - Invalid status filter: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /rooms/{id}/reservations - Failed to list reservations: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
