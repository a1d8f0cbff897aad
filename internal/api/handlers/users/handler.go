package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	usersService "github.com/m04kA/HMS-ReservationService/internal/service/users"
	serviceModels "github.com/m04kA/HMS-ReservationService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidInput       = "некорректные данные пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgEmailTaken         = "пользователь с таким email уже существует"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/users
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceModels.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, usersService.ErrEmailTaken):
			h.logger.Warn("POST /users - Email taken: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		default:
			h.logger.Error("POST /users - Failed to create user: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created successfully: user_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// GetByID GET /api/v1/users/{userId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("GET /users/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /users/{id} - Failed to get user: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/users/{userId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req serviceModels.UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usersService.ErrInvalidInput):
			h.logger.Warn("PUT /users/{id} - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("PUT /users/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, usersService.ErrEmailTaken):
			h.logger.Warn("PUT /users/{id} - Email taken: user_id=%d, email=%s", userID, req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		default:
			h.logger.Error("PUT /users/{id} - Failed to update user: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/{id} - User updated successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/users/{userId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if err := h.service.Delete(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, usersService.ErrUserNotFound):
			h.logger.Warn("DELETE /users/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("DELETE /users/{id} - Failed to delete user: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users/{id} - User deleted successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
