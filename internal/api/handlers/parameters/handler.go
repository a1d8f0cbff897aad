package parameters

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	parametersService "github.com/m04kA/HMS-ReservationService/internal/service/parameters"
	serviceModels "github.com/m04kA/HMS-ReservationService/internal/service/parameters/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParameterID = "некорректный ID параметра"
	msgInvalidInput       = "некорректные данные параметра"
	msgParameterNotFound  = "параметр не найден"
	msgKeyTaken           = "параметр с таким ключом уже существует"
)

type Handler struct {
	service ParameterService
	logger  Logger
}

func NewHandler(service ParameterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/parameters
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceModels.CreateParameterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /parameters - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, parametersService.ErrInvalidInput):
			h.logger.Warn("POST /parameters - Invalid input: key=%s, error=%v", req.Key, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, parametersService.ErrKeyTaken):
			h.logger.Warn("POST /parameters - Key taken: key=%s", req.Key)
			handlers.RespondError(w, http.StatusConflict, msgKeyTaken)

		default:
			h.logger.Error("POST /parameters - Failed to create parameter: key=%s, error=%v", req.Key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /parameters - Parameter created successfully: parameter_id=%d, key=%s", result.ID, req.Key)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// GetByID GET /api/v1/parameters/{parameterId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	parameterID, err := strconv.ParseInt(vars["parameterId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /parameters/{id} - Invalid parameter ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParameterID)
		return
	}

	result, err := h.service.GetByID(r.Context(), parameterID)
	if err != nil {
		switch {
		case errors.Is(err, parametersService.ErrParameterNotFound):
			h.logger.Warn("GET /parameters/{id} - Parameter not found: parameter_id=%d", parameterID)
			handlers.RespondNotFound(w, msgParameterNotFound)

		default:
			h.logger.Error("GET /parameters/{id} - Failed to get parameter: parameter_id=%d, error=%v",
				parameterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetByKey GET /api/v1/parameters/by-key/{key}
func (h *Handler) GetByKey(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	result, err := h.service.GetByKey(r.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, parametersService.ErrParameterNotFound):
			h.logger.Warn("GET /parameters/by-key/{key} - Parameter not found: key=%s", key)
			handlers.RespondNotFound(w, msgParameterNotFound)

		default:
			h.logger.Error("GET /parameters/by-key/{key} - Failed to get parameter: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/parameters
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := &serviceModels.ListParametersRequest{}

	query := r.URL.Query()
	if skip := query.Get("skip"); skip != "" {
		parsed, err := strconv.ParseUint(skip, 10, 64)
		if err != nil {
			h.logger.Warn("GET /parameters - Invalid skip: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		req.Skip = parsed
	}
	if limit := query.Get("limit"); limit != "" {
		parsed, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			h.logger.Warn("GET /parameters - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		req.Limit = parsed
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /parameters - Failed to list parameters: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PATCH /api/v1/parameters/{parameterId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	parameterID, err := strconv.ParseInt(vars["parameterId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /parameters/{id} - Invalid parameter ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParameterID)
		return
	}

	var req serviceModels.UpdateParameterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /parameters/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), parameterID, &req)
	if err != nil {
		switch {
		case errors.Is(err, parametersService.ErrInvalidInput):
			h.logger.Warn("PATCH /parameters/{id} - Invalid input: parameter_id=%d, error=%v", parameterID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, parametersService.ErrParameterNotFound):
			h.logger.Warn("PATCH /parameters/{id} - Parameter not found: parameter_id=%d", parameterID)
			handlers.RespondNotFound(w, msgParameterNotFound)

		default:
			h.logger.Error("PATCH /parameters/{id} - Failed to update parameter: parameter_id=%d, error=%v",
				parameterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /parameters/{id} - Parameter updated successfully: parameter_id=%d", parameterID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/parameters/{parameterId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	parameterID, err := strconv.ParseInt(vars["parameterId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /parameters/{id} - Invalid parameter ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParameterID)
		return
	}

	if err := h.service.Delete(r.Context(), parameterID); err != nil {
		switch {
		case errors.Is(err, parametersService.ErrParameterNotFound):
			h.logger.Warn("DELETE /parameters/{id} - Parameter not found: parameter_id=%d", parameterID)
			handlers.RespondNotFound(w, msgParameterNotFound)

		default:
			h.logger.Error("DELETE /parameters/{id} - Failed to delete parameter: parameter_id=%d, error=%v",
				parameterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /parameters/{id} - Parameter deleted successfully: parameter_id=%d", parameterID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
