package accounts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-ReservationService/internal/api/handlers"
	accountsService "github.com/m04kA/HMS-ReservationService/internal/service/accounts"
	serviceModels "github.com/m04kA/HMS-ReservationService/internal/service/accounts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAccountID   = "некорректный ID счета"
	msgInvalidInput       = "некорректные данные счета"
	msgMissingSearchTerm  = "не указана строка поиска"
	msgAccountNotFound    = "счет не найден"
	msgCodeTaken          = "счет с таким кодом уже существует"
)

type Handler struct {
	service AccountService
	logger  Logger
}

func NewHandler(service AccountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/accounts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req serviceModels.CreateAccountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /accounts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, accountsService.ErrInvalidInput):
			h.logger.Warn("POST /accounts - Invalid input: code=%s, error=%v", req.Code, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, accountsService.ErrCodeTaken):
			h.logger.Warn("POST /accounts - Code taken: code=%s", req.Code)
			handlers.RespondError(w, http.StatusConflict, msgCodeTaken)

		default:
			h.logger.Error("POST /accounts - Failed to create account: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /accounts - Account created successfully: account_id=%d, code=%s", result.ID, req.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// GetByID GET /api/v1/accounts/{accountId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	accountID, err := strconv.ParseInt(vars["accountId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /accounts/{id} - Invalid account ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAccountID)
		return
	}

	result, err := h.service.GetByID(r.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, accountsService.ErrAccountNotFound):
			h.logger.Warn("GET /accounts/{id} - Account not found: account_id=%d", accountID)
			handlers.RespondNotFound(w, msgAccountNotFound)

		default:
			h.logger.Error("GET /accounts/{id} - Failed to get account: account_id=%d, error=%v", accountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetByCode GET /api/v1/accounts/by-code/{code}
func (h *Handler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	result, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, accountsService.ErrAccountNotFound):
			h.logger.Warn("GET /accounts/by-code/{code} - Account not found: code=%s", code)
			handlers.RespondNotFound(w, msgAccountNotFound)

		default:
			h.logger.Error("GET /accounts/by-code/{code} - Failed to get account: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/accounts
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := &serviceModels.ListAccountsRequest{}

	query := r.URL.Query()
	if skip := query.Get("skip"); skip != "" {
		parsed, err := strconv.ParseUint(skip, 10, 64)
		if err != nil {
			h.logger.Warn("GET /accounts - Invalid skip: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		req.Skip = parsed
	}
	if limit := query.Get("limit"); limit != "" {
		parsed, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			h.logger.Warn("GET /accounts - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		req.Limit = parsed
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /accounts - Failed to list accounts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Search GET /api/v1/accounts/search?q=...
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		h.logger.Warn("GET /accounts/search - Missing search term")
		handlers.RespondBadRequest(w, msgMissingSearchTerm)
		return
	}

	result, err := h.service.Search(r.Context(), term)
	if err != nil {
		h.logger.Error("GET /accounts/search - Failed to search accounts: term=%s, error=%v", term, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/accounts/{accountId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	accountID, err := strconv.ParseInt(vars["accountId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /accounts/{id} - Invalid account ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAccountID)
		return
	}

	var req serviceModels.UpdateAccountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /accounts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), accountID, &req)
	if err != nil {
		switch {
		case errors.Is(err, accountsService.ErrInvalidInput):
			h.logger.Warn("PUT /accounts/{id} - Invalid input: account_id=%d, error=%v", accountID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, accountsService.ErrAccountNotFound):
			h.logger.Warn("PUT /accounts/{id} - Account not found: account_id=%d", accountID)
			handlers.RespondNotFound(w, msgAccountNotFound)

		case errors.Is(err, accountsService.ErrCodeTaken):
			h.logger.Warn("PUT /accounts/{id} - Code taken: account_id=%d, code=%s", accountID, req.Code)
			handlers.RespondError(w, http.StatusConflict, msgCodeTaken)

		default:
			h.logger.Error("PUT /accounts/{id} - Failed to update account: account_id=%d, error=%v", accountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /accounts/{id} - Account updated successfully: account_id=%d", accountID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/accounts/{accountId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	accountID, err := strconv.ParseInt(vars["accountId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /accounts/{id} - Invalid account ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAccountID)
		return
	}

	if err := h.service.Delete(r.Context(), accountID); err != nil {
		switch {
		case errors.Is(err, accountsService.ErrAccountNotFound):
			h.logger.Warn("DELETE /accounts/{id} - Account not found: account_id=%d", accountID)
			handlers.RespondNotFound(w, msgAccountNotFound)

		default:
			h.logger.Error("DELETE /accounts/{id} - Failed to delete account: account_id=%d, error=%v", accountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /accounts/{id} - Account deleted successfully: account_id=%d", accountID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
