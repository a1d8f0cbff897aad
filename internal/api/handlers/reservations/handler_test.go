package reservations

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reservationsService "github.com/m04kA/HMS-ReservationService/internal/service/reservations/models"
	cancelReservation "github.com/m04kA/HMS-ReservationService/internal/usecase/cancel_reservation"
	createReservation "github.com/m04kA/HMS-ReservationService/internal/usecase/create_reservation"
	"github.com/m04kA/HMS-ReservationService/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// stubCreateUseCase возвращает заранее заданный результат
type stubCreateUseCase struct {
	resp *createReservation.Response
	err  error
}

func (s *stubCreateUseCase) Execute(_ context.Context, _ *createReservation.Request) (*createReservation.Response, error) {
	return s.resp, s.err
}

type stubCancelUseCase struct {
	resp *cancelReservation.Response
	err  error
}

func (s *stubCancelUseCase) Execute(_ context.Context, _ *cancelReservation.Request) (*cancelReservation.Response, error) {
	return s.resp, s.err
}

type stubService struct {
	getResp  *reservationsService.ReservationResponse
	getErr   error
	listResp *reservationsService.ReservationListResponse
	listErr  error
}

func (s *stubService) GetByID(_ context.Context, _ int64) (*reservationsService.ReservationResponse, error) {
	return s.getResp, s.getErr
}

func (s *stubService) List(_ context.Context) (*reservationsService.ReservationListResponse, error) {
	return s.listResp, s.listErr
}

func (s *stubService) ListByRoom(_ context.Context, _ *reservationsService.ListByRoomRequest) (*reservationsService.ReservationListResponse, error) {
	return s.listResp, s.listErr
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/reservations", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/reservations/{reservationId}/cancel", h.Cancel).Methods(http.MethodPatch)
	r.HandleFunc("/api/v1/reservations/{reservationId}", h.GetByID).Methods(http.MethodGet)
	return r
}

func createBody(t *testing.T) *bytes.Buffer {
	t.Helper()

	body, err := json.Marshal(CreateReservationRequest{
		RoomID:    1,
		GuestID:   "guest-1",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-15",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHandler_Create_Success(t *testing.T) {
	createUC := &stubCreateUseCase{
		resp: &createReservation.Response{
			ID:        7,
			RoomID:    1,
			GuestID:   "guest-1",
			StartDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
			Status:    string(domain.StatusBooked),
			Nights:    5,
			CreatedAt: time.Now(),
		},
	}
	h := NewHandler(createUC, &stubCancelUseCase{}, &stubService{}, nopLogger{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", createBody(t))

	newRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "booked", resp.Status)
	assert.Equal(t, "2026-03-10", resp.StartDate)
	assert.Equal(t, "2026-03-15", resp.EndDate)
	assert.Equal(t, 5, resp.Nights)
}

func TestHandler_Create_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{"invalid range", createReservation.ErrInvalidRange, http.StatusBadRequest},
		{"invalid input", createReservation.ErrInvalidInput, http.StatusBadRequest},
		{"room not found", createReservation.ErrRoomNotFound, http.StatusNotFound},
		{"room unavailable", createReservation.ErrRoomUnavailable, http.StatusBadRequest},
		{"date conflict", createReservation.ErrDateConflict, http.StatusConflict},
		{"serialization conflict", txmanager.ErrSerialization, http.StatusConflict},
		{"internal error", createReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubCreateUseCase{err: tt.useCaseErr}, &stubCancelUseCase{}, &stubService{}, nopLogger{})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", createBody(t))

			newRouter(h).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Create_BadBody(t *testing.T) {
	h := NewHandler(&stubCreateUseCase{}, &stubCancelUseCase{}, &stubService{}, nopLogger{})

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not-json"},
		{"unknown field", `{"roomId":1,"guestId":"g","startDate":"2026-03-10","endDate":"2026-03-15","extra":true}`},
		{"bad date format", `{"roomId":1,"guestId":"g","startDate":"10.03.2026","endDate":"2026-03-15"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewBufferString(tt.body))

			newRouter(h).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Cancel_Success(t *testing.T) {
	cancelUC := &stubCancelUseCase{
		resp: &cancelReservation.Response{
			ID:        7,
			RoomID:    1,
			GuestID:   "guest-1",
			StartDate: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
			Status:    string(domain.StatusCancelled),
			CreatedAt: time.Now(),
		},
	}
	h := NewHandler(&stubCreateUseCase{}, cancelUC, &stubService{}, nopLogger{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/7/cancel", nil)

	newRouter(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandler_Cancel_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{"not found", cancelReservation.ErrReservationNotFound, http.StatusNotFound},
		{"already cancelled", cancelReservation.ErrAlreadyCancelled, http.StatusBadRequest},
		{"serialization conflict", txmanager.ErrSerialization, http.StatusConflict},
		{"internal error", cancelReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubCreateUseCase{}, &stubCancelUseCase{err: tt.useCaseErr}, &stubService{}, nopLogger{})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/7/cancel", nil)

			newRouter(h).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Cancel_InvalidID(t *testing.T) {
	h := NewHandler(&stubCreateUseCase{}, &stubCancelUseCase{}, &stubService{}, nopLogger{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/abc/cancel", nil)

	newRouter(h).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
