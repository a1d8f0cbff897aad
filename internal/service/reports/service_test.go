package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	"github.com/m04kA/HMS-ReservationService/internal/service/reports/models"
	"github.com/m04kA/HMS-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeReportRepo возвращает заранее заданные отчеты
type fakeReportRepo struct {
	ledger     []*domain.LedgerEntry
	lastFilter domain.LedgerFilter
	summary    *domain.FinancialSummary
}

func (f *fakeReportRepo) DailyLedger(_ context.Context, filter domain.LedgerFilter) ([]*domain.LedgerEntry, error) {
	f.lastFilter = filter
	return f.ledger, nil
}

func (f *fakeReportRepo) GuestRegistry(_ context.Context, _ domain.GuestRegistryFilter) ([]*domain.GuestRegistryRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) Occupancy(_ context.Context, _ domain.OccupancyFilter) ([]*domain.OccupancyRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) FinancialSummary(_ context.Context, filter domain.LedgerFilter) (*domain.FinancialSummary, error) {
	f.lastFilter = filter
	return f.summary, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestService_DailyLedger(t *testing.T) {
	repo := &fakeReportRepo{
		ledger: []*domain.LedgerEntry{
			{EntryDate: date(2026, time.March, 10), Kind: domain.LedgerKindIncome, Description: "room 101", Amount: 500},
			{EntryDate: date(2026, time.March, 11), Kind: domain.LedgerKindExpense, Description: "laundry", Amount: 40},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.DailyLedger(context.Background(), &models.LedgerRequest{})

	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "2026-03-10", resp.Entries[0].EntryDate)
	assert.Equal(t, "income", resp.Entries[0].Kind)
	assert.Equal(t, 500.0, resp.Entries[0].Amount)
}

func TestService_DailyLedger_InvalidKind(t *testing.T) {
	svc := NewService(&fakeReportRepo{}, nopLogger{})

	_, err := svc.DailyLedger(context.Background(), &models.LedgerRequest{
		Kind: ptr.Ptr("refund"),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_DailyLedger_InvalidPeriod(t *testing.T) {
	svc := NewService(&fakeReportRepo{}, nopLogger{})

	from := date(2026, time.March, 20)
	to := date(2026, time.March, 10)

	_, err := svc.DailyLedger(context.Background(), &models.LedgerRequest{
		From: &from,
		To:   &to,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_FinancialSummary_Period(t *testing.T) {
	from := date(2026, time.March, 1)
	to := date(2026, time.March, 31)

	tests := []struct {
		name       string
		from       *time.Time
		to         *time.Time
		wantPeriod string
	}{
		{"full period", &from, &to, "2026-03-01 - 2026-03-31"},
		{"open end", &from, nil, "from 2026-03-01"},
		{"open start", nil, &to, "until 2026-03-31"},
		{"no bounds", nil, nil, "all time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReportRepo{
				summary: &domain.FinancialSummary{TotalIncome: 1000, TotalExpense: 300, Balance: 700},
			}
			svc := NewService(repo, nopLogger{})

			resp, err := svc.FinancialSummary(context.Background(), &models.LedgerRequest{
				From: tt.from,
				To:   tt.to,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantPeriod, resp.Period)
			assert.Equal(t, 1000.0, resp.TotalIncome)
			assert.Equal(t, 300.0, resp.TotalExpense)
			assert.Equal(t, 700.0, resp.Balance)
		})
	}
}
