package reports

import (
	"net/url"
	"time"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	reportsService "github.com/m04kA/HMS-ReservationService/internal/service/reports/models"
)

// parseDateParam парсит опциональный параметр даты из query string
func parseDateParam(query url.Values, name string) (*time.Time, error) {
	value := query.Get(name)
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}

// parseStringParam извлекает опциональный строковый параметр из query string
func parseStringParam(query url.Values, name string) *string {
	value := query.Get(name)
	if value == "" {
		return nil
	}
	return &value
}

// ledgerRequestFromQuery собирает запрос книги учета из query string
func ledgerRequestFromQuery(query url.Values) (*reportsService.LedgerRequest, error) {
	from, err := parseDateParam(query, "from")
	if err != nil {
		return nil, err
	}

	to, err := parseDateParam(query, "to")
	if err != nil {
		return nil, err
	}

	return &reportsService.LedgerRequest{
		From: from,
		To:   to,
		Kind: parseStringParam(query, "kind"),
	}, nil
}

// guestRegistryRequestFromQuery собирает запрос регистра гостей из query string
func guestRegistryRequestFromQuery(query url.Values) (*reportsService.GuestRegistryRequest, error) {
	from, err := parseDateParam(query, "from")
	if err != nil {
		return nil, err
	}

	to, err := parseDateParam(query, "to")
	if err != nil {
		return nil, err
	}

	return &reportsService.GuestRegistryRequest{
		From:           from,
		To:             to,
		DocumentNumber: parseStringParam(query, "document"),
		GuestName:      parseStringParam(query, "name"),
	}, nil
}

// occupancyRequestFromQuery собирает запрос регистра занятости из query string
func occupancyRequestFromQuery(query url.Values) (*reportsService.OccupancyRequest, error) {
	from, err := parseDateParam(query, "from")
	if err != nil {
		return nil, err
	}

	to, err := parseDateParam(query, "to")
	if err != nil {
		return nil, err
	}

	return &reportsService.OccupancyRequest{
		From:       from,
		To:         to,
		RoomNumber: parseStringParam(query, "room"),
		RoomType:   parseStringParam(query, "type"),
	}, nil
}
