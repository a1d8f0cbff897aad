package models

import "github.com/m04kA/HMS-ReservationService/internal/domain"

// Request модели

// CreateParameterRequest запрос на создание параметра
type CreateParameterRequest struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
}

// UpdateParameterRequest запрос на частичное обновление параметра
// Ключ после создания не меняется
type UpdateParameterRequest struct {
	Value       *string `json:"value,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListParametersRequest запрос на постраничный список параметров
type ListParametersRequest struct {
	Skip  uint64 `json:"skip"`
	Limit uint64 `json:"limit"`
}

// Response модели

// ParameterResponse ответ с данными параметра
type ParameterResponse struct {
	ID          int64   `json:"id"`
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
}

// ParameterListResponse ответ со списком параметров
type ParameterListResponse struct {
	Parameters []ParameterResponse `json:"parameters"`
}

// Методы конвертации

// FromDomainParameter конвертирует domain модель в DTO
func FromDomainParameter(p *domain.Parameter) *ParameterResponse {
	if p == nil {
		return nil
	}

	return &ParameterResponse{
		ID:          p.ID,
		Key:         p.Key,
		Value:       p.Value,
		Description: p.Description,
	}
}

// FromDomainParameterList конвертирует список domain моделей в DTO
func FromDomainParameterList(parameters []*domain.Parameter) *ParameterListResponse {
	resp := &ParameterListResponse{
		Parameters: make([]ParameterResponse, 0, len(parameters)),
	}

	for _, parameter := range parameters {
		if parameterResp := FromDomainParameter(parameter); parameterResp != nil {
			resp.Parameters = append(resp.Parameters, *parameterResp)
		}
	}

	return resp
}
