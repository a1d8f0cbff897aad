package models

import "github.com/m04kA/HMS-ReservationService/internal/domain"

// Request модели

// CreateUserRequest запрос на создание пользователя
// Пароль приходит открытым текстом и хэшируется сервисом
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest запрос на обновление пользователя
// Пароль меняется только если передан
type UpdateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password *string `json:"password,omitempty"`
	Role     string  `json:"role"`
}

// Response модели

// UserResponse ответ с данными пользователя
// Хэш пароля наружу не отдается
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// Методы конвертации

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{
		Users: make([]UserResponse, 0, len(users)),
	}

	for _, user := range users {
		if userResp := FromDomainUser(user); userResp != nil {
			resp.Users = append(resp.Users, *userResp)
		}
	}

	return resp
}
