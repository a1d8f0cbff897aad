package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	userRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/user"
	"github.com/m04kA/HMS-ReservationService/internal/service/users/models"
)

// minPasswordLength минимальная длина пароля
const minPasswordLength = 8

// Service сервис для работы с пользователями бэкофиса
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create создает нового пользователя
// Пароль хэшируется bcrypt, открытым текстом не хранится
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: creating user email=%s", req.Email)

	if err := validateUserFields(req.Name, req.Email); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if len(req.Password) < minPasswordLength {
		s.logger.Warn("Create: password is too short for email=%s", req.Email)
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Create: failed to hash password for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Create - failed to hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Create: email=%s already taken", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created user id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	s.logger.Info("GetByID: fetching user id=%d", id)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// List получает список всех пользователей
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	s.logger.Info("List: fetching all users")

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// Update обновляет пользователя
// Пароль меняется только если передан новый
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: updating user id=%d", id)

	if err := validateUserFields(req.Name, req.Email); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	current, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Update: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	passwordHash := current.PasswordHash
	if req.Password != nil {
		if len(*req.Password) < minPasswordLength {
			s.logger.Warn("Update: password is too short for user id=%d", id)
			return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("Update: failed to hash password for user id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - failed to hash password: %v", ErrInternal, err)
		}
		passwordHash = string(hash)
	}

	user := &domain.User{
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         req.Role,
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Update: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Update: email=%s already taken", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Update: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated user id=%d", id)
	return models.FromDomainUser(user), nil
}

// Delete удаляет пользователя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting user id=%d", id)

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted user id=%d", id)
	return nil
}

// validateUserFields валидирует обязательные поля пользователя
func validateUserFields(name, email string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return nil
}
