package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/HMS-ReservationService/internal/domain"
	userRepo "github.com/m04kA/HMS-ReservationService/internal/infra/storage/user"
	"github.com/m04kA/HMS-ReservationService/internal/service/users/models"
	"github.com/m04kA/HMS-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (f *fakeUserRepo) emailTaken(email string, excludeID int64) bool {
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeID {
			return true
		}
	}
	return false
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if f.emailTaken(user.Email, 0) {
		return nil, userRepo.ErrEmailTaken
	}

	f.nextID++
	stored := *user
	stored.ID = f.nextID
	f.users[stored.ID] = &stored

	created := stored
	return &created, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	result := make([]*domain.User, 0, len(f.users))
	for _, u := range f.users {
		copied := *u
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return userRepo.ErrUserNotFound
	}
	if f.emailTaken(user.Email, user.ID) {
		return userRepo.ErrEmailTaken
	}

	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func TestService_Create_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Name:     "Admin",
		Email:    "admin@hotel.test",
		Password: "s3cret-password",
		Role:     "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "admin@hotel.test", resp.Email)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-password", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-password")))
}

func TestService_Create_ShortPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Name:     "Admin",
		Email:    "admin@hotel.test",
		Password: "short",
		Role:     "admin",
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Create_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Name: "First", Email: "admin@hotel.test", Password: "s3cret-password", Role: "admin",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &models.CreateUserRequest{
		Name: "Second", Email: "admin@hotel.test", Password: "s3cret-password", Role: "staff",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Update_KeepsPasswordWhenNotProvided(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Name: "Admin", Email: "admin@hotel.test", Password: "s3cret-password", Role: "admin",
	})
	require.NoError(t, err)

	originalHash := repo.users[created.ID].PasswordHash

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateUserRequest{
		Name:  "Administrator",
		Email: "admin@hotel.test",
		Role:  "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, originalHash, repo.users[created.ID].PasswordHash)
	assert.Equal(t, "Administrator", repo.users[created.ID].Name)
}

func TestService_Update_RehashesNewPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Name: "Admin", Email: "admin@hotel.test", Password: "s3cret-password", Role: "admin",
	})
	require.NoError(t, err)

	originalHash := repo.users[created.ID].PasswordHash

	_, err = svc.Update(context.Background(), created.ID, &models.UpdateUserRequest{
		Name:     "Admin",
		Email:    "admin@hotel.test",
		Password: ptr.Ptr("another-password"),
		Role:     "admin",
	})

	require.NoError(t, err)

	newHash := repo.users[created.ID].PasswordHash
	assert.NotEqual(t, originalHash, newHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("another-password")))
}

func TestService_ResponseOmitsPasswordHash(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateUserRequest{
		Name: "Admin", Email: "admin@hotel.test", Password: "s3cret-password", Role: "admin",
	})
	require.NoError(t, err)

	fetched, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "admin@hotel.test", fetched.Email)
}
