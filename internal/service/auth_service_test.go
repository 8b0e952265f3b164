package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
	apperrors "github.com/yourusername/kcna-learn-api/internal/pkg/errors"
	"github.com/yourusername/kcna-learn-api/pkg/auth"
)

// MockUserRepo реализует repository.UserRepository
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) List(limit, offset int) ([]entity.User, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func newTestAuthService(t *testing.T) (*AuthService, *MockUserRepo) {
	t.Helper()
	userRepo := new(MockUserRepo)
	jwtService, err := auth.NewJWTService("test-secret-key", 30)
	require.NoError(t, err)
	service, err := NewAuthService(userRepo, jwtService)
	require.NoError(t, err)
	return service, userRepo
}

// hashedUser возвращает пользователя с уже захешированным паролем,
// как он лежал бы в базе после хука BeforeSave
func hashedUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:       1,
		Email:    "user@example.com",
		Username: "testuser",
		Password: string(hash),
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	service, userRepo := newTestAuthService(t)
	userRepo.On("GetByEmail", "new@example.com").Return(nil, apperrors.ErrNotFound)
	userRepo.On("GetByUsername", "newuser").Return(nil, apperrors.ErrNotFound)
	userRepo.On("Create", mock.AnythingOfType("*entity.User")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.User).ID = 7
	})

	user, err := service.Register("new@example.com", "newuser", "password123")

	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, "new@example.com", user.Email)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	service, userRepo := newTestAuthService(t)
	userRepo.On("GetByEmail", "taken@example.com").Return(&entity.User{ID: 1}, nil)

	_, err := service.Register("taken@example.com", "newuser", "password123")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	service, userRepo := newTestAuthService(t)
	userRepo.On("GetByEmail", "new@example.com").Return(nil, apperrors.ErrNotFound)
	userRepo.On("GetByUsername", "taken").Return(&entity.User{ID: 2}, nil)

	_, err := service.Register("new@example.com", "taken", "password123")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, userRepo := newTestAuthService(t)
	user := hashedUser(t, "password123")
	userRepo.On("GetByEmail", user.Email).Return(user, nil)

	token, loggedIn, err := service.Login(user.Email, "password123")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, userRepo := newTestAuthService(t)
	user := hashedUser(t, "password123")
	userRepo.On("GetByEmail", user.Email).Return(user, nil)

	_, _, err := service.Login(user.Email, "wrongpassword")

	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	// Неизвестный email дает ту же ошибку, что и неверный пароль
	service, userRepo := newTestAuthService(t)
	userRepo.On("GetByEmail", "nobody@example.com").Return(nil, apperrors.ErrNotFound)

	_, _, err := service.Login("nobody@example.com", "password123")

	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestNewAuthService_RequiresDependencies(t *testing.T) {
	_, err := NewAuthService(nil, nil)
	assert.Error(t, err)
}
