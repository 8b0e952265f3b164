package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
	"github.com/yourusername/kcna-learn-api/internal/domain/repository"
	apperrors "github.com/yourusername/kcna-learn-api/internal/pkg/errors"
	"github.com/yourusername/kcna-learn-api/pkg/auth"
)

// AuthService предоставляет методы для регистрации и входа пользователей
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("UserRepository is required for AuthService")
	}
	if jwtService == nil {
		return nil, fmt.Errorf("JWTService is required for AuthService")
	}
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}, nil
}

// Register регистрирует нового пользователя.
// Возвращает ErrConflict, если email или имя пользователя уже заняты.
func (s *AuthService) Register(email, username, password string) (*entity.User, error) {
	// Проверяем занятость email
	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	// Проверяем занятость имени пользователя
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, fmt.Errorf("username already taken: %w", apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	// Пароль хешируется хуком BeforeSave
	user := &entity.User{
		Email:    email,
		Username: username,
		Password: password,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[AuthService] Пользователь ID=%d (%s) успешно зарегистрирован", user.ID, user.Email)
	return user, nil
}

// Login проверяет учетные данные и выпускает access-токен.
// Возвращает ErrUnauthorized при любом несовпадении: ответ не раскрывает,
// существует ли email.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrUnauthorized
		}
		return "", nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.CheckPassword(password) {
		return "", nil, apperrors.ErrUnauthorized
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}
