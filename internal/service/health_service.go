package service

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/kcna-learn-api/internal/domain/repository"
	apperrors "github.com/yourusername/kcna-learn-api/internal/pkg/errors"
)

// HealthStatus описывает результат health-проверки
type HealthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Timestamp string `json:"timestamp"`
}

// HealthService проверяет доступность хранилища и кеша
type HealthService struct {
	db        *gorm.DB
	cacheRepo repository.CacheRepository
}

// NewHealthService создает новый сервис health-проверки
func NewHealthService(db *gorm.DB, cacheRepo repository.CacheRepository) *HealthService {
	return &HealthService{
		db:        db,
		cacheRepo: cacheRepo,
	}
}

// Check пингует PostgreSQL и Redis. Возвращает ErrUnavailable,
// если хотя бы одна из зависимостей недоступна.
func (s *HealthService) Check() (*HealthStatus, error) {
	status := &HealthStatus{
		Status:    "healthy",
		Database:  "connected",
		Redis:     "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		status.Status = "unhealthy"
		status.Database = "error"
		return status, fmt.Errorf("database handle unavailable: %w", apperrors.ErrUnavailable)
	}
	if err := sqlDB.Ping(); err != nil {
		status.Status = "unhealthy"
		status.Database = "unreachable"
		return status, fmt.Errorf("database ping failed: %w", apperrors.ErrUnavailable)
	}

	if err := s.cacheRepo.Ping(); err != nil {
		status.Status = "unhealthy"
		status.Redis = "unreachable"
		return status, fmt.Errorf("redis ping failed: %w", apperrors.ErrUnavailable)
	}

	return status, nil
}
