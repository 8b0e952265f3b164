package service

import (
	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
	"github.com/yourusername/kcna-learn-api/internal/domain/repository"
)

// ProgressService предоставляет методы для просмотра прогресса пользователя
type ProgressService struct {
	progressRepo repository.ProgressRepository
}

// NewProgressService создает новый сервис прогресса
func NewProgressService(progressRepo repository.ProgressRepository) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
	}
}

// ListProgress возвращает все записи прогресса пользователя
func (s *ProgressService) ListProgress(userID uint) ([]entity.UserProgress, error) {
	return s.progressRepo.ListByUser(userID)
}

// GetQuizProgress возвращает прогресс пользователя по одному квизу.
// Возвращает ErrNotFound, если у пары (user, quiz) еще нет записи.
func (s *ProgressService) GetQuizProgress(userID, quizID uint) (*entity.UserProgress, error) {
	return s.progressRepo.GetByUserAndQuiz(userID, quizID)
}
