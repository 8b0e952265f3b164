package repository

import (
	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
)

// ProgressRepository определяет методы для работы с прогрессом пользователей
type ProgressRepository interface {
	// RecordAttempt атомарно создает или обновляет запись прогресса для пары
	// (user, quiz): best_score = max(best_score, score), attempts_count += 1.
	// Одним UPSERT-запросом, чтобы конкурентные попытки не теряли обновления.
	RecordAttempt(userID, quizID uint, score float64) error
	GetByUserAndQuiz(userID, quizID uint) (*entity.UserProgress, error)
	ListByUser(userID uint) ([]entity.UserProgress, error)
}
