package repository

import (
	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
)

// AttemptRepository определяет методы для работы с попытками прохождения квизов.
// Попытки append-only: интерфейс намеренно не содержит Update/Delete.
type AttemptRepository interface {
	Create(attempt *entity.QuizAttempt) error
	// ListByUser возвращает попытки пользователя, новые первыми,
	// опционально отфильтрованные по квизу
	ListByUser(userID uint, quizID *uint, limit, offset int) ([]entity.QuizAttempt, error)
}
