package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
)

// AttemptRepo реализует repository.AttemptRepository
type AttemptRepo struct {
	db *gorm.DB
}

// NewAttemptRepo создает новый репозиторий попыток
func NewAttemptRepo(db *gorm.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// Create сохраняет новую попытку. Попытки неизменяемы после создания.
func (r *AttemptRepo) Create(attempt *entity.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

// ListByUser возвращает попытки пользователя, новые первыми,
// опционально отфильтрованные по квизу
func (r *AttemptRepo) ListByUser(userID uint, quizID *uint, limit, offset int) ([]entity.QuizAttempt, error) {
	query := r.db.Where("user_id = ?", userID)
	if quizID != nil {
		query = query.Where("quiz_id = ?", *quizID)
	}

	var attempts []entity.QuizAttempt
	err := query.Order("completed_at DESC").Limit(limit).Offset(offset).Find(&attempts).Error
	return attempts, err
}
