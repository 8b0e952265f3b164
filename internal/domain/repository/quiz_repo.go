package repository

import (
	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
)

// QuizRepository определяет методы для работы с квизами
type QuizRepository interface {
	Create(quiz *entity.Quiz) error
	GetByID(id uint) (*entity.Quiz, error)
	// GetWithQuestions возвращает квиз вместе с его вопросами
	GetWithQuestions(id uint) (*entity.Quiz, error)
	List(limit, offset int) ([]entity.Quiz, error)
}
