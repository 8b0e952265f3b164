package repository

import (
	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	// GetByQuizID возвращает все вопросы указанного квиза без пагинации
	GetByQuizID(quizID uint) ([]entity.Question, error)
	// List возвращает вопросы с пагинацией, опционально отфильтрованные по квизу
	List(quizID *uint, limit, offset int) ([]entity.Question, error)
}
