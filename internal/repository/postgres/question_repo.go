package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
	apperrors "github.com/yourusername/kcna-learn-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// GetByQuizID возвращает все вопросы квиза без пагинации.
// Используется при подсчете баллов: для формулы нужен полный набор вопросов.
func (r *QuestionRepo) GetByQuizID(quizID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("quiz_id = ?", quizID).Order("id").Find(&questions).Error
	return questions, err
}

// List возвращает вопросы с пагинацией, опционально фильтруя по квизу
func (r *QuestionRepo) List(quizID *uint, limit, offset int) ([]entity.Question, error) {
	query := r.db.Model(&entity.Question{})
	if quizID != nil {
		query = query.Where("quiz_id = ?", *quizID)
	}

	var questions []entity.Question
	err := query.Limit(limit).Offset(offset).Order("id").Find(&questions).Error
	return questions, err
}
