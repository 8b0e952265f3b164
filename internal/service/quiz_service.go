package service

import (
	"fmt"

	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
	"github.com/yourusername/kcna-learn-api/internal/domain/repository"
)

// QuizService предоставляет методы для работы с квизами
type QuizService struct {
	quizRepo repository.QuizRepository
}

// NewQuizService создает новый сервис квизов
func NewQuizService(quizRepo repository.QuizRepository) *QuizService {
	return &QuizService{
		quizRepo: quizRepo,
	}
}

// CreateQuiz создает новый квиз. Категория и сложность - открытые строки,
// валидации по закрытому перечню нет.
func (s *QuizService) CreateQuiz(title, description, category, difficulty string, timeLimit *int, passingScore float64, isActive bool) (*entity.Quiz, error) {
	if passingScore <= 0 {
		passingScore = entity.DefaultPassingScore
	}

	quiz := &entity.Quiz{
		Title:        title,
		Description:  description,
		Category:     category,
		Difficulty:   difficulty,
		TimeLimit:    timeLimit,
		PassingScore: passingScore,
		IsActive:     isActive,
	}

	if err := s.quizRepo.Create(quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	return quiz, nil
}

// GetQuizWithQuestions возвращает квиз по ID вместе с его вопросами
func (s *QuizService) GetQuizWithQuestions(quizID uint) (*entity.Quiz, error) {
	return s.quizRepo.GetWithQuestions(quizID)
}

// ListQuizzes возвращает список квизов с пагинацией
func (s *QuizService) ListQuizzes(limit, offset int) ([]entity.Quiz, error) {
	return s.quizRepo.List(limit, offset)
}
