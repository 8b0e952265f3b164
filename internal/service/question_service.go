package service

import (
	"fmt"

	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
	"github.com/yourusername/kcna-learn-api/internal/domain/repository"
)

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	quizRepo     repository.QuizRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository, quizRepo repository.QuizRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		quizRepo:     quizRepo,
	}
}

// CreateQuestion создает новый вопрос для существующего квиза.
// Возвращает ErrNotFound, если квиз отсутствует. Тип вопроса - открытая
// строка, по закрытому перечню не проверяется.
func (s *QuestionService) CreateQuestion(quizID uint, text, questionType string, options entity.OptionMap, correctAnswer, explanation string, points int) (*entity.Question, error) {
	// Вопрос обязан ссылаться на существующий квиз
	if _, err := s.quizRepo.GetByID(quizID); err != nil {
		return nil, err
	}

	if points <= 0 {
		points = 1
	}

	question := &entity.Question{
		QuizID:        quizID,
		QuestionText:  text,
		QuestionType:  questionType,
		Options:       options,
		CorrectAnswer: correctAnswer,
		Explanation:   explanation,
		Points:        points,
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return question, nil
}

// ListQuestions возвращает вопросы с пагинацией, опционально по одному квизу.
// Список без фильтра отдает вопросы всех квизов, включая correct_answer.
func (s *QuestionService) ListQuestions(quizID *uint, limit, offset int) ([]entity.Question, error) {
	return s.questionRepo.List(quizID, limit, offset)
}
