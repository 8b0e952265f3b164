package service

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
	"github.com/yourusername/kcna-learn-api/internal/domain/repository"
)

const (
	// attemptCacheKeyPrefix - префикс ключа кеша сводки попытки
	attemptCacheKeyPrefix = "quiz_attempt:"

	// attemptCacheTTL - время жизни кешированной сводки
	attemptCacheTTL = time.Hour
)

// AttemptSummary - производная сводка попытки, записываемая в кеш
type AttemptSummary struct {
	ID             uint    `json:"id"`
	Score          float64 `json:"score"`
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
}

// AttemptService предоставляет методы для отправки и просмотра попыток
type AttemptService struct {
	attemptRepo  repository.AttemptRepository
	progressRepo repository.ProgressRepository
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	cacheRepo    repository.CacheRepository
}

// NewAttemptService создает новый сервис попыток
func NewAttemptService(
	attemptRepo repository.AttemptRepository,
	progressRepo repository.ProgressRepository,
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	cacheRepo repository.CacheRepository,
) *AttemptService {
	return &AttemptService{
		attemptRepo:  attemptRepo,
		progressRepo: progressRepo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		cacheRepo:    cacheRepo,
	}
}

// Submit оценивает и сохраняет попытку прохождения квиза.
//
// Балл - доля правильных ответов в процентах; сравнение строгое строковое.
// Ключи answers, не соответствующие вопросам квиза, молча игнорируются:
// они не могут совпасть ни с одним вопросом и не влияют на балл.
// Квиз без вопросов оценивается в 0.
//
// Запись попытки и upsert прогресса идут без общей транзакции; запись в кеш
// best-effort: ее отказ не влияет ни на сохраненные данные, ни на ответ.
func (s *AttemptService) Submit(userID, quizID uint, answers entity.AnswerMap, timeTaken *int) (*entity.QuizAttempt, error) {
	// Квиз должен существовать
	if _, err := s.quizRepo.GetByID(quizID); err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.GetByQuizID(quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	correct := 0
	for i := range questions {
		if answer, ok := answers.Get(questions[i].ID); ok && questions[i].IsCorrect(answer) {
			correct++
		}
	}

	score := 0.0
	if len(questions) > 0 {
		score = float64(correct) / float64(len(questions)) * 100
	}

	attempt := &entity.QuizAttempt{
		UserID:      userID,
		QuizID:      quizID,
		Answers:     answers,
		Score:       score,
		TimeTaken:   timeTaken,
		CompletedAt: time.Now(),
	}
	if err := s.attemptRepo.Create(attempt); err != nil {
		return nil, fmt.Errorf("failed to save attempt: %w", err)
	}

	if err := s.progressRepo.RecordAttempt(userID, quizID, score); err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}

	// Кеш - телеметрия, не источник истины: ошибку только логируем
	summary := AttemptSummary{
		ID:             attempt.ID,
		Score:          score,
		TotalQuestions: len(questions),
		CorrectAnswers: correct,
	}
	cacheKey := fmt.Sprintf("%s%d", attemptCacheKeyPrefix, attempt.ID)
	if err := s.cacheRepo.SetJSON(cacheKey, summary, attemptCacheTTL); err != nil {
		log.Printf("[AttemptService] Не удалось закешировать сводку попытки %d: %v", attempt.ID, err)
	}

	return attempt, nil
}

// ListAttempts возвращает попытки пользователя, новые первыми,
// опционально отфильтрованные по квизу
func (s *AttemptService) ListAttempts(userID uint, quizID *uint, limit, offset int) ([]entity.QuizAttempt, error) {
	return s.attemptRepo.ListByUser(userID, quizID, limit, offset)
}
