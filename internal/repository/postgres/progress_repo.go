package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
	apperrors "github.com/yourusername/kcna-learn-api/internal/pkg/errors"
)

// ProgressRepo реализует repository.ProgressRepository
type ProgressRepo struct {
	db *gorm.DB
}

// NewProgressRepo создает новый репозиторий прогресса
func NewProgressRepo(db *gorm.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// RecordAttempt атомарно фиксирует попытку в записи прогресса.
// Один INSERT ... ON CONFLICT-запрос вместо read-then-write: конкурентные
// попытки одного пользователя по одному квизу не теряют инкременты
// attempts_count, а best_score считается через GREATEST на стороне БД.
func (r *ProgressRepo) RecordAttempt(userID, quizID uint, score float64) error {
	now := time.Now()
	progress := &entity.UserProgress{
		UserID:        userID,
		QuizID:        quizID,
		BestScore:     score,
		AttemptsCount: 1,
		LastAttemptAt: &now,
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "quiz_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"best_score":      gorm.Expr("GREATEST(user_progress.best_score, EXCLUDED.best_score)"),
			"attempts_count":  gorm.Expr("user_progress.attempts_count + 1"),
			"last_attempt_at": now,
			"updated_at":      now,
		}),
	}).Create(progress).Error
}

// GetByUserAndQuiz возвращает запись прогресса для пары (user, quiz)
func (r *ProgressRepo) GetByUserAndQuiz(userID, quizID uint) (*entity.UserProgress, error) {
	var progress entity.UserProgress
	err := r.db.Where("user_id = ? AND quiz_id = ?", userID, quizID).First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &progress, nil
}

// ListByUser возвращает все записи прогресса пользователя
func (r *ProgressRepo) ListByUser(userID uint) ([]entity.UserProgress, error) {
	var progress []entity.UserProgress
	err := r.db.Where("user_id = ?", userID).Order("quiz_id").Find(&progress).Error
	return progress, err
}
