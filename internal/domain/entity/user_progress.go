package entity

import (
	"time"
)

// UserProgress представляет сводку прогресса пользователя по одному квизу:
// лучший балл и количество попыток. Запись уникальна для пары (user, quiz),
// создается при первой попытке и обновляется при каждой следующей.
// BestScore монотонно не убывает на протяжении жизни записи.
type UserProgress struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index;uniqueIndex:idx_user_quiz_progress" json:"user_id"`
	QuizID        uint       `gorm:"not null;index;uniqueIndex:idx_user_quiz_progress" json:"quiz_id"`
	BestScore     float64    `gorm:"not null;default:0" json:"best_score"`
	AttemptsCount int        `gorm:"not null;default:0" json:"attempts_count"`
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	// Completed объявлено в модели данных, но ни один обработчик его не
	// выставляет. Семантика не определена продуктом, поле остается false.
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (UserProgress) TableName() string {
	return "user_progress"
}
