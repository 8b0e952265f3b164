package entity

import (
	"time"
)

// Известные категории квизов. Набор открытый: поле хранит произвольную
// строку, валидация по закрытому перечню намеренно не выполняется.
const (
	QuizCategoryFundamentals = "fundamentals"
	QuizCategoryArchitecture = "architecture"
	QuizCategoryNetworking   = "networking"
	QuizCategoryStorage      = "storage"
)

// Известные уровни сложности. Набор так же открытый.
const (
	QuizDifficultyBeginner     = "beginner"
	QuizDifficultyIntermediate = "intermediate"
	QuizDifficultyAdvanced     = "advanced"
)

// DefaultPassingScore - проходной балл по умолчанию (в процентах)
const DefaultPassingScore = 70.0

// Quiz представляет квиз - именованный набор вопросов с проходным баллом
type Quiz struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"size:100;not null" json:"title"`
	Description  string     `gorm:"size:500;not null;default:''" json:"description"`
	Category     string     `gorm:"size:50;not null;index" json:"category"`
	Difficulty   string     `gorm:"size:20;not null" json:"difficulty"`
	TimeLimit    *int       `json:"time_limit,omitempty"` // в минутах, nil - без ограничения
	PassingScore float64    `gorm:"not null;default:70" json:"passing_score"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	Questions    []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Quiz) TableName() string {
	return "quizzes"
}

// QuestionCount возвращает количество загруженных вопросов квиза
func (q *Quiz) QuestionCount() int {
	return len(q.Questions)
}
