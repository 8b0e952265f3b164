package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Известные типы вопросов. Как и категории квизов, набор открытый.
const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
	QuestionTypeFillBlank      = "fill_blank"
)

// OptionMap - пользовательский тип для хранения вариантов ответа в JSONB.
// Ключ - метка варианта ("a", "b", ...), значение - текст варианта.
type OptionMap map[string]string

// Scan реализует интерфейс sql.Scanner для OptionMap
// Используется GORM для чтения JSONB данных из базы
func (o *OptionMap) Scan(value interface{}) error {
	if value == nil {
		*o = OptionMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*o = OptionMap{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для OptionMap
// Используется GORM для записи OptionMap в JSONB в базе
func (o OptionMap) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("{}"), nil // Возвращаем пустой JSON объект вместо null
	}
	return json.Marshal(o)
}

// Question представляет один оцениваемый вопрос квиза
type Question struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	QuizID        uint      `gorm:"not null;index" json:"quiz_id"`
	QuestionText  string    `gorm:"size:1000;not null" json:"question_text"`
	QuestionType  string    `gorm:"size:20;not null" json:"question_type"`
	Options       OptionMap `gorm:"type:jsonb" json:"options,omitempty"`
	CorrectAnswer string    `gorm:"size:500;not null" json:"correct_answer"`
	Explanation   string    `gorm:"size:1000;not null;default:''" json:"explanation,omitempty"`
	Points        int       `gorm:"not null;default:1" json:"points"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsCorrect проверяет ответ строгим строковым сравнением.
// Без trim и нормализации регистра: "A " и "a" не совпадают с "A".
func (q *Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}
