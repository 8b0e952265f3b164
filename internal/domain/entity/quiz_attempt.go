package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// AnswerMap - пользовательский тип для хранения ответов попытки в JSONB.
// Ключ - ID вопроса в строковом виде (JSON-объекты допускают только
// строковые ключи), значение - отправленный ответ.
type AnswerMap map[string]string

// Scan реализует интерфейс sql.Scanner для AnswerMap
func (a *AnswerMap) Scan(value interface{}) error {
	if value == nil {
		*a = AnswerMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*a = AnswerMap{}
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Value реализует интерфейс driver.Valuer для AnswerMap
func (a AnswerMap) Value() (driver.Value, error) {
	if len(a) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

// Get возвращает ответ на вопрос с указанным ID
func (a AnswerMap) Get(questionID uint) (string, bool) {
	answer, ok := a[strconv.FormatUint(uint64(questionID), 10)]
	return answer, ok
}

// QuizAttempt представляет одну неизменяемую оцененную попытку
// прохождения квиза. Записи создаются один раз и никогда не обновляются.
type QuizAttempt struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	QuizID      uint      `gorm:"not null;index" json:"quiz_id"`
	Answers     AnswerMap `gorm:"type:jsonb;not null" json:"answers"`
	Score       float64   `gorm:"not null" json:"score"`
	TimeTaken   *int      `json:"time_taken,omitempty"` // в секундах
	CompletedAt time.Time `gorm:"not null;index" json:"completed_at"`
}

// TableName определяет имя таблицы для GORM
func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}
