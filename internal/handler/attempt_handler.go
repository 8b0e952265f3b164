package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
	"github.com/yourusername/kcna-learn-api/internal/middleware"
	"github.com/yourusername/kcna-learn-api/internal/service"
)

// AttemptHandler обрабатывает запросы, связанные с попытками прохождения квизов
type AttemptHandler struct {
	attemptService *service.AttemptService
}

// NewAttemptHandler создает новый обработчик попыток
func NewAttemptHandler(attemptService *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{
		attemptService: attemptService,
	}
}

// SubmitAttemptRequest представляет запрос на отправку попытки.
// Ключи answers - ID вопросов в строковом виде.
type SubmitAttemptRequest struct {
	QuizID    uint             `json:"quiz_id" binding:"required"`
	Answers   entity.AnswerMap `json:"answers" binding:"required"`
	TimeTaken *int             `json:"time_taken" binding:"omitempty,min=0"`
}

// SubmitAttempt оценивает и сохраняет попытку текущего пользователя
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.attemptService.Submit(user.ID, req.QuizID, req.Answers, req.TimeTaken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempt)
}

// ListAttempts возвращает попытки текущего пользователя, новые первыми
func (h *AttemptHandler) ListAttempts(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit, offset := parsePagination(c)

	var quizID *uint
	if raw := c.Query("quiz_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz_id"})
			return
		}
		id := uint(parsed)
		quizID = &id
	}

	attempts, err := h.attemptService.ListAttempts(user.ID, quizID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempts)
}
