package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
	"github.com/yourusername/kcna-learn-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// CreateQuestionRequest представляет запрос на создание вопроса
type CreateQuestionRequest struct {
	QuizID        uint             `json:"quiz_id" binding:"required"`
	QuestionText  string           `json:"question_text" binding:"required,min=3,max=1000"`
	QuestionType  string           `json:"question_type" binding:"required,max=20"`
	Options       entity.OptionMap `json:"options" binding:"omitempty"`
	CorrectAnswer string           `json:"correct_answer" binding:"required,max=500"`
	Explanation   string           `json:"explanation" binding:"omitempty,max=1000"`
	Points        int              `json:"points" binding:"omitempty,min=1"`
}

// ListQuestions возвращает вопросы с пагинацией, опционально по одному квизу.
// Ответ включает correct_answer - контракт API унаследован как есть.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
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

	questions, err := h.questionService.ListQuestions(quizID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

// CreateQuestion обрабатывает запрос на создание вопроса (только администратор)
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.questionService.CreateQuestion(req.QuizID, req.QuestionText, req.QuestionType, req.Options, req.CorrectAnswer, req.Explanation, req.Points)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}
