package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/kcna-learn-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с квизами
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик квизов
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// CreateQuizRequest представляет запрос на создание квиза
type CreateQuizRequest struct {
	Title        string  `json:"title" binding:"required,min=3,max=100"`
	Description  string  `json:"description" binding:"omitempty,max=500"`
	Category     string  `json:"category" binding:"required,max=50"`
	Difficulty   string  `json:"difficulty" binding:"required,max=20"`
	TimeLimit    *int    `json:"time_limit" binding:"omitempty,min=1"`
	PassingScore float64 `json:"passing_score" binding:"omitempty,min=0,max=100"`
	IsActive     *bool   `json:"is_active"`
}

// ListQuizzes возвращает список квизов с пагинацией
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	limit, offset := parsePagination(c)

	quizzes, err := h.quizService.ListQuizzes(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

// GetQuiz возвращает квиз по ID вместе с вопросами
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz id"})
		return
	}

	quiz, err := h.quizService.GetQuizWithQuestions(uint(quizID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// CreateQuiz обрабатывает запрос на создание квиза (только администратор)
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Активность по умолчанию true, если поле не передали
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	quiz, err := h.quizService.CreateQuiz(req.Title, req.Description, req.Category, req.Difficulty, req.TimeLimit, req.PassingScore, isActive)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}
