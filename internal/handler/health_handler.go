package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/kcna-learn-api/internal/service"
)

// APIName и APIVersion отдаются корневым маршрутом
const (
	APIName    = "KCNA Learning Platform API"
	APIVersion = "1.0.0"
)

// HealthHandler обрабатывает служебные запросы состояния сервиса
type HealthHandler struct {
	healthService *service.HealthService
}

// NewHealthHandler создает новый обработчик health-проверки
func NewHealthHandler(healthService *service.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// Root возвращает имя и версию API
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": APIName,
		"version": APIVersion,
		"status":  "healthy",
	})
}

// Health пингует зависимости и возвращает 200 либо 503
func (h *HealthHandler) Health(c *gin.Context) {
	status, err := h.healthService.Check()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}

	c.JSON(http.StatusOK, status)
}
