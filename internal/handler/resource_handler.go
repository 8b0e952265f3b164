package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/kcna-learn-api/internal/pkg/errors"
	"github.com/yourusername/kcna-learn-api/internal/service"
)

// ResourceHandler отдает учебные материалы. Все маршруты публичные.
type ResourceHandler struct {
	resourceService *service.ResourceService
}

// NewResourceHandler создает новый обработчик учебных материалов
func NewResourceHandler(resourceService *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
	}
}

// GetLearningResources возвращает статичное дерево тем и материалов
func (h *ResourceHandler) GetLearningResources(c *gin.Context) {
	c.JSON(http.StatusOK, h.resourceService.LearningResources())
}

// GetExternalSources возвращает файловый каталог внешних источников.
// Отсутствие файла покрывается встроенным fallback; прочие ошибки чтения - 500.
func (h *ResourceHandler) GetExternalSources(c *gin.Context) {
	sources, err := h.resourceService.ExternalSources()
	if err != nil {
		log.Printf("[ResourceHandler] Ошибка загрузки внешних источников: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading learning sources"})
		return
	}

	c.Data(http.StatusOK, "application/json", sources)
}

// GetMarkdown возвращает markdown-версию каталога; 404, если файла нет
func (h *ResourceHandler) GetMarkdown(c *gin.Context) {
	doc, err := h.resourceService.MarkdownContent()
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Learning sources markdown file not found"})
			return
		}
		log.Printf("[ResourceHandler] Ошибка чтения markdown: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading markdown content"})
		return
	}

	c.JSON(http.StatusOK, doc)
}
