package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/kcna-learn-api/internal/pkg/errors"
)

func TestResourceService_LearningResources(t *testing.T) {
	service := NewResourceService(t.TempDir())

	tree := service.LearningResources()

	require.NotNil(t, tree)
	assert.Len(t, tree.Topics, 5)
	assert.NotEmpty(t, tree.Resources)
}

func TestResourceService_ExternalSources_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `{"learning_sources": [{"id": "test-source"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "learning_sources.json"), []byte(content), 0644))
	service := NewResourceService(dir)

	data, err := service.ExternalSources()

	require.NoError(t, err)
	assert.JSONEq(t, content, string(data))
}

func TestResourceService_ExternalSources_FallbackWhenMissing(t *testing.T) {
	// Файла нет - отдается встроенный fallback, а не ошибка
	service := NewResourceService(t.TempDir())

	data, err := service.ExternalSources()

	require.NoError(t, err)
	require.True(t, json.Valid(data))
	assert.Contains(t, string(data), "learning_sources")
}

func TestResourceService_ExternalSources_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "learning_sources.json"), []byte("{not json"), 0644))
	service := NewResourceService(dir)

	_, err := service.ExternalSources()

	assert.Error(t, err)
}

func TestResourceService_MarkdownContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "learning_sources.md"), []byte("# KCNA Learning Sources"), 0644))
	service := NewResourceService(dir)

	doc, err := service.MarkdownContent()

	require.NoError(t, err)
	assert.Equal(t, "# KCNA Learning Sources", doc.Content)
	assert.Equal(t, "markdown", doc.Format)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, doc.LastUpdated)
}

func TestResourceService_MarkdownContent_Missing(t *testing.T) {
	service := NewResourceService(t.TempDir())

	_, err := service.MarkdownContent()

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
