package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
	apperrors "github.com/yourusername/kcna-learn-api/internal/pkg/errors"
)

func TestQuizService_CreateQuiz_DefaultsPassingScore(t *testing.T) {
	quizRepo := new(MockQuizRepo)
	service := NewQuizService(quizRepo)
	quizRepo.On("Create", mock.AnythingOfType("*entity.Quiz")).Return(nil)

	quiz, err := service.CreateQuiz("KCNA Basics", "", entity.QuizCategoryFundamentals, entity.QuizDifficultyBeginner, nil, 0, true)

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPassingScore, quiz.PassingScore)
}

func TestQuizService_CreateQuiz_KeepsExplicitPassingScore(t *testing.T) {
	quizRepo := new(MockQuizRepo)
	service := NewQuizService(quizRepo)
	quizRepo.On("Create", mock.AnythingOfType("*entity.Quiz")).Return(nil)

	quiz, err := service.CreateQuiz("KCNA Basics", "", entity.QuizCategoryArchitecture, entity.QuizDifficultyAdvanced, nil, 85, true)

	require.NoError(t, err)
	assert.Equal(t, 85.0, quiz.PassingScore)
}

func TestQuizService_GetQuizWithQuestions_NotFound(t *testing.T) {
	quizRepo := new(MockQuizRepo)
	service := NewQuizService(quizRepo)
	quizRepo.On("GetWithQuestions", uint(42)).Return(nil, apperrors.ErrNotFound)

	_, err := service.GetQuizWithQuestions(42)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
