package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/kcna-learn-api/internal/domain/entity"
	apperrors "github.com/yourusername/kcna-learn-api/internal/pkg/errors"
	"github.com/yourusername/kcna-learn-api/pkg/auth"
)

// MockUserRepo реализует repository.UserRepository
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) List(limit, offset int) ([]entity.User, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter собирает роутер с RequireAuth и опциональным AdminOnly
func newTestRouter(t *testing.T, userRepo *MockUserRepo, adminOnly bool) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	jwtService, err := auth.NewJWTService("test-secret-key", 30)
	require.NoError(t, err)

	m := NewAuthMiddleware(jwtService, userRepo)

	router := gin.New()
	handlers := []gin.HandlerFunc{m.RequireAuth()}
	if adminOnly {
		handlers = append(handlers, m.AdminOnly())
	}
	handlers = append(handlers, func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	router.GET("/protected", handlers...)
	return router, jwtService
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router, _ := newTestRouter(t, new(MockUserRepo), false)

	w := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_missing")
}

func TestRequireAuth_BadHeaderFormat(t *testing.T) {
	router, _ := newTestRouter(t, new(MockUserRepo), false)

	w := doRequest(router, "Basic abcdef")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_format")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	router, _ := newTestRouter(t, new(MockUserRepo), false)

	w := doRequest(router, "Bearer not-a-real-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_invalid")
}

func TestRequireAuth_ValidTokenLoadsUser(t *testing.T) {
	userRepo := new(MockUserRepo)
	user := &entity.User{ID: 1, Email: "user@example.com", Username: "testuser"}
	userRepo.On("GetByEmail", user.Email).Return(user, nil)
	router, jwtService := newTestRouter(t, userRepo, false)

	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.Email)
	userRepo.AssertExpectations(t)
}

func TestRequireAuth_DeletedUserRejected(t *testing.T) {
	// Токен валиден, но subject больше не существует в БД
	userRepo := new(MockUserRepo)
	user := &entity.User{ID: 1, Email: "gone@example.com"}
	userRepo.On("GetByEmail", user.Email).Return(nil, apperrors.ErrNotFound)
	router, jwtService := newTestRouter(t, userRepo, false)

	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_subject_unknown")
}

func TestAdminOnly_NonAdminForbidden(t *testing.T) {
	userRepo := new(MockUserRepo)
	user := &entity.User{ID: 1, Email: "user@example.com", IsAdmin: false}
	userRepo.On("GetByEmail", user.Email).Return(user, nil)
	router, jwtService := newTestRouter(t, userRepo, true)

	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required")
}

func TestAdminOnly_AdminAllowed(t *testing.T) {
	userRepo := new(MockUserRepo)
	admin := &entity.User{ID: 2, Email: "admin@example.com", IsAdmin: true}
	userRepo.On("GetByEmail", admin.Email).Return(admin, nil)
	router, jwtService := newTestRouter(t, userRepo, true)

	token, err := jwtService.GenerateToken(admin)
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}
