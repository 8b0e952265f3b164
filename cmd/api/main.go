package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/kcna-learn-api/internal/config"
	"github.com/yourusername/kcna-learn-api/internal/handler"
	"github.com/yourusername/kcna-learn-api/internal/middleware"
	pgRepo "github.com/yourusername/kcna-learn-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/kcna-learn-api/internal/repository/redis"
	"github.com/yourusername/kcna-learn-api/internal/service"
	"github.com/yourusername/kcna-learn-api/pkg/auth"
	"github.com/yourusername/kcna-learn-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	quizRepo := pgRepo.NewQuizRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	attemptRepo := pgRepo.NewAttemptRepo(db)
	progressRepo := pgRepo.NewProgressRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем JWTService
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationMin)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	authService, err := service.NewAuthService(userRepo, jwtService)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}
	quizService := service.NewQuizService(quizRepo)
	questionService := service.NewQuestionService(questionRepo, quizRepo)
	attemptService := service.NewAttemptService(attemptRepo, progressRepo, quizRepo, questionRepo, cacheRepo)
	progressService := service.NewProgressService(progressRepo)
	resourceService := service.NewResourceService(cfg.Resources.Dir)
	healthService := service.NewHealthService(db, cacheRepo)

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	quizHandler := handler.NewQuizHandler(quizService)
	questionHandler := handler.NewQuestionHandler(questionService)
	attemptHandler := handler.NewAttemptHandler(attemptService)
	progressHandler := handler.NewProgressHandler(progressService)
	resourceHandler := handler.NewResourceHandler(resourceService)
	healthHandler := handler.NewHealthHandler(healthService)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo)

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "http://localhost:8000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Служебные маршруты
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)

	// Аутентификация
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Квизы
	quizzes := router.Group("/quizzes")
	quizzes.Use(authMiddleware.RequireAuth())
	{
		quizzes.GET("", quizHandler.ListQuizzes)
		quizzes.GET("/:id", quizHandler.GetQuiz)

		adminQuizzes := quizzes.Group("")
		adminQuizzes.Use(authMiddleware.AdminOnly())
		{
			adminQuizzes.POST("", quizHandler.CreateQuiz)
		}
	}

	// Вопросы
	questions := router.Group("/questions")
	questions.Use(authMiddleware.RequireAuth())
	{
		questions.GET("", questionHandler.ListQuestions)

		adminQuestions := questions.Group("")
		adminQuestions.Use(authMiddleware.AdminOnly())
		{
			adminQuestions.POST("", questionHandler.CreateQuestion)
		}
	}

	// Попытки
	attempts := router.Group("/quiz-attempts")
	attempts.Use(authMiddleware.RequireAuth())
	{
		attempts.POST("", attemptHandler.SubmitAttempt)
		attempts.GET("", attemptHandler.ListAttempts)
	}

	// Прогресс
	progress := router.Group("/progress")
	progress.Use(authMiddleware.RequireAuth())
	{
		progress.GET("", progressHandler.ListProgress)
		progress.GET("/:quiz_id", progressHandler.GetQuizProgress)
	}

	// Учебные материалы (публичные)
	router.GET("/learning-resources", resourceHandler.GetLearningResources)
	router.GET("/external-learning-sources", resourceHandler.GetExternalSources)
	router.GET("/learning-sources-markdown", resourceHandler.GetMarkdown)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	// Закрываем клиент Redis
	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
