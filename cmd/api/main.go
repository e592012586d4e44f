package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/triviaco/trivia-api/internal/database"
	"github.com/triviaco/trivia-api/internal/handler"
	"github.com/triviaco/trivia-api/internal/repository/postgres"
	"github.com/triviaco/trivia-api/internal/service"
)

func main() {
	// Load .env when present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	// Initialize database connection
	pool, err := database.ConnectPostgres(database.NewPostgresConfig())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(context.Background(), pool); err != nil {
		logrus.Fatalf("Failed to create schema: %v", err)
	}

	// Initialize repositories
	questionRepo := postgres.NewQuestionRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)

	// Initialize services
	triviaService := service.NewTriviaService(questionRepo, categoryRepo)

	// Initialize handlers
	questionHandler := handler.NewQuestionHandler(triviaService)
	categoryHandler := handler.NewCategoryHandler(triviaService)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "true"},
	}))
	e.Use(corsHeaders)

	// Routes
	questionHandler.Register(e)
	categoryHandler.Register(e)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}

// corsHeaders adds the allow-headers and allow-methods headers to every
// response, not just preflight ones. Browser clients of the original
// frontend read them from plain responses.
func corsHeaders(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type,Authorization,true")
		h.Set(echo.HeaderAccessControlAllowMethods, "GET,PATCH,POST,DELETE,OPTIONS")
		return next(c)
	}
}
