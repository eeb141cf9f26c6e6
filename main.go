package main

import (
	"log"

	api "vidstream-backend/cmd/api"
	authdomain "vidstream-backend/internal/auth/domain"
	authRepo "vidstream-backend/internal/auth/repository"
	authUsecase "vidstream-backend/internal/auth/usecase"
	uploadUsecase "vidstream-backend/internal/upload/usecase"
	videodomain "vidstream-backend/internal/video/domain"
	videoRepo "vidstream-backend/internal/video/repository"
	videoUsecase "vidstream-backend/internal/video/usecase"
	"vidstream-backend/pkg/config"
	"vidstream-backend/pkg/database"
	"vidstream-backend/pkg/imagekit"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	pool := database.NewPool(cfg)
	db, err := pool.Acquire()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &videodomain.Video{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	videoRepository := videoRepo.NewVideoRepository(db)

	// Initialize CDN signing service
	signer := imagekit.NewService(cfg)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	videoUsecaseInstance := videoUsecase.NewVideoUsecase(videoRepository)
	uploadUsecaseInstance := uploadUsecase.NewUploadUsecase(signer)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, videoUsecaseInstance, uploadUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
