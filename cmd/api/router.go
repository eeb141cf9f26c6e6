package api

import (
	"net/http"

	authdelivery "vidstream-backend/internal/auth/delivery"
	authUsecase "vidstream-backend/internal/auth/usecase"
	uploadDelivery "vidstream-backend/internal/upload/delivery"
	uploadUsecase "vidstream-backend/internal/upload/usecase"
	videoDelivery "vidstream-backend/internal/video/delivery"
	videoUsecase "vidstream-backend/internal/video/usecase"
	"vidstream-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, videoUc videoUsecase.VideoUsecase, uploadUc uploadUsecase.UploadUsecase, cfg *config.Config) {
	authHandler := authdelivery.NewAuthHandler(authUc, int(cfg.SessionExpiry.Seconds()))
	videoHandler := videoDelivery.NewVideoHandler(videoUc)
	uploadHandler := uploadDelivery.NewUploadHandler(uploadUc)

	// The access gate runs before every handler.
	r.Use(authdelivery.AccessGate(authUc))

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		// Video catalog. Reads pass the gate via the allow-list but the
		// handler still requires identity.
		videos := api.Group("/videos")
		{
			videos.GET("", videoHandler.List)
			videos.POST("", videoHandler.Create)
		}

		// Upload grant endpoint (protected by the gate)
		api.GET("/upload-auth", uploadHandler.UploadAuth)
	}
}
