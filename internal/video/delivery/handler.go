package delivery

import (
	"log"
	"net/http"

	authdelivery "vidstream-backend/internal/auth/delivery"
	videodto "vidstream-backend/internal/video/dto"
	"vidstream-backend/internal/video/usecase"
	"vidstream-backend/pkg/httperr"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUsecase usecase.VideoUsecase
}

func NewVideoHandler(videoUsecase usecase.VideoUsecase) *VideoHandler {
	return &VideoHandler{
		videoUsecase: videoUsecase,
	}
}

// List requires identity even though the gate allow-lists video read paths:
// the catalog itself is session-gated, the allow-list only keeps the gate
// from redirecting browsers away from it.
func (h *VideoHandler) List(c *gin.Context) {
	if _, ok := authdelivery.CurrentUser(c); !ok {
		he := httperr.ErrUnauthorized
		c.JSON(he.Status, he)
		return
	}

	videos, err := h.videoUsecase.List()
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, videos)
}

func (h *VideoHandler) Create(c *gin.Context) {
	if _, ok := authdelivery.CurrentUser(c); !ok {
		he := httperr.ErrUnauthorized
		c.JSON(he.Status, he)
		return
	}

	var req videodto.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		he := httperr.Validation("invalid request body")
		c.JSON(he.Status, he)
		return
	}

	video, err := h.videoUsecase.Create(&req)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, video)
}

func renderError(c *gin.Context, err error) {
	he := httperr.From(err)
	if he.Status == http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(he.Status, he)
}
