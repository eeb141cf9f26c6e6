package delivery

import (
	"log"
	"net/http"

	authdelivery "vidstream-backend/internal/auth/delivery"
	"vidstream-backend/internal/upload/usecase"
	"vidstream-backend/pkg/httperr"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
	}
}

// UploadAuth hands an authorized client the signed parameters for a direct
// CDN upload. The gate already rejected unauthenticated callers; the check
// here guards against the route ever being moved onto a public path.
func (h *UploadHandler) UploadAuth(c *gin.Context) {
	if _, ok := authdelivery.CurrentUser(c); !ok {
		he := httperr.ErrUnauthorized
		c.JSON(he.Status, he)
		return
	}

	auth, err := h.uploadUsecase.IssueGrant()
	if err != nil {
		he := httperr.Internal(err)
		log.Printf("[ERROR] upload grant signing failed: %v", err)
		c.JSON(he.Status, he)
		return
	}

	c.JSON(http.StatusOK, auth)
}
