package delivery

import (
	"log"
	"net/http"

	authdto "vidstream-backend/internal/auth/dto"
	"vidstream-backend/internal/auth/usecase"
	"vidstream-backend/pkg/httperr"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase  usecase.AuthUsecase
	cookieMaxAge int
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		cookieMaxAge: cookieMaxAge,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		he := httperr.Validation("email and password are required")
		c.JSON(he.Status, he)
		return
	}

	if _, err := h.authUsecase.Register(&req); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authdto.MessageResponse{Message: "user registered successfully"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		he := httperr.Validation("email and password are required")
		c.JSON(he.Status, he)
		return
	}

	token, user, err := h.authUsecase.Login(&req)
	if err != nil {
		renderError(c, err)
		return
	}

	c.SetCookie(SessionCookie, token, h.cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, authdto.LoginResponse{User: user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, authdto.MessageResponse{Message: "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		he := httperr.ErrUnauthorized
		c.JSON(he.Status, he)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// renderError maps an error through the taxonomy and logs infrastructure
// causes server-side; callers never see internal detail.
func renderError(c *gin.Context, err error) {
	he := httperr.From(err)
	if he.Status == http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(he.Status, he)
}
