package delivery

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authdomain "vidstream-backend/internal/auth/domain"
	"vidstream-backend/internal/auth/usecase"
	"vidstream-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepo struct {
	users map[string]*authdomain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*authdomain.User{}}
}

func (m *memoryUserRepo) Create(user *authdomain.User) error {
	user.ID = "id-" + user.Email
	m.users[user.Email] = user
	return nil
}

func (m *memoryUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	return m.users[email], nil
}

func (m *memoryUserRepo) FindByID(id string) (*authdomain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret", SessionExpiry: 30 * 24 * time.Hour}
	uc := usecase.NewAuthUsecase(newMemoryUserRepo(), cfg)
	handler := NewAuthHandler(uc, int(cfg.SessionExpiry.Seconds()))

	r := gin.New()
	r.POST("/api/auth/register", handler.Register)
	r.POST("/api/auth/login", handler.Login)
	r.POST("/api/auth/logout", handler.Logout)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_DoubleRegistration(t *testing.T) {
	r := newAuthRouter(t)

	first := postJSON(r, "/api/auth/register", `{"email":"a@b.com","password":"hunter12"}`)
	require.Equal(t, http.StatusCreated, first.Code)
	assert.Contains(t, first.Body.String(), "registered")

	second := postJSON(r, "/api/auth/register", `{"email":"a@b.com","password":"hunter12"}`)
	require.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "email_taken")
}

func TestRegister_MissingFields(t *testing.T) {
	r := newAuthRouter(t)

	w := postJSON(r, "/api/auth/register", `{"email":"a@b.com"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	r := newAuthRouter(t)

	w := postJSON(r, "/api/auth/register", `{"email":"a@b.com","password":"hunter12"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/auth/login", `{"email":"a@b.com","password":"hunter12"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session, "login must set the session cookie")
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)
	assert.Greater(t, session.MaxAge, 0)
}

func TestLogin_BadCredentials(t *testing.T) {
	r := newAuthRouter(t)

	postJSON(r, "/api/auth/register", `{"email":"a@b.com","password":"hunter12"}`)

	wrongPass := postJSON(r, "/api/auth/login", `{"email":"a@b.com","password":"nope"}`)
	unknown := postJSON(r, "/api/auth/login", `{"email":"x@b.com","password":"nope"}`)

	require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrongPass.Body.String(), unknown.Body.String(),
		"login failures must not reveal whether the account exists")
}

func TestLogout_ClearsCookie(t *testing.T) {
	r := newAuthRouter(t)

	w := postJSON(r, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
