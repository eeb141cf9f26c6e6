package delivery

import (
	"net/http"
	"strings"

	authdomain "vidstream-backend/internal/auth/domain"
	"vidstream-backend/internal/auth/usecase"
	"vidstream-backend/pkg/httperr"

	"github.com/gin-gonic/gin"
)

// Decision is the access gate's verdict for one request. Every request
// starts Unchecked and ends Public, Authorized or Rejected before any
// handler runs.
type Decision int

const (
	Unchecked Decision = iota
	Public
	Authorized
	Rejected
)

// SessionCookie is the cookie the login handler sets and the gate reads.
const SessionCookie = "session"

const userKey = "currentUser"

// publicExact and publicPrefixes form the allow-list: auth endpoints, the
// landing/login/register pages and public video reads bypass the session
// check. Static assets are skipped outright.
var (
	publicExact    = []string{"/", "/login", "/register", "/api/health", "/api/videos"}
	publicPrefixes = []string{"/api/auth/", "/api/videos/"}
	staticExact    = []string{"/favicon.ico"}
	staticPrefixes = []string{"/public/"}
)

// Classify decides Public vs Authorized vs Rejected for a path + token
// validity, with no reference to the request body. Exposed separately from
// the middleware so the transition table is testable on its own.
func Classify(method, path string, hasValidSession bool) Decision {
	for _, p := range staticExact {
		if path == p {
			return Public
		}
	}
	for _, p := range staticPrefixes {
		if strings.HasPrefix(path, p) {
			return Public
		}
	}
	for _, p := range publicExact {
		if path == p {
			if path == "/api/videos" && method != http.MethodGet {
				break
			}
			return Public
		}
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return Public
		}
	}
	if hasValidSession {
		return Authorized
	}
	return Rejected
}

// AccessGate runs before every handler. Rejected API calls get a 401 with a
// machine code; rejected browser navigations are redirected to the login
// page.
func AccessGate(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		valid := false
		if token != "" {
			if user, err := authUsecase.ValidateToken(token); err == nil {
				c.Set(userKey, user)
				valid = true
			}
		}

		switch Classify(c.Request.Method, c.Request.URL.Path, valid) {
		case Public, Authorized:
			c.Next()
		default:
			if wantsJSON(c) {
				he := httperr.ErrUnauthorized
				c.AbortWithStatusJSON(he.Status, he)
				return
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		}
	}
}

// extractToken prefers the Authorization header, falling back to the session
// cookie set at login. A malformed header does not mask a valid cookie.
func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// wantsJSON distinguishes API callers from browser navigations.
func wantsJSON(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

// CurrentUser returns the identity the gate attached, if any. Handlers that
// sit on public paths but still require identity (video catalog) call this.
func CurrentUser(c *gin.Context) (*authdomain.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*authdomain.User)
	return user, ok
}
