package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"` // Never return password in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SessionClaims is the payload of a session token. The token is stateless:
// nothing about it is persisted, it is trusted iff the signature validates
// and it has not expired.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}
