package repository

import authdomain "vidstream-backend/internal/auth/domain"

// UserRepository persists user identities.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
}
