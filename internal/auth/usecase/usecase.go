package usecase

import (
	authdomain "vidstream-backend/internal/auth/domain"
	authdto "vidstream-backend/internal/auth/dto"
)

// AuthUsecase verifies credentials and issues/validates session tokens.
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)
	Login(req *authdto.LoginRequest) (token string, user *authdomain.User, err error)
	ValidateToken(token string) (*authdomain.User, error)
}
