package usecase

import (
	"time"

	authdomain "vidstream-backend/internal/auth/domain"
	authdto "vidstream-backend/internal/auth/dto"
	"vidstream-backend/internal/auth/repository"
	"vidstream-backend/pkg/config"
	"vidstream-backend/pkg/httperr"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
	now      func() time.Time
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
		now:      time.Now,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, httperr.ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login fails closed: unknown email and wrong password produce the same
// error, so callers cannot probe which addresses are registered.
func (u *authUsecase) Login(req *authdto.LoginRequest) (string, *authdomain.User, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return "", nil, err
	}

	if user == nil {
		return "", nil, httperr.ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return "", nil, httperr.ErrInvalidCredentials
	}

	token, err := u.generateSessionToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (u *authUsecase) generateSessionToken(user *authdomain.User) (string, error) {
	now := u.now()
	claims := authdomain.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(u.config.SessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: user.ID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	claims := &authdomain.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, httperr.ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, httperr.ErrInvalidToken
	}

	return user, nil
}
