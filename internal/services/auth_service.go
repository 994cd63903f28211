package services

import (
	"time"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
	CurrentUser(userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Register - регистрация нового пользователя.
// Роль фиксируется при создании: candidate или employer, админов
// регистрация не создает.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidateRegistrationRole(req.Role); err != nil {
		return nil, err
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		Phone:        req.Phone,
		Bio:          req.Bio,
	}

	if err := s.userRepo.Create(user); err != nil {
		if appErrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	return dto.NewUserResponse(user), nil
}

// Login - аутентификация пользователя, выдает access + refresh токены
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	return s.buildLoginResponse(user)
}

// RefreshToken - обновление access token по refresh token с ротацией
func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		// Неважно, какая ошибка (не найден или другая) - токен невалиден
		return nil, appErrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(refreshToken)
		return nil, appErrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, appErrors.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.DeleteByToken(refreshToken); err != nil {
		return nil, appErrors.InternalError(err)
	}

	return s.buildLoginResponse(user)
}

// Logout отзывает refresh token; access token истекает сам по TTL
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.refreshTokenRepo.DeleteByToken(refreshToken); err != nil {
		return appErrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) CurrentUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) buildLoginResponse(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) createRefreshToken(userID string) (string, error) {
	cfg := config.GetConfig()
	token := &models.RefreshToken{
		UserID:    userID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().AddDate(0, 0, cfg.JWT.RefreshTTLDay),
	}
	if err := s.refreshTokenRepo.Create(token); err != nil {
		return "", err
	}
	return token.Token, nil
}
