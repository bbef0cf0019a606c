package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"miniblog/internal/config"
	"miniblog/internal/models"
	"miniblog/internal/repository"
)

type SignupRequest struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*models.User, error)
	Login(ctx context.Context, email, password string, remember bool) (*models.User, string, time.Duration, error)
	ParseSessionToken(tokenString string) (int64, error)
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Signup checks password confirmation and username/email uniqueness
// before creating the user. The lookups are not atomic with the insert:
// two identical signups racing each other can both pass the check.
func (s *authService) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	if req.Password != req.ConfirmPassword {
		return nil, repository.ErrPasswordMismatch
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err == nil && existing != nil {
		return nil, repository.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	existing, err = s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, repository.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues the signed session token.
// The returned duration is the cookie max-age: zero means a browser
// session cookie, remember extends it to RememberDuration.
func (s *authService) Login(ctx context.Context, email, password string, remember bool) (*models.User, string, time.Duration, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", 0, err
	}

	tokenLifetime := s.cfg.SessionDuration
	var cookieMaxAge time.Duration
	if remember {
		tokenLifetime = s.cfg.RememberDuration
		cookieMaxAge = s.cfg.RememberDuration
	}

	token, err := s.generateSessionToken(user, tokenLifetime)
	if err != nil {
		return nil, "", 0, fmt.Errorf("ошибка генерации session token: %w", err)
	}

	return user, token, cookieMaxAge, nil
}

func (s *authService) generateSessionToken(user *models.User, lifetime time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId": strconv.FormatInt(user.ID, 10),
		"exp":    time.Now().Add(lifetime).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// ParseSessionToken validates the cookie value and returns the user id
// it carries. Any invalid or expired token leaves the request anonymous.
func (s *authService) ParseSessionToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	})

	if err != nil {
		return 0, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	if !token.Valid {
		return 0, fmt.Errorf("недействительный токен")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("неверный формат claims")
	}

	rawID, ok := claims["userId"].(string)
	if !ok {
		return 0, fmt.Errorf("неверные данные в токене")
	}

	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("неверный userId в токене: %w", err)
	}

	return userID, nil
}

func (s *authService) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
