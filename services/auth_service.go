package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"planvite.app/configs/configslog"
	"planvite.app/models"
	"planvite.app/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceError is a typed service error usable with errors.Is.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthInvalidInput    AuthServiceError = "invalid auth input"
	ErrEmailTaken          AuthServiceError = "email is already registered"
	ErrInvalidCredentials  AuthServiceError = "invalid email or password"
	ErrPasswordHashingFail AuthServiceError = "could not hash password"
	ErrTokenSigningFail    AuthServiceError = "could not sign token"
)

// IAuthService issues credentials. The event core never talks to it; it only
// consumes the user id the middleware extracts from a token.
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// AuthService implements IAuthService with bcrypt hashes and HS256 tokens.
type AuthService struct {
	users     repositories.IUserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService wires an AuthService onto the given DB handle.
func NewAuthService(db *gorm.DB, jwtSecret string, jwtExpiry time.Duration) IAuthService {
	return &AuthService{
		users:     repositories.NewUserRepository(db),
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// Register creates a user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return nil, ErrAuthInvalidInput
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashingFail
	}

	user := &models.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		configslog.Log.Error("Register failed", zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("user registered: id=%d", user.ID)
	return user, nil
}

// Login verifies the credentials and returns a signed token plus the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", nil, ErrAuthInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT(user.ID)
	if err != nil {
		configslog.Log.Error("Login: token signing failed", zap.Uint("userID", user.ID), zap.Error(err))
		return "", nil, ErrTokenSigningFail
	}

	configslog.SLog.Infof("user logged in: id=%d", user.ID)
	return token, user, nil
}

func (s *AuthService) generateJWT(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.jwtExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

var _ IAuthService = (*AuthService)(nil)
