package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/kedrick07/habit-tracker/internal/models"
	"github.com/kedrick07/habit-tracker/internal/repository"
)

var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrUnknownEmail     = errors.New("no account with this email")
	ErrInvalidPassword  = errors.New("incorrect password")
	ErrMissingField     = errors.New("missing required field")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// emailPattern matches a local part, a domain, and a TLD of at least two
// letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// LoginResponse carries the token pair and user identity returned by
// signup, login, and refresh.
type LoginResponse struct {
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthService handles account creation and session establishment.
type AuthService interface {
	Signup(ctx context.Context, name, email, password, confirmPassword string) (*LoginResponse, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Logout(ctx context.Context, token string) error
	RefreshToken(ctx context.Context, refreshToken string) (*LoginResponse, error)
}

type authService struct {
	userRepo      repository.UserRepository
	jwtService    JWTService
	sessions      SessionService
	redis         *redis.Client
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, sessions SessionService, redisClient *redis.Client, accessExpiry, refreshExpiry time.Duration) AuthService {
	return &authService{
		userRepo:      userRepo,
		jwtService:    jwtService,
		sessions:      sessions,
		redis:         redisClient,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// Signup registers a new account and logs it in. Email uniqueness is
// ultimately guaranteed by the database unique index: the pre-insert
// lookup only produces a cleaner error for the common case, and a
// concurrent duplicate insert still surfaces as ErrDuplicateEmail.
func (s *authService) Signup(ctx context.Context, name, email, password, confirmPassword string) (*LoginResponse, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingField
	}
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return s.establishSession(ctx, user)
}

// Login verifies credentials and establishes a session. UnknownEmail and
// InvalidPassword are reported separately, matching the page-level
// messages users see.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnknownEmail
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return s.establishSession(ctx, user)
}

// establishSession issues a token pair and initializes the session hash.
// Used by signup and login only; refresh rotates tokens without touching
// session state.
func (s *authService) establishSession(ctx context.Context, user *models.User) (*LoginResponse, error) {
	response, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Start(ctx, user.ID, user.Name); err != nil {
		return nil, err
	}

	return response, nil
}

func (s *authService) issueTokens(ctx context.Context, user *models.User) (*LoginResponse, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}

	if err := s.redis.Set(ctx, refreshTokenKey(user.ID), refreshToken, s.refreshExpiry).Err(); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessExpiry.Seconds()),
	}, nil
}

// Logout invalidates the refresh token and clears the session state
// wholesale.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return err
	}

	if err := s.redis.Del(ctx, refreshTokenKey(claims.UserID)).Err(); err != nil {
		return fmt.Errorf("failed to remove refresh token: %w", err)
	}

	return s.sessions.Clear(ctx, claims.UserID)
}

// RefreshToken rotates the token pair when the presented refresh token
// matches the stored one. Session state, including the selected page, is
// left untouched so background refreshes are invisible to the user.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*LoginResponse, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errors.New("invalid refresh token")
	}

	storedToken, err := s.redis.Get(ctx, refreshTokenKey(claims.UserID)).Result()
	if err != nil || storedToken != refreshToken {
		return nil, errors.New("invalid refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func refreshTokenKey(userID int64) string {
	return fmt.Sprintf("refresh_token:%d", userID)
}
