package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appErrors "github.com/styleloom/clothing-store/internal/errors"
	"github.com/styleloom/clothing-store/internal/models"
	repository "github.com/styleloom/clothing-store/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService struct {
	repo        repository.UserRepository
	rateLimiter repository.RateLimitRepository
	sessionKey  []byte
}

func NewUserService(repo repository.UserRepository, rateLimiter repository.RateLimitRepository, sessionKey []byte) *UserService {
	return &UserService{
		repo:        repo,
		rateLimiter: rateLimiter,
		sessionKey:  sessionKey,
	}
}

// Signup creates an account. The check-then-insert here is advisory; the
// unique index on username is the real guard, and its rejection is translated
// to the same duplicate error.
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {

	existing, _ := s.repo.GetUserByUsername(ctx, req.Username)
	if existing != nil {
		return nil, appErrors.DuplicateEntryError("Username already exists")
	}

	user := &models.User{
		Username: req.Username,
		Password: req.Password,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, appErrors.DuplicateEntryError("Username already exists").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

// Login verifies credentials with an exact comparison against the stored
// password and issues a session token. Attempts are rate limited per username.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {

	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, req.Username)
	if err != nil {
		return nil, appErrors.InternalError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResult{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		// Only a confirmed miss is an authentication failure; a store error
		// must not masquerade as bad credentials.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErrors.AuthenticationError("User not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	if user.Password != req.Password {
		return nil, appErrors.AuthenticationError("Invalid credentials")
	}

	claims := &models.Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.sessionKey)
	if err != nil {
		return nil, appErrors.InternalError("Failed to generate session token").WithError(err)
	}

	return &models.LoginResult{
		Success:        true,
		User:           user,
		Token:          tokenString,
		RemainingTries: remaining,
	}, nil
}
