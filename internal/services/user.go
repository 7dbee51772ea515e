package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/oparantho/saakwa-laundry-platform/internal/api/middleware"
	"github.com/oparantho/saakwa-laundry-platform/internal/errors"
	"github.com/oparantho/saakwa-laundry-platform/internal/models"
	repository "github.com/oparantho/saakwa-laundry-platform/internal/repositories"
	"github.com/oparantho/saakwa-laundry-platform/pkg/sendgrid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo         repository.UserRepository
	rateLimiter  repository.RateLimitRepository
	resetTokens  repository.PasswordResetRepository
	emailService sendgrid.EmailService
	jwtKey       []byte
}

func NewUserService(repo repository.UserRepository, rateLimiter repository.RateLimitRepository, resetTokens repository.PasswordResetRepository, emailService sendgrid.EmailService, jwtKey []byte) *UserService {
	return &UserService{
		repo:         repo,
		rateLimiter:  rateLimiter,
		resetTokens:  resetTokens,
		emailService: emailService,
		jwtKey:       jwtKey,
	}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	existingUser, _ := s.repo.GetUserByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, errors.DuplicateEntryError("Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, errors.DatabaseError("Failed to create user").WithError(err)
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	// check rate limit
	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, req.Email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		return &models.LoginResponse{
			Success:    false,
			Message:    "Too many login attempts. Please try again later.",
			RetryAfter: retryAfter,
		}, nil
	}

	// Retrieve the user from the DB and compare the passwords
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return &models.LoginResponse{
			Success:        false,
			Message:        "Invalid email or password",
			RemainingTries: remaining,
		}, nil
	}

	claims := &models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// Generate Token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.LoginResponse{
		Success:   true,
		Token:     tokenString,
		ExpiresIn: int(time.Until(claims.ExpiresAt.Time).Seconds()),
	}, nil
}

// RequestPasswordReset always acknowledges, whether or not the email is
// registered, so the endpoint cannot be used to probe for accounts.
func (s *UserService) RequestPasswordReset(ctx context.Context, req *models.PasswordResetRequest) error {
	logger := middleware.LoggerFromContext(ctx)

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		logger.Info("Password reset requested for unknown email")

		return nil
	}

	token := uuid.NewString()

	if err := s.resetTokens.SaveResetToken(ctx, token, user.ID); err != nil {
		return errors.ThirdPartyError("Failed to create reset token").WithError(err)
	}

	emailReq := &models.EmailNotificationRequest{
		To:      user.Email,
		Subject: "Reset your Saakwa Laundry password",
		Content: fmt.Sprintf("Hello %s,\n\nUse this code to reset your password: %s\n\nIf you did not request a reset, ignore this email.", user.Name, token),
	}

	if err := s.emailService.Send(ctx, emailReq); err != nil {
		logger.Error("Failed to send password reset email", slog.Any("error", err))

		return errors.ThirdPartyError("Failed to send reset email").WithError(err)
	}

	return nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetUserById(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("User not found").WithError(err)
	}

	return user, nil
}
