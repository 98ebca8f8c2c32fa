package service

import (
	"context"
	"fmt"

	"github.com/mcnijman/go-emailaddress"

	"github.com/checkoutewb/backend/internal/config"
	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/internal/store"
	"github.com/checkoutewb/backend/internal/utils"
	"github.com/checkoutewb/backend/models"
)

type authService struct {
	users  store.UserRepository
	cfg    config.App
	logger *logger.Logger
}

// NewAuthService returns the account and token service.
func NewAuthService(users store.UserRepository, cfg config.App, log *logger.Logger) AuthService {
	return &authService{
		users:  users,
		cfg:    cfg,
		logger: log.GetChildLogger(),
	}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if req.FirstName == "" || req.LastName == "" || req.Password == "" {
		return models.User{}, fmt.Errorf("%w: first name, last name and password are required", ErrInvalidDataProvided)
	}

	parsed, err := emailaddress.Parse(req.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %q", ErrInvalidEmail, req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("error preparing account: %w", err)
	}

	user, err := s.users.CreateUser(ctx, models.User{
		Email:        parsed.String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Enabled:      true,
		Admin:        false,
	})
	if err != nil {
		return models.User{}, err
	}

	s.logger.Info().Str("email", user.Email).Msg("account registered")

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (models.Token, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		// Unknown accounts and wrong passwords produce the same error so
		// login failures do not reveal which emails are registered.
		return models.Token{}, ErrWrongCredentials
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		return models.Token{}, ErrWrongCredentials
	}
	if !user.Enabled {
		return models.Token{}, ErrUserDisabled
	}

	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, user.Email, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error issuing token: %w", err)
	}

	return token, nil
}

func (s *authService) ParseToken(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

func (s *authService) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.users.FindUserByEmail(ctx, email)
}
