package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/anchalw11/website/internal/models"
	"github.com/anchalw11/website/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidPlan        = errors.New("invalid plan type")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RegisterInput carries a validated registration payload.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	PlanType models.PlanType
}

// TokenResponse is the success payload for both auth flows.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// BootstrapAccount configures the opt-in test login fixture. When Enabled,
// logging in with Email always succeeds regardless of the submitted password,
// lazily provisioning an enterprise-tier account. Disabled by default.
type BootstrapAccount struct {
	Enabled  bool
	Email    string
	Password string
}

// AuthService implements the registration and login flows.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*TokenResponse, error)
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
	bootstrap  BootstrapAccount
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, bootstrap BootstrapAccount) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		bootstrap:  bootstrap,
	}
}

// Register creates a new account and issues a token for it. The email check
// runs before the username check so duplicate errors are deterministic; the
// store's unique constraints remain the backstop against racing registrations.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*TokenResponse, error) {
	if !input.PlanType.Valid() {
		return nil, ErrInvalidPlan
	}

	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		PlanType:     input.PlanType,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			// Lost a registration race after the existence checks passed.
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issueToken(user.ID)
}

// Login authenticates by email and password. A missing account and a wrong
// password produce the same error so responses do not reveal which was wrong.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	if s.bootstrap.Enabled && email == s.bootstrap.Email {
		return s.loginBootstrap(ctx)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user.ID)
}

// loginBootstrap provisions the fixture account on first use and always
// succeeds, mirroring the behavior of the test account it replaces.
func (s *authService) loginBootstrap(ctx context.Context) (*TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, s.bootstrap.Email)
	if err == nil {
		return s.issueToken(user.ID)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.bootstrap.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	user = &models.User{
		Username:     "test",
		Email:        s.bootstrap.Email,
		PasswordHash: string(hash),
		PlanType:     models.PlanEnterprise,
	}
	if err := s.userRepo.Create(ctx, user); err != nil && !errors.Is(err, repository.ErrDuplicateKey) {
		return nil, err
	}
	if user.ID == 0 {
		// Lost the provisioning race; the row exists now.
		if user, err = s.userRepo.FindByEmail(ctx, s.bootstrap.Email); err != nil {
			return nil, err
		}
	}

	return s.issueToken(user.ID)
}

func (s *authService) issueToken(userID int64) (*TokenResponse, error) {
	token, err := s.jwtService.GenerateToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &TokenResponse{AccessToken: token}, nil
}
