package services

import (
	"errors"
	"fmt"

	"github.com/jestatech/jts-site/internal/constants"
	"github.com/jestatech/jts-site/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("Invalid credentials")

// AdminIdentity is who a successful login resolved to.
type AdminIdentity struct {
	UserID   uint64
	Username string
	Email    string
	Role     string
}

// AuthService verifies admin credentials. Stored users are checked by
// username or email against their bcrypt hash. The bootstrap bypass pair is
// honored only when enabled through configuration; it exists so a fresh
// deployment with an empty users table stays reachable.
type AuthService struct {
	userRepo    repository.UserRepository
	allowBypass bool
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, allowBypass bool) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		allowBypass: allowBypass,
	}
}

// Authenticate resolves a login identifier (username or email) and password
// to an admin identity, or ErrInvalidCredentials.
func (s *AuthService) Authenticate(loginID, password string) (*AdminIdentity, error) {
	if loginID == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	if s.allowBypass &&
		(loginID == constants.BypassUsername || loginID == constants.BypassEmail) &&
		password == constants.BypassPassword {
		return &AdminIdentity{
			UserID:   0,
			Username: "Admin User",
			Email:    constants.BypassEmail,
			Role:     "ADMIN",
		}, nil
	}

	user, err := s.userRepo.FindByUsername(loginID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
		user, err = s.userRepo.FindByEmail(loginID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &AdminIdentity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}
