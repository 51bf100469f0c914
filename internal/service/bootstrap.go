package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/logger"
	"autorental-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type bootstrapService struct {
	userRepo repository.UserRepository
}

func NewBootstrapService(userRepo repository.UserRepository) BootstrapService {
	return &bootstrapService{userRepo: userRepo}
}

// EnsureAdmin makes sure an account with the Admin role exists for email.
// Running it again is a no-op. A blank email skips seeding.
func (s *bootstrapService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		logger.Info("Admin bootstrap skipped, no admin email configured")
		return nil
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if u.HasRole(domain.RoleAdmin) {
			logger.Debug("Admin account already present", "email", email)
			return nil
		}
		if err := s.userRepo.AddRole(ctx, u.ID, domain.RoleAdmin); err != nil {
			return fmt.Errorf("grant admin role: %w", err)
		}
		logger.Info("Granted admin role to existing account", "email", email)
		return nil
	case !errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("look up admin account: %w", err)
	}

	if password == "" {
		return errors.New("admin password is required to create the admin account")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Roles:        []string{domain.RoleAdmin},
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}
	logger.Info("Admin account created", "email", email, "userID", admin.ID)
	return nil
}
