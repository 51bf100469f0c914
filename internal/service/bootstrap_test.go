package service_test

import (
	"context"
	"errors"
	"testing"

	"autorental-backend/internal/domain"
	"autorental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestBootstrapService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates missing admin", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewBootstrapService(userRepo)

		userRepo.On("GetByEmail", ctx, "admin@rental.test").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.HasRole(domain.RoleAdmin) &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret!")) == nil
		})).Return(nil)

		assert.NoError(t, svc.EnsureAdmin(ctx, "admin@rental.test", "s3cret!"))
		userRepo.AssertExpectations(t)
	})

	t.Run("Existing admin is left alone", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewBootstrapService(userRepo)

		userRepo.On("GetByEmail", ctx, "admin@rental.test").Return(&domain.User{ID: 1, Roles: []string{domain.RoleAdmin}}, nil)

		assert.NoError(t, svc.EnsureAdmin(ctx, "admin@rental.test", "ignored"))
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "AddRole", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Existing user is promoted", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewBootstrapService(userRepo)

		userRepo.On("GetByEmail", ctx, "ops@rental.test").Return(&domain.User{ID: 6, Roles: []string{domain.RoleUser}}, nil)
		userRepo.On("AddRole", ctx, int32(6), domain.RoleAdmin).Return(nil)

		assert.NoError(t, svc.EnsureAdmin(ctx, "ops@rental.test", ""))
		userRepo.AssertExpectations(t)
	})

	t.Run("Blank email skips", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewBootstrapService(userRepo)

		assert.NoError(t, svc.EnsureAdmin(ctx, "  ", "x"))
		userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Lookup failure", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewBootstrapService(userRepo)

		userRepo.On("GetByEmail", ctx, "admin@rental.test").Return(nil, errors.New("db down"))

		assert.Error(t, svc.EnsureAdmin(ctx, "admin@rental.test", "pw"))
	})
}
