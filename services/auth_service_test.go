package services

import (
	"context"
	"testing"
	"time"
	"warehouse-portal/auth"
	"warehouse-portal/domain"
	apperr "warehouse-portal/errors"
	"warehouse-portal/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIContactRepository(ctrl)
	issuer := auth.NewTokenIssuer("test-secret", 24*time.Hour, fixedClock())
	svc := NewAuthService(mockRepo, issuer)
	ctx := context.Background()

	hash, err := auth.HashPassword("ComplexPass123!")
	require.NoError(t, err)
	alice := domain.Contact{TenantID: "W1", Address: "alice", PasswordHash: hash, Role: domain.RoleAdmin, FirstName: "Alice", LastName: "Martin"}

	t.Run("should login successfully with valid credentials", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetContact(gomock.Any(), "W1", "alice").Return(alice, nil).Times(1)

		token, err := svc.Login(ctx, "W1", "alice", "ComplexPass123!")
		req.NoError(err)
		req.NotEmpty(token)

		principal, err := svc.Authenticate(token.String())
		req.NoError(err)
		req.Equal(domain.Principal{TenantID: "W1", Address: "alice", Role: domain.RoleAdmin, Name: "Alice Martin"}, principal)
	})

	t.Run("should fail with a wrong password", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetContact(gomock.Any(), "W1", "alice").Return(alice, nil).Times(1)

		token, err := svc.Login(ctx, "W1", "alice", "WrongPass123!")
		req.ErrorIs(err, apperr.ErrInvalidCredentials)
		req.Empty(token)
	})

	t.Run("should not reveal unknown addresses", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetContact(gomock.Any(), "W2", "alice").Return(domain.Contact{}, apperr.ErrNotFound).Times(1)

		_, err := svc.Login(ctx, "W2", "alice", "ComplexPass123!")
		req.ErrorIs(err, apperr.ErrInvalidCredentials)
	})

	t.Run("should surface storage failures", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().GetContact(gomock.Any(), "W1", "alice").Return(domain.Contact{}, apperr.ErrStorage).Times(1)

		_, err := svc.Login(ctx, "W1", "alice", "ComplexPass123!")
		req.ErrorIs(err, apperr.ErrStorage)
	})

	t.Run("should reject a tampered token", func(t *testing.T) {
		req := require.New(t)
		_, err := svc.Authenticate("not-a-token")
		req.ErrorIs(err, apperr.ErrUnauthenticated)
	})
}
