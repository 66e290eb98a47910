package auth

import (
	"strings"
	"testing"
	"time"
	"warehouse-portal/domain"
	apperr "warehouse-portal/errors"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "Forklift-Driver-42"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))
	req.NotContains(hash, password)

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("wrong-password", hash)
	req.NoError(err)
	req.False(match)
}

func TestHashPassword_IsSalted(t *testing.T) {
	req := require.New(t)
	first, err := HashPassword("Same-Password-1")
	req.NoError(err)
	second, err := HashPassword("Same-Password-1")
	req.NoError(err)
	req.NotEqual(first, second)
}

func TestComparePassword_RejectsMalformedHash(t *testing.T) {
	req := require.New(t)
	for _, hash := range []string{"", "plaintext", "$bcrypt$v=19$m=1,t=1,p=1$abc$def"} {
		match, err := ComparePassword("anything", hash)
		req.Error(err, hash)
		req.False(match)
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Forklift-Driver-42", false},
		{"too short", "Fo-1", true},
		{"missing digit", "Forklift-Driver", true},
		{"missing symbol", "ForkliftDriver42", true},
		{"missing uppercase", "forklift-driver-42", true},
		{"too long", "A1!" + strings.Repeat("a", 72), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				require.ErrorIs(t, err, apperr.ErrInvalidPassword)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidate_SendMessageCommand(t *testing.T) {
	valid := domain.SendMessageCommand{TenantID: "W1", From: "carol", Destination: "Sales", Body: "hello"}
	tests := []struct {
		name    string
		mutate  func(*domain.SendMessageCommand)
		wantErr bool
	}{
		{"valid", func(*domain.SendMessageCommand) {}, false},
		{"empty body", func(c *domain.SendMessageCommand) { c.Body = "" }, true},
		{"blank body", func(c *domain.SendMessageCommand) { c.Body = "   " }, true},
		{"empty destination", func(c *domain.SendMessageCommand) { c.Destination = "" }, true},
		{"missing tenant", func(c *domain.SendMessageCommand) { c.TenantID = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command := valid
			tt.mutate(&command)
			err := Validate(command)
			if tt.wantErr {
				require.ErrorIs(t, err, apperr.ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidate_RoleMustBeKnown(t *testing.T) {
	req := require.New(t)
	command := domain.EditColleagueCommand{TenantID: "W1", Address: "alice", Group: "Sales", Role: "Owner"}
	req.ErrorIs(Validate(command), apperr.ErrValidation)

	command.Role = domain.RoleAdmin
	req.NoError(Validate(command))
}

func TestTokenIssuer(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	issuer := NewTokenIssuer("test-secret", time.Hour, clock)
	principal := domain.Principal{TenantID: "W1", Address: "alice", Role: domain.RoleAdmin, Name: "Alice Martin"}

	t.Run("round trip keeps the principal", func(t *testing.T) {
		req := require.New(t)
		token, err := issuer.GenerateToken(principal)
		req.NoError(err)

		claims, err := issuer.ValidateToken(token)
		req.NoError(err)
		req.Equal(principal, claims.Principal())
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		req := require.New(t)
		token, err := issuer.GenerateToken(principal)
		req.NoError(err)

		later := NewTokenIssuer("test-secret", time.Hour, func() time.Time { return now.Add(2 * time.Hour) })
		_, err = later.ValidateToken(token)
		req.Error(err)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		req := require.New(t)
		token, err := NewTokenIssuer("other-secret", time.Hour, clock).GenerateToken(principal)
		req.NoError(err)

		_, err = issuer.ValidateToken(token)
		req.Error(err)
	})
}

// BenchmarkHashPassword measures the CPU/RAM cost of one login
func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
