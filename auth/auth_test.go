package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joaogpereira/UniDrive/domain"
	"github.com/joaogpereira/UniDrive/errors"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "SenhaSegura123"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("SenhaErrada456", hash)
	req.NoError(err)
	req.False(match)
}

func TestRegistrationValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		request RegisterRequest
		wantErr bool
	}{
		{"Valid passenger", RegisterRequest{"Test User", "test@example.com", "SenhaSegura123", "passenger"}, false},
		{"Valid driver", RegisterRequest{"Carlos Silva", "carlos@example.com", "SenhaSegura123", "driver"}, false},
		{"Invalid email", RegisterRequest{"Test User", "notanemail", "SenhaSegura123", "passenger"}, true},
		{"Password too short", RegisterRequest{"Test User", "test@example.com", "Abc1", "passenger"}, true},
		{"Password without digit", RegisterRequest{"Test User", "test@example.com", "SenhaSemNumero", "passenger"}, true},
		{"Password too long", RegisterRequest{"Test User", "test@example.com", strings.Repeat("a1", 40), "passenger"}, true},
		{"Unknown role", RegisterRequest{"Test User", "test@example.com", "SenhaSegura123", "admin"}, true},
		{"Missing name", RegisterRequest{"", "test@example.com", "SenhaSegura123", "passenger"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.request)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)
	identity := domain.Identity{ID: "user-123", DisplayName: "Test User", Role: domain.RolePassenger}

	token, err := GenerateToken(identity, time.Hour)
	req.NoError(err)

	resolved, err := ValidateToken(token)
	req.NoError(err)
	req.Equal(identity, resolved)
}

func TestTokenExpired(t *testing.T) {
	req := require.New(t)
	identity := domain.Identity{ID: "user-123", DisplayName: "Test User", Role: domain.RolePassenger}

	token, err := GenerateToken(identity, -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

func TestResolveIdentity(t *testing.T) {
	req := require.New(t)

	_, err := ResolveIdentity(nil)
	req.ErrorIs(err, errors.ErrUnauthenticated)

	_, err = ResolveIdentity(&domain.Identity{DisplayName: "ghost"})
	req.ErrorIs(err, errors.ErrUnauthenticated)

	resolved, err := ResolveIdentity(&domain.Identity{ID: "user-123", DisplayName: "Test User"})
	req.NoError(err)
	req.Equal(domain.RolePassenger, resolved.Role)

	resolved, err = ResolveIdentity(&domain.Identity{ID: "driver-1", DisplayName: "Carlos Silva", Role: domain.RoleDriver})
	req.NoError(err)
	req.Equal(domain.RoleDriver, resolved.Role)
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("SenhaSegura123")
	}
}
