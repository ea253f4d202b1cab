package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Skotchmaster/boutiquechat/internal/models"
	"github.com/Skotchmaster/boutiquechat/internal/repo"
	pkghash "github.com/Skotchmaster/boutiquechat/pkg/hash"
	"github.com/Skotchmaster/boutiquechat/pkg/logging"
	"github.com/Skotchmaster/boutiquechat/pkg/tokens"
)

const DefaultAccessTTL = 12 * time.Hour

type AuthService struct {
	Repo      repo.Repository
	JWTSecret []byte
	AccessTTL time.Duration
}

type LoginResult struct {
	AccessToken string
	AccessExp   time.Time
}

func (s *AuthService) ttl() time.Duration {
	if s.AccessTTL <= 0 {
		return DefaultAccessTTL
	}
	return s.AccessTTL
}

// EnsureAdmin seeds the administrator account on first start.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("admin username and password are required: %w", ErrValidation)
	}

	pwHash, err := pkghash.HashPassword(password)
	if err != nil {
		return err
	}

	created, err := s.Repo.CreateAdminIfNotExists(ctx, &models.Admin{Username: username, PasswordHash: pwHash})
	if err != nil {
		return err
	}
	if created {
		logging.FromContext(ctx).Info("admin_created", "username", username)
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login", "username", username)

	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrValidation)
	}

	admin, err := s.Repo.GetAdmin(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown user")
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !pkghash.CheckPassword(admin.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "wrong password")
		return nil, ErrUnauthorized
	}

	exp := time.Now().Add(s.ttl())
	token, _, err := tokens.NewAccessToken(s.JWTSecret, admin.Username, tokens.RoleAdmin, exp)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: token, AccessExp: exp}, nil
}

// Authenticate validates an access token and rejects signed-out ones.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*tokens.AccessClaims, error) {
	if token == "" {
		return nil, fmt.Errorf("missing token: %w", ErrUnauthorized)
	}

	claims, err := tokens.AccessClaimsFromToken(token, s.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrUnauthorized)
	}
	if claims.Role != tokens.RoleAdmin {
		return nil, fmt.Errorf("admin role required: %w", ErrUnauthorized)
	}

	revoked, err := s.Repo.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("token signed out: %w", ErrUnauthorized)
	}
	return claims, nil
}

// SignOut revokes the token's jti. Invalid or expired tokens are ignored.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	claims, err := tokens.AccessClaimsFromToken(token, s.JWTSecret)
	if err != nil || claims.ID == "" {
		return nil
	}

	exp := time.Now().Add(s.ttl())
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	return s.Repo.RevokeToken(ctx, claims.ID, exp)
}
