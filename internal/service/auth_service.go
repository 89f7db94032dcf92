package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"personalblog/internal/auth"
	"personalblog/internal/models"
	"personalblog/internal/repository"
)

// Revoker is the server-side denylist of logged out session tokens.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type LoginResult struct {
	Admin     *models.Admin
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*auth.Session, bool)
}

type authService struct {
	adminRepo repository.AdminRepository
	tokens    *auth.TokenManager
	revoker   Revoker
	now       func() time.Time
}

// NewAuthService builds the auth service. revoker may be nil, in which case
// logout only clears the client cookie.
func NewAuthService(adminRepo repository.AdminRepository, tokens *auth.TokenManager, revoker Revoker) AuthService {
	return &authService{
		adminRepo: adminRepo,
		tokens:    tokens,
		revoker:   revoker,
		now:       time.Now,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, models.ErrMissingCredentials
	}

	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrAdminNotFound) {
			auth.BurnPasswordCheck(password)
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("ошибка аутентификации: %w", err)
	}

	if !auth.VerifyPassword(password, admin.PasswordHash) {
		return nil, models.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(models.SessionClaim{
		UserID:   admin.AdminID,
		Username: admin.Username,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации токена сессии: %w", err)
	}

	log.Info().Str("username", admin.Username).Msg("Администратор вошёл в систему")

	return &LoginResult{Admin: admin, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes token for the rest of its lifetime when a revocation list
// is configured. Invalid or expired tokens need no revocation.
func (s *authService) Logout(ctx context.Context, token string) error {
	if s.revoker == nil {
		return nil
	}

	session, ok := s.tokens.Verify(token)
	if !ok {
		return nil
	}

	if err := s.revoker.Revoke(ctx, session.TokenID, session.Remaining(s.now())); err != nil {
		return fmt.Errorf("ошибка при выходе из системы: %w", err)
	}

	log.Info().
		Str("username", session.Claim.Username).
		Str("jti", session.TokenID).
		Time("issued_at", session.IssuedAt).
		Msg("Сессия отозвана")

	return nil
}

// Authenticate verifies token and consults the revocation list. A failed
// revocation lookup counts as invalid.
func (s *authService) Authenticate(ctx context.Context, token string) (*auth.Session, bool) {
	session, ok := s.tokens.Verify(token)
	if !ok {
		return nil, false
	}

	if s.revoker == nil {
		return session, true
	}

	revoked, err := s.revoker.IsRevoked(ctx, session.TokenID)
	if err != nil {
		log.Error().Err(err).Str("jti", session.TokenID).Msg("Не удалось проверить отзыв сессии")
		return nil, false
	}
	if revoked {
		return nil, false
	}

	return session, true
}
