package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"personalblog/internal/models"
)

// SessionTTL is the fixed lifetime of a session token and its cookie.
const SessionTTL = 7 * 24 * time.Hour

// Claims is the JWT payload of a session token.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Session is a verified token: the identity plus its registered claims.
type Session struct {
	Claim     models.SessionClaim
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Remaining is how long the token stays valid after now.
func (s *Session) Remaining(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*TokenManager)

// WithClock replaces time.Now for issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(m *TokenManager) {
		m.now = now
	}
}

func NewTokenManager(secret string, opts ...Option) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("секретный ключ сессии не задан")
	}

	m := &TokenManager{
		secret: []byte(secret),
		ttl:    SessionTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Issue signs a new token for claim and returns it with its expiry.
func (m *TokenManager) Issue(claim models.SessionClaim) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		UserID:   claim.UserID,
		Username: claim.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Verify checks signature and expiry. Any failure yields (nil, false);
// a partially valid token is never returned.
func (m *TokenManager) Verify(tokenString string) (*Session, bool) {
	if tokenString == "" {
		return nil, false
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
	)
	if err != nil || !token.Valid {
		return nil, false
	}

	if claims.UserID == "" || claims.Username == "" || claims.ID == "" || claims.IssuedAt == nil {
		return nil, false
	}

	return &Session{
		Claim: models.SessionClaim{
			UserID:   claims.UserID,
			Username: claims.Username,
		},
		TokenID:   claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, true
}
