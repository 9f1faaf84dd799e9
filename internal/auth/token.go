package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/admin-console/internal/domain"
)

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Claims describes JWT payload. The registered ID doubles as the session id.
type Claims struct {
	AccountID string      `json:"account_id"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// SessionID returns the session bound to the token.
func (c *Claims) SessionID() string {
	return c.ID
}

// GenerateToken builds and signs a JWT for the account and returns the
// session it represents.
func (tm *TokenManager) GenerateToken(account *domain.Account) (string, domain.Session, error) {
	return tm.GenerateTokenTTL(account, tm.ttl)
}

// GenerateTokenTTL is GenerateToken with an explicit lifetime. A non-positive
// ttl falls back to the manager's default.
func (tm *TokenManager) GenerateTokenTTL(account *domain.Account, ttl time.Duration) (string, domain.Session, error) {
	if ttl <= 0 {
		ttl = tm.ttl
	}
	issuedAt := tm.now()
	session := domain.Session{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		IssuedAt:  issuedAt,
		ExpiresAt: issuedAt.Add(ttl),
	}
	claims := &Claims{
		AccountID: account.ID,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   account.ID,
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", domain.Session{}, err
	}
	return tokenString, session, nil
}

// ParseToken validates and returns claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.ID == "" || claims.AccountID == "" {
		return nil, errors.New("token missing session")
	}
	return claims, nil
}
