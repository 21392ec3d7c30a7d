package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer          = "lead-parser"
	defaultTokenTTL = 24 * time.Hour
)

var errEmptySecret = errors.New("jwt secret must not be empty")

// Claims identifies the caller of the parse API.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// JWTManager issues and verifies HMAC signed tokens for API callers.
type JWTManager struct {
	secret []byte
}

// NewJWTManager constructs a manager with the given shared secret.
func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret)}
}

// GenerateToken mints a token for an integration such as a mailbox forwarder. A non-positive
// ttl defaults to 24h.
func (m *JWTManager) GenerateToken(subject, role string, ttl time.Duration) (string, error) {
	if len(m.secret) == 0 {
		return "", errEmptySecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken verifies the token signature, expiry and issuer.
func (m *JWTManager) ParseToken(token string) (*Claims, error) {
	if len(m.secret) == 0 {
		return nil, errEmptySecret
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
