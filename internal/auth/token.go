package auth

import (
	"errors"
	"fmt"
	"time"

	"gym-admin/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	ErrInvalidToken = errors.New("token is malformed or its signature does not verify")
	ErrTokenExpired = errors.New("token has expired")
)

// Claims defines the structure of the JWT payload.
type Claims struct {
	UserID string      `json:"uid"`
	Role   domain.Role `json:"role"`
	JTI    string      `json:"jti"`
	jwt.RegisteredClaims
}

// Manager mints and validates session tokens. Validation is a pure function
// of the token and the signing key: no store lookup, no locks, no I/O.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager with a fixed signing key and lifetime.
// Rotating the key invalidates every outstanding token.
func NewManager(secret string, ttl time.Duration) *Manager {
	if secret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed, expiring token bound to a user identity and role.
func (m *Manager) Issue(userID string, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		JTI:    uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "gym-admin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates a token string and returns its claims.
// Returns ErrTokenExpired for a correctly signed but stale token and
// ErrInvalidToken for everything else that is wrong with it.
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" || claims.Role == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TTL reports the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
