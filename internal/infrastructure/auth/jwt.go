package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	"github.com/iho/revsync/internal/domain"
)

const (
	issuer   = "revsync"
	audience = "revsync-api"

	// clockSkew tolerated between the CLI that issues a token and the server.
	clockSkew = 30 * time.Second
)

// Claims are the operator token claims.
type Claims struct {
	OperatorID string      `json:"operator_id"`
	Email      string      `json:"email,omitempty"`
	Role       domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Operator returns the operator the claims were issued to.
func (c *Claims) Operator() *domain.Operator {
	return &domain.Operator{ID: c.OperatorID, Email: c.Email, Role: c.Role}
}

// JWTManager issues and verifies HS256 operator tokens.
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
	parser        *jwt.Parser
}

func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

// Generate issues a token for op with the manager's default lifetime.
func (m *JWTManager) Generate(op *domain.Operator) (string, error) {
	return m.GenerateWithTTL(op, m.tokenDuration)
}

// GenerateWithTTL issues a token for op that expires after ttl. Each token
// carries a unique ID so issued tokens can be told apart in logs.
func (m *JWTManager) GenerateWithTTL(op *domain.Operator, ttl time.Duration) (string, error) {
	if op.ID == "" {
		return "", errors.New("cannot issue token: operator id is empty")
	}
	if !op.Role.IsValid() {
		return "", fmt.Errorf("cannot issue token: invalid role %q", op.Role)
	}
	if ttl <= 0 {
		return "", fmt.Errorf("cannot issue token: non-positive lifetime %s", ttl)
	}

	now := time.Now()
	claims := Claims{
		OperatorID: op.ID,
		Email:      op.Email,
		Role:       op.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        ulid.Make().String(),
			Issuer:    issuer,
			Subject:   op.ID,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
}

// Verify checks signature, issuer, audience and lifetime. Expired tokens
// map to domain.ErrExpiredToken and every other failure to ErrInvalidToken.
func (m *JWTManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := m.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secretKey, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domain.ErrExpiredToken
	case err != nil:
		return nil, domain.ErrInvalidToken
	case !claims.Role.IsValid() || claims.OperatorID == "":
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
