package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/smartjob/internal/config"
	"github.com/jonathan/smartjob/internal/server/middleware"
	"github.com/jonathan/smartjob/internal/types"
)

// Claims carries the session in a signed token.
type Claims struct {
	UserID string     `json:"user_id"`
	Role   types.Role `json:"role"`
	jwt.RegisteredClaims
}

// GetSession implements middleware.SessionGetter.
func (c *Claims) GetSession() middleware.Session {
	return middleware.Session{UserID: c.UserID, Role: c.Role}
}

// AsTokenValidator adapts the service to the middleware without an import cycle.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return &jwtServiceValidator{service: s}
}

type jwtServiceValidator struct {
	service *JWTService
}

func (v *jwtServiceValidator) ValidateToken(tokenString string) (middleware.SessionGetter, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// JWTService issues and validates session tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates a JWT service from the auth configuration.
func NewJWTService(cfg *config.AuthConfig) *JWTService {
	return &JWTService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL(),
		now:    time.Now,
	}
}

// GenerateToken signs a token for the user.
func (s *JWTService) GenerateToken(user types.User) (string, error) {
	now := s.now()

	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken validates a token and returns its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token string is empty")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("token expired: %w", err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, fmt.Errorf("invalid token signature: %w", err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, fmt.Errorf("malformed token: %w", err)
	case err != nil:
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid || claims.UserID == "" || !claims.Role.Valid() {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}
