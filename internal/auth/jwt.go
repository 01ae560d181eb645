package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campushq/college-portal-api/internal/model"
)

// Typed verification failures. Callers decide between redirect-to-login and
// plain denial based on which of these they get.
var (
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenInvalid   = errors.New("invalid token")
)

// SessionClaims is the identity payload embedded in a session token.
type SessionClaims struct {
	UserID string     `json:"id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	Name   string     `json:"name"`
	jwt.RegisteredClaims
}

// JWTAuthenticator signs and verifies session tokens. It is stateless; all
// state lives in the token itself.
type JWTAuthenticator struct {
	secret string
	issuer string
}

// NewJWTAuthenticator creates a new JWTAuthenticator instance.
func NewJWTAuthenticator(secret, issuer string) JWTAuthenticator {
	return JWTAuthenticator{
		secret: secret,
		issuer: issuer,
	}
}

// Issue creates a signed session token for the given user with the given
// time to live.
func (a *JWTAuthenticator) Issue(user *model.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString([]byte(a.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenStr, nil
}

// Verify parses and validates a session token, returning the embedded
// claims. Failures map onto ErrTokenMalformed, ErrTokenExpired and
// ErrTokenInvalid.
func (a *JWTAuthenticator) Verify(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(a.secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	default:
		return nil, ErrTokenInvalid
	}

	if !token.Valid || !claims.Role.Valid() {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
