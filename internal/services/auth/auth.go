// Package auth validates the bearer tokens issued by the platform's
// identity provider and resolves them to an actor the handlers can act on.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/labelreader/label-api/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrUnknownRole  = errors.New("unknown role")
)

// Claims is the token payload the platform issues
type Claims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`

	jwt.RegisteredClaims
}

// Actor is the authenticated caller as the handlers see it
type Actor struct {
	UserID uint
	Role   string
}

// IsArtist reports whether the actor holds the artist role
func (a Actor) IsArtist() bool { return a.Role == models.RoleArtist }

// IsLabel reports whether the actor holds the label role
func (a Actor) IsLabel() bool { return a.Role == models.RoleLabel }

// Service verifies HMAC-signed platform tokens
type Service struct {
	secret []byte
	issuer string
}

// NewService creates a token verifier for the given signing secret
func NewService(secret string) *Service {
	return &Service{
		secret: []byte(secret),
		issuer: "labelreader",
	}
}

// ValidateToken verifies the signature, expiry, and role of a bearer token
// and returns the actor it represents
func (s *Service) ValidateToken(tokenString string) (*Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	if claims.Role != models.RoleArtist && claims.Role != models.RoleLabel {
		return nil, ErrUnknownRole
	}

	return &Actor{UserID: claims.UserID, Role: claims.Role}, nil
}

// IssueToken mints a signed token for a user. Used by the dev login flow
// and the test suite; production tokens come from the identity provider.
func (s *Service) IssueToken(userID uint, role string, ttl time.Duration) (string, error) {
	if role != models.RoleArtist && role != models.RoleLabel {
		return "", ErrUnknownRole
	}
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
