package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taldoflemis/brain.test-gateway/internal/session/domain"
)

var ErrInvalidToken = errors.New("session token is invalid or expired")

type (
	// Codec signs sessions into browser cookie values and restores them back.
	Codec interface {
		Encode(session domain.Session, now time.Time) (string, error)
		Decode(token string) (domain.Session, error)
	}

	codec struct {
		secret []byte
		ttl    time.Duration
	}
)

func NewCodec(secret string, ttl time.Duration) Codec {
	return codec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (c codec) Encode(session domain.Session, now time.Time) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID:       session.User.ID,
		Username:     session.User.Username,
		Email:        session.User.Email,
		AccessToken:  session.Tokens.AccessToken,
		RefreshToken: session.Tokens.RefreshToken,
		ExpireAt:     string(session.Tokens.ExpireAt),
		Error:        string(session.ErrorTag),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return token, nil
}

func (c codec) Decode(token string) (domain.Session, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return domain.Session{
		User: domain.User{
			ID:       claims.UserID,
			Username: claims.Username,
			Email:    claims.Email,
		},
		Tokens: domain.TokenBundle{
			AccessToken:  claims.AccessToken,
			RefreshToken: claims.RefreshToken,
			ExpireAt:     domain.ExpiryInstant(claims.ExpireAt),
		},
		ErrorTag: domain.ErrorTag(claims.Error),
	}, nil
}

type sessionClaims struct {
	jwt.RegisteredClaims

	UserID       uuid.UUID `json:"uid"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpireAt     string    `json:"expire_at"`
	Error        string    `json:"error,omitempty"`
}
