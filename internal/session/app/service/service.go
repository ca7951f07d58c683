package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/taldoflemis/brain.test-gateway/internal/session/app/idp"
	"github.com/taldoflemis/brain.test-gateway/internal/session/domain"
	"github.com/taldoflemis/brain.test-gateway/pkg/log"
	pkgtime "github.com/taldoflemis/brain.test-gateway/pkg/time"
)

const (
	usernameMinLength = 5
	usernameMaxLength = 50
	passwordMinLength = 8
)

var (
	ErrUsernameInvalid = errors.New("username must be between 5 and 50 characters")
	ErrEmailInvalid    = errors.New("email is invalid")
	ErrPasswordInvalid = errors.New("password must be at least 8 characters")
)

type (
	Service interface {
		SignIn(ctx context.Context, username, password string) (domain.Session, error)
		SignUp(ctx context.Context, data SignUpData) (domain.Session, error)
		// Actualize returns the session ready to act with: unchanged while its
		// access token lives, refreshed once it expires. An errored session is
		// terminal and comes back as-is.
		Actualize(ctx context.Context, session domain.Session) (domain.Session, error)
	}

	SignUpData struct {
		Username string
		Email    string
		Password string
	}

	sessionService struct {
		idp    idp.Service
		clock  pkgtime.Clock
		logger log.Logger

		refreshGroup singleflight.Group
	}
)

func NewSessionService(idpService idp.Service, clock pkgtime.Clock, logger log.Logger) Service {
	return &sessionService{
		idp:    idpService,
		clock:  clock,
		logger: logger,
	}
}

func (s *sessionService) SignIn(ctx context.Context, username, password string) (domain.Session, error) {
	tokens, err := s.idp.SignIn(ctx, username, password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign in: %w", err)
	}

	return s.sessionFromTokens(ctx, tokens), nil
}

func (s *sessionService) SignUp(ctx context.Context, data SignUpData) (domain.Session, error) {
	if err := validateSignUpData(data); err != nil {
		return domain.Session{}, err
	}

	tokens, err := s.idp.SignUp(ctx, data.Username, data.Email, data.Password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("sign up: %w", err)
	}

	return s.sessionFromTokens(ctx, tokens), nil
}

func (s *sessionService) Actualize(ctx context.Context, session domain.Session) (domain.Session, error) {
	if session.Errored() {
		return session, nil
	}

	if !session.Tokens.ExpireAt.Expired(s.clock.Now(ctx)) {
		return session, nil
	}

	// The flight is shared with coalesced callers, so it must not die with
	// the request that happened to start it.
	refreshCtx := context.WithoutCancel(ctx)
	refreshed, err, _ := s.refreshGroup.Do(session.Tokens.RefreshToken, func() (any, error) {
		return s.refreshSession(refreshCtx, session), nil
	})
	if err != nil {
		return domain.Session{}, err
	}

	return refreshed.(domain.Session), nil
}

// refreshSession never fails the caller: a broken refresh or user fetch is
// recorded on the session itself and the session keeps flowing as data.
func (s *sessionService) refreshSession(ctx context.Context, session domain.Session) domain.Session {
	tokens, err := s.idp.Refresh(ctx, session.Tokens.RefreshToken)
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to refresh access token")
		return session.WithError(domain.ErrorTagRefreshFailed)
	}

	return s.sessionFromTokens(ctx, tokens)
}

func (s *sessionService) sessionFromTokens(ctx context.Context, tokens domain.TokenBundle) domain.Session {
	user, err := s.idp.UserInfo(ctx, tokens.AccessToken)
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to get user info")
		return domain.Session{Tokens: tokens}.WithError(domain.ErrorTagUserInfoFailed)
	}

	return domain.Session{User: user, Tokens: tokens}
}

func validateSignUpData(data SignUpData) error {
	username := strings.TrimSpace(data.Username)
	if len(username) < usernameMinLength || len(username) > usernameMaxLength {
		return ErrUsernameInvalid
	}

	if _, err := mail.ParseAddress(data.Email); err != nil {
		return ErrEmailInvalid
	}

	if len(data.Password) < passwordMinLength {
		return ErrPasswordInvalid
	}

	return nil
}
