//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Service=Service"
package idp

import (
	"context"
	"errors"

	"github.com/taldoflemis/brain.test-gateway/internal/session/domain"
)

var ErrUserAlreadyExists = errors.New("user already exists")

type (
	// Service is the auth backend the gateway exchanges credentials and tokens with.
	Service interface {
		SignIn(ctx context.Context, username, password string) (domain.TokenBundle, error)
		SignUp(ctx context.Context, username, email, password string) (domain.TokenBundle, error)
		Refresh(ctx context.Context, refreshToken string) (domain.TokenBundle, error)
		UserInfo(ctx context.Context, accessToken string) (domain.User, error)
	}

	// AuthenticationError carries the auth service's message for a rejected
	// credential exchange. It is the only failure surfaced to the caller as-is.
	AuthenticationError struct {
		Message string
	}
)

func (e AuthenticationError) Error() string {
	return e.Message
}
