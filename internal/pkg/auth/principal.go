package auth

import (
	"github.com/google/uuid"

	"github.com/taldoflemis/brain.test-gateway/pkg/auth"
)

const PrincipalTypeUser auth.PrincipalType = "user"

// Principal is the signed-in user restored from the session cookie.
// AccessToken carries the backend token the gateway acts with on the user's behalf.
type Principal struct {
	UserID      uuid.UUID
	Username    string
	Email       string
	AccessToken string
}

func (p Principal) Type() auth.PrincipalType {
	return PrincipalTypeUser
}

func (p Principal) ID() *string {
	v := p.UserID.String()
	return &v
}
