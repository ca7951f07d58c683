package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// ErrorTagRefreshFailed marks a session whose access token could not be refreshed.
	ErrorTagRefreshFailed ErrorTag = "RefreshAccessTokenError"
	// ErrorTagUserInfoFailed marks a session whose user data could not be fetched.
	ErrorTagUserInfoFailed ErrorTag = "CouldNotGetUserInfoError"
)

// expireAtLayouts are the timestamp formats the auth service has been seen
// serializing expirations with.
var expireAtLayouts = []string{
	"2006-01-02 15:04:05.999999999 -0700 MST",
	time.RFC3339,
}

type (
	Session struct {
		User     User
		Tokens   TokenBundle
		ErrorTag ErrorTag
	}

	User struct {
		ID       uuid.UUID
		Username string
		Email    string
	}

	TokenBundle struct {
		AccessToken  string
		RefreshToken string
		ExpireAt     ExpiryInstant
	}

	ErrorTag string

	ExpiryInstant string
)

func (s Session) Errored() bool {
	return s.ErrorTag != ""
}

func (s Session) WithError(tag ErrorTag) Session {
	s.ErrorTag = tag
	return s
}

// Expired reports whether the instant has passed. An instant that cannot be
// parsed counts as expired, so a session never outlives a timestamp the
// auth service stopped vouching for.
func (e ExpiryInstant) Expired(now time.Time) bool {
	value := string(e)
	if idx := strings.Index(value, " m="); idx >= 0 {
		value = value[:idx]
	}

	for _, layout := range expireAtLayouts {
		expireAt, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return !now.Before(expireAt)
	}

	return true
}
