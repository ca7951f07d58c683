package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taldoflemis/brain.test-gateway/internal/session/domain"
	"github.com/taldoflemis/brain.test-gateway/internal/session/infra/token"
)

const testSecret = "someTestSecretValue"

func testSession() domain.Session {
	return domain.Session{
		User: domain.User{
			ID:       uuid.New(),
			Username: "someUser",
			Email:    "some@user.test",
		},
		Tokens: domain.TokenBundle{
			AccessToken:  "access",
			RefreshToken: "refresh",
			ExpireAt:     "2024-05-01 13:00:00 +0000 UTC",
		},
	}
}

func TestCodec_Decode_RestoresEncodedSession(t *testing.T) {
	codec := token.NewCodec(testSecret, time.Hour)
	session := testSession()

	encoded, err := codec.Encode(session, time.Now())
	require.NoError(t, err)

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, session, decoded)
}

func TestCodec_Decode_RestoresErrorTag(t *testing.T) {
	codec := token.NewCodec(testSecret, time.Hour)
	session := testSession().WithError(domain.ErrorTagRefreshFailed)

	encoded, err := codec.Encode(session, time.Now())
	require.NoError(t, err)

	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, domain.ErrorTagRefreshFailed, decoded.ErrorTag)
}

func TestCodec_Decode_Fails(t *testing.T) {
	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "when_token_malformed",
			token: func(*testing.T) string {
				return "notAToken"
			},
		},
		{
			name: "when_signed_with_other_secret",
			token: func(t *testing.T) string {
				otherCodec := token.NewCodec("someOtherSecret", time.Hour)
				encoded, err := otherCodec.Encode(testSession(), time.Now())
				require.NoError(t, err)
				return encoded
			},
		},
		{
			name: "when_token_ttl_elapsed",
			token: func(t *testing.T) string {
				codec := token.NewCodec(testSecret, time.Hour)
				encoded, err := codec.Encode(testSession(), time.Now().Add(-2*time.Hour))
				require.NoError(t, err)
				return encoded
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			codec := token.NewCodec(testSecret, time.Hour)

			_, err := codec.Decode(tc.token(t))
			assert.ErrorIs(t, err, token.ErrInvalidToken)
		})
	}
}
