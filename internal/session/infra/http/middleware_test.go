package http_test

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	internalauth "github.com/taldoflemis/brain.test-gateway/internal/pkg/auth"
	idpmock "github.com/taldoflemis/brain.test-gateway/internal/session/app/idp/mock"
	"github.com/taldoflemis/brain.test-gateway/internal/session/app/service"
	"github.com/taldoflemis/brain.test-gateway/internal/session/domain"
	sessionhttp "github.com/taldoflemis/brain.test-gateway/internal/session/infra/http"
	"github.com/taldoflemis/brain.test-gateway/internal/session/infra/token"
	pkgauth "github.com/taldoflemis/brain.test-gateway/pkg/auth"
	"github.com/taldoflemis/brain.test-gateway/pkg/log"
	pkgtime "github.com/taldoflemis/brain.test-gateway/pkg/time"
)

const (
	testSecret    = "someTestSecretValue"
	testCookieTTL = 7 * 24 * time.Hour
)

type probeResult struct {
	authenticated bool
	principal     internalauth.Principal
}

func TestWithSessionAuth_AuthenticatesRequest(t *testing.T) {
	user := domain.User{
		ID:       uuid.New(),
		Username: "someUser",
		Email:    "some@user.test",
	}
	liveTokens := domain.TokenBundle{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpireAt:     domain.ExpiryInstant(time.Now().Add(time.Hour).String()),
	}
	staleTokens := domain.TokenBundle{
		AccessToken:  "staleAccess",
		RefreshToken: "staleRefresh",
		ExpireAt:     domain.ExpiryInstant(time.Now().Add(-time.Hour).String()),
	}
	freshTokens := domain.TokenBundle{
		AccessToken:  "freshAccess",
		RefreshToken: "freshRefresh",
		ExpireAt:     domain.ExpiryInstant(time.Now().Add(time.Hour).String()),
	}

	tests := []struct {
		name      string
		session   *domain.Session
		rawCookie string
		setup     func(mock *idpmock.Service)
		expect    func(t *testing.T, resp *nethttp.Response, result probeResult)
	}{
		{
			name:    "authenticated_with_live_tokens",
			session: &domain.Session{User: user, Tokens: liveTokens},
			expect: func(t *testing.T, resp *nethttp.Response, result probeResult) {
				require.True(t, result.authenticated)
				assert.Equal(t, user.ID, result.principal.UserID)
				assert.Equal(t, "access", result.principal.AccessToken)
				assert.Empty(t, resp.Cookies())
			},
		},
		{
			name:    "authenticated_and_cookie_renewed_after_refresh",
			session: &domain.Session{User: user, Tokens: staleTokens},
			setup: func(mock *idpmock.Service) {
				mock.EXPECT().Refresh(gomock.Any(), "staleRefresh").Return(freshTokens, nil)
				mock.EXPECT().UserInfo(gomock.Any(), "freshAccess").Return(user, nil)
			},
			expect: func(t *testing.T, resp *nethttp.Response, result probeResult) {
				require.True(t, result.authenticated)
				assert.Equal(t, "freshAccess", result.principal.AccessToken)

				cookie := sessionCookie(t, resp)
				codec := token.NewCodec(testSecret, testCookieTTL)
				renewed, err := codec.Decode(cookie.Value)
				require.NoError(t, err)
				assert.Equal(t, freshTokens, renewed.Tokens)
			},
		},
		{
			name:    "unauthenticated_and_cookie_dropped_when_refresh_fails",
			session: &domain.Session{User: user, Tokens: staleTokens},
			setup: func(mock *idpmock.Service) {
				mock.EXPECT().Refresh(gomock.Any(), "staleRefresh").
					Return(domain.TokenBundle{}, errors.New("unexpected"))
			},
			expect: func(t *testing.T, resp *nethttp.Response, result probeResult) {
				assert.False(t, result.authenticated)

				cookie := sessionCookie(t, resp)
				assert.Empty(t, cookie.Value)
				assert.Negative(t, cookie.MaxAge)
			},
		},
		{
			name: "unauthenticated_without_cookie",
			expect: func(t *testing.T, resp *nethttp.Response, result probeResult) {
				assert.False(t, result.authenticated)
				assert.Empty(t, resp.Cookies())
			},
		},
		{
			name:      "unauthenticated_and_cookie_dropped_when_cookie_malformed",
			rawCookie: "notASignedToken",
			expect: func(t *testing.T, resp *nethttp.Response, result probeResult) {
				assert.False(t, result.authenticated)

				cookie := sessionCookie(t, resp)
				assert.Negative(t, cookie.MaxAge)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			idpService := idpmock.NewService(ctrl)
			if tc.setup != nil {
				tc.setup(idpService)
			}

			clock := pkgtime.NewAdjustableClock()
			logger := log.New(log.LevelDisabled)
			codec := token.NewCodec(testSecret, testCookieTTL)
			sessions := service.NewSessionService(idpService, clock, logger)

			var result probeResult
			router := mux.NewRouter()
			sessionhttp.WithSessionAuth(codec, sessions, testCookieTTL, clock, logger)(router)
			router.Path("/probe").HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				result = probe(r.Context())
				w.WriteHeader(nethttp.StatusOK)
			})

			server := httptest.NewServer(router)
			t.Cleanup(server.Close)

			req, err := nethttp.NewRequest(nethttp.MethodGet, server.URL+"/probe", nil)
			require.NoError(t, err)
			switch {
			case tc.session != nil:
				encoded, err := codec.Encode(*tc.session, time.Now())
				require.NoError(t, err)
				req.AddCookie(&nethttp.Cookie{Name: "qst", Value: encoded})
			case tc.rawCookie != "":
				req.AddCookie(&nethttp.Cookie{Name: "qst", Value: tc.rawCookie})
			}

			resp, err := nethttp.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, nethttp.StatusOK, resp.StatusCode)

			tc.expect(t, resp, result)
		})
	}
}

func probe(ctx context.Context) probeResult {
	authentication, ok := pkgauth.GetAuthentication[internalauth.Principal](ctx)
	if !ok || !authentication.IsAuthenticated() {
		return probeResult{}
	}

	return probeResult{
		authenticated: true,
		principal:     *authentication.Principal(),
	}
}

func sessionCookie(t *testing.T, resp *nethttp.Response) *nethttp.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "qst" {
			return cookie
		}
	}

	require.FailNow(t, "session cookie not found")
	return nil
}
