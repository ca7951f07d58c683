package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/taldoflemis/brain.test-gateway/internal/session/app/idp"
	idpmock "github.com/taldoflemis/brain.test-gateway/internal/session/app/idp/mock"
	"github.com/taldoflemis/brain.test-gateway/internal/session/app/service"
	"github.com/taldoflemis/brain.test-gateway/internal/session/domain"
	"github.com/taldoflemis/brain.test-gateway/pkg/log"
	pkgtime "github.com/taldoflemis/brain.test-gateway/pkg/time"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testContext() context.Context {
	return pkgtime.NewAdjustableClock().Set(context.Background(), testNow)
}

func liveTokens() domain.TokenBundle {
	return domain.TokenBundle{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpireAt:     domain.ExpiryInstant(testNow.Add(time.Hour).String()),
	}
}

func expiredTokens() domain.TokenBundle {
	return domain.TokenBundle{
		AccessToken:  "staleAccess",
		RefreshToken: "staleRefresh",
		ExpireAt:     domain.ExpiryInstant(testNow.Add(-time.Hour).String()),
	}
}

func testUser() domain.User {
	return domain.User{
		ID:       uuid.New(),
		Username: "someUser",
		Email:    "some@user.test",
	}
}

func newService(idpService idp.Service) service.Service {
	return service.NewSessionService(idpService, pkgtime.NewAdjustableClock(), log.New(log.LevelDisabled))
}

func TestSessionService_SignIn_Returns(t *testing.T) {
	user := testUser()

	tests := []struct {
		name   string
		setup  func(mock *idpmock.Service)
		expect func(t *testing.T, session domain.Session, err error)
	}{
		{
			name: "success",
			setup: func(mock *idpmock.Service) {
				mock.EXPECT().SignIn(gomock.Any(), "someUser", "somePassword").Return(liveTokens(), nil)
				mock.EXPECT().UserInfo(gomock.Any(), "access").Return(user, nil)
			},
			expect: func(t *testing.T, session domain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, user, session.User)
				assert.Equal(t, liveTokens(), session.Tokens)
				assert.False(t, session.Errored())
			},
		},
		{
			name: "authentication_error_when_credentials_rejected",
			setup: func(mock *idpmock.Service) {
				mock.EXPECT().SignIn(gomock.Any(), "someUser", "somePassword").
					Return(domain.TokenBundle{}, idp.AuthenticationError{Message: "Usuario ou senha invalidos"})
			},
			expect: func(t *testing.T, _ domain.Session, err error) {
				var authErr idp.AuthenticationError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, "Usuario ou senha invalidos", authErr.Message)
			},
		},
		{
			name: "errored_session_when_user_info_fails",
			setup: func(mock *idpmock.Service) {
				mock.EXPECT().SignIn(gomock.Any(), "someUser", "somePassword").Return(liveTokens(), nil)
				mock.EXPECT().UserInfo(gomock.Any(), "access").Return(domain.User{}, errors.New("unexpected"))
			},
			expect: func(t *testing.T, session domain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ErrorTagUserInfoFailed, session.ErrorTag)
				assert.Equal(t, liveTokens(), session.Tokens)
				assert.Empty(t, session.User)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			idpService := idpmock.NewService(ctrl)
			tc.setup(idpService)

			session, err := newService(idpService).SignIn(testContext(), "someUser", "somePassword")
			tc.expect(t, session, err)
		})
	}
}

func TestSessionService_SignUp_Returns(t *testing.T) {
	user := testUser()

	tests := []struct {
		name   string
		data   service.SignUpData
		setup  func(mock *idpmock.Service)
		expect func(t *testing.T, session domain.Session, err error)
	}{
		{
			name: "success",
			data: service.SignUpData{Username: "someUser", Email: "some@user.test", Password: "somePassword"},
			setup: func(mock *idpmock.Service) {
				mock.EXPECT().SignUp(gomock.Any(), "someUser", "some@user.test", "somePassword").Return(liveTokens(), nil)
				mock.EXPECT().UserInfo(gomock.Any(), "access").Return(user, nil)
			},
			expect: func(t *testing.T, session domain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, user, session.User)
			},
		},
		{
			name: "error_when_username_too_short",
			data: service.SignUpData{Username: "usr", Email: "some@user.test", Password: "somePassword"},
			expect: func(t *testing.T, _ domain.Session, err error) {
				assert.ErrorIs(t, err, service.ErrUsernameInvalid)
			},
		},
		{
			name: "error_when_email_invalid",
			data: service.SignUpData{Username: "someUser", Email: "notAnEmail", Password: "somePassword"},
			expect: func(t *testing.T, _ domain.Session, err error) {
				assert.ErrorIs(t, err, service.ErrEmailInvalid)
			},
		},
		{
			name: "error_when_password_too_short",
			data: service.SignUpData{Username: "someUser", Email: "some@user.test", Password: "short"},
			expect: func(t *testing.T, _ domain.Session, err error) {
				assert.ErrorIs(t, err, service.ErrPasswordInvalid)
			},
		},
		{
			name: "error_when_user_already_exists",
			data: service.SignUpData{Username: "someUser", Email: "some@user.test", Password: "somePassword"},
			setup: func(mock *idpmock.Service) {
				mock.EXPECT().SignUp(gomock.Any(), "someUser", "some@user.test", "somePassword").
					Return(domain.TokenBundle{}, idp.ErrUserAlreadyExists)
			},
			expect: func(t *testing.T, _ domain.Session, err error) {
				assert.ErrorIs(t, err, idp.ErrUserAlreadyExists)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			idpService := idpmock.NewService(ctrl)
			if tc.setup != nil {
				tc.setup(idpService)
			}

			session, err := newService(idpService).SignUp(testContext(), tc.data)
			tc.expect(t, session, err)
		})
	}
}

func TestSessionService_Actualize_Returns(t *testing.T) {
	user := testUser()
	refreshedUser := testUser()
	refreshedTokens := domain.TokenBundle{
		AccessToken:  "freshAccess",
		RefreshToken: "freshRefresh",
		ExpireAt:     domain.ExpiryInstant(testNow.Add(time.Hour).String()),
	}

	tests := []struct {
		name    string
		session domain.Session
		setup   func(mock *idpmock.Service)
		expect  func(t *testing.T, result domain.Session, err error)
	}{
		{
			name:    "unchanged_when_token_not_expired",
			session: domain.Session{User: user, Tokens: liveTokens()},
			expect: func(t *testing.T, result domain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.Session{User: user, Tokens: liveTokens()}, result)
			},
		},
		{
			name:    "unchanged_when_already_errored",
			session: domain.Session{User: user, Tokens: expiredTokens(), ErrorTag: domain.ErrorTagRefreshFailed},
			expect: func(t *testing.T, result domain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ErrorTagRefreshFailed, result.ErrorTag)
			},
		},
		{
			name:    "refreshed_when_token_expired",
			session: domain.Session{User: user, Tokens: expiredTokens()},
			setup: func(mock *idpmock.Service) {
				mock.EXPECT().Refresh(gomock.Any(), "staleRefresh").Return(refreshedTokens, nil)
				mock.EXPECT().UserInfo(gomock.Any(), "freshAccess").Return(refreshedUser, nil)
			},
			expect: func(t *testing.T, result domain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, refreshedUser, result.User)
				assert.Equal(t, refreshedTokens, result.Tokens)
				assert.False(t, result.Errored())
			},
		},
		{
			name:    "refreshed_when_expire_at_malformed",
			session: domain.Session{User: user, Tokens: domain.TokenBundle{AccessToken: "staleAccess", RefreshToken: "staleRefresh", ExpireAt: "garbage"}},
			setup: func(mock *idpmock.Service) {
				mock.EXPECT().Refresh(gomock.Any(), "staleRefresh").Return(refreshedTokens, nil)
				mock.EXPECT().UserInfo(gomock.Any(), "freshAccess").Return(refreshedUser, nil)
			},
			expect: func(t *testing.T, result domain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, refreshedTokens, result.Tokens)
			},
		},
		{
			name:    "errored_when_refresh_fails",
			session: domain.Session{User: user, Tokens: expiredTokens()},
			setup: func(mock *idpmock.Service) {
				mock.EXPECT().Refresh(gomock.Any(), "staleRefresh").
					Return(domain.TokenBundle{}, errors.New("unexpected"))
			},
			expect: func(t *testing.T, result domain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ErrorTagRefreshFailed, result.ErrorTag)
				assert.Equal(t, user, result.User)
			},
		},
		{
			name:    "errored_when_user_info_fails_after_refresh",
			session: domain.Session{User: user, Tokens: expiredTokens()},
			setup: func(mock *idpmock.Service) {
				mock.EXPECT().Refresh(gomock.Any(), "staleRefresh").Return(refreshedTokens, nil)
				mock.EXPECT().UserInfo(gomock.Any(), "freshAccess").Return(domain.User{}, errors.New("unexpected"))
			},
			expect: func(t *testing.T, result domain.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.ErrorTagUserInfoFailed, result.ErrorTag)
				assert.Equal(t, refreshedTokens, result.Tokens)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			idpService := idpmock.NewService(ctrl)
			if tc.setup != nil {
				tc.setup(idpService)
			}

			result, err := newService(idpService).Actualize(testContext(), tc.session)
			tc.expect(t, result, err)
		})
	}
}

func TestSessionService_Actualize_CoalescesConcurrentRefreshes(t *testing.T) {
	const concurrentRequests = 10

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()
	refreshedTokens := domain.TokenBundle{
		AccessToken:  "freshAccess",
		RefreshToken: "freshRefresh",
		ExpireAt:     domain.ExpiryInstant(testNow.Add(time.Hour).String()),
	}

	entered := make(chan struct{})
	release := make(chan struct{})

	idpService := idpmock.NewService(ctrl)
	idpService.EXPECT().Refresh(gomock.Any(), "staleRefresh").
		DoAndReturn(func(context.Context, string) (domain.TokenBundle, error) {
			close(entered)
			<-release
			return refreshedTokens, nil
		}).
		Times(1)
	idpService.EXPECT().UserInfo(gomock.Any(), "freshAccess").Return(user, nil).Times(1)

	srv := newService(idpService)
	session := domain.Session{User: user, Tokens: expiredTokens()}

	results := make([]domain.Session, concurrentRequests)
	var wg sync.WaitGroup
	wg.Add(concurrentRequests)
	for i := 0; i < concurrentRequests; i++ {
		i := i
		go func() {
			defer wg.Done()
			result, err := srv.Actualize(testContext(), session)
			assert.NoError(t, err)
			results[i] = result
		}()
	}

	<-entered
	// give the remaining callers time to join the in-flight refresh
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, refreshedTokens, result.Tokens)
		assert.False(t, result.Errored())
	}
}

func TestSessionService_Actualize_SurvivesInitiatorCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser()
	refreshedTokens := domain.TokenBundle{
		AccessToken:  "freshAccess",
		RefreshToken: "freshRefresh",
		ExpireAt:     domain.ExpiryInstant(testNow.Add(time.Hour).String()),
	}

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	idpService := idpmock.NewService(ctrl)
	idpService.EXPECT().Refresh(gomock.Any(), "staleRefresh").
		DoAndReturn(func(refreshCtx context.Context, _ string) (domain.TokenBundle, error) {
			cancel()
			require.NoError(t, refreshCtx.Err())
			return refreshedTokens, nil
		})
	idpService.EXPECT().UserInfo(gomock.Any(), "freshAccess").Return(user, nil)

	result, err := newService(idpService).Actualize(ctx, domain.Session{User: user, Tokens: expiredTokens()})
	require.NoError(t, err)
	assert.Equal(t, refreshedTokens, result.Tokens)
	assert.False(t, result.Errored())
}
