package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
	"github.com/pribylovaa/personnel-oauth/mocks"
)

func testClient(t *testing.T) *models.Client {
	t.Helper()
	return &models.Client{
		ClientID:         "app",
		ClientSecretHash: mustHash(t, "s3cret"),
		RedirectURI:      "https://app.example.com/cb",
	}
}

func TestCheckAuthorizeRequest(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := testClient(t)

	st.EXPECT().ClientByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
	got, err := svc.CheckAuthorizeRequest(ctx, "ghost", "code")
	require.ErrorIs(t, err, ErrInvalidClient)
	require.Nil(t, got)

	st.EXPECT().ClientByID(gomock.Any(), "app").Return(client, nil).Times(2)

	got, err = svc.CheckAuthorizeRequest(ctx, "app", "token")
	require.ErrorIs(t, err, ErrUnsupportedResponseType)
	require.Equal(t, client, got)

	got, err = svc.CheckAuthorizeRequest(ctx, "app", "code")
	require.NoError(t, err)
	require.Equal(t, client, got)
}

func TestCheckAuthorizeRequest_EmptyClientID_NoStorageCall(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.CheckAuthorizeRequest(context.Background(), "", "code")
	require.ErrorIs(t, err, ErrInvalidClient)
}

func TestAuthorize_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	sequenceTokens(svc, "0123456789abcdef0123456789abcdef")
	client := testClient(t)

	st.EXPECT().ClientByID(gomock.Any(), "app").Return(client, nil)
	st.EXPECT().UserByUsername(gomock.Any(), "alice").
		Return(&models.User{Username: "alice", PasswordHash: mustHash(t, "pw")}, nil)
	st.EXPECT().SaveAuthorizationCode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, code *models.AuthorizationCode) error {
			require.Equal(t, hashToken("0123456789abcdef0123456789abcdef"), code.CodeHash)
			require.Equal(t, "alice", code.Username)
			require.Equal(t, fixedNow.Add(10*time.Minute), code.ExpiresAt)
			return nil
		})

	got, code, err := svc.Authorize(context.Background(), AuthorizeRequest{ClientID: "app", Username: "alice", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, client, got)
	require.Equal(t, "0123456789abcdef0123456789abcdef", code)
}

func TestAuthorize_Denied(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	client := testClient(t)
	st.EXPECT().ClientByID(gomock.Any(), "app").Return(client, nil).AnyTimes()

	// Неизвестный пользователь.
	st.EXPECT().UserByUsername(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
	got, code, err := svc.Authorize(ctx, AuthorizeRequest{ClientID: "app", Username: "ghost", Password: "pw"})
	require.ErrorIs(t, err, ErrAccessDenied)
	require.Equal(t, client, got)
	require.Empty(t, code)

	// Неверный пароль.
	st.EXPECT().UserByUsername(gomock.Any(), "alice").
		Return(&models.User{Username: "alice", PasswordHash: mustHash(t, "pw")}, nil)
	_, _, err = svc.Authorize(ctx, AuthorizeRequest{ClientID: "app", Username: "alice", Password: "nope"})
	require.ErrorIs(t, err, ErrAccessDenied)

	// Пустой пароль — без обращения к хранилищу пользователей.
	_, _, err = svc.Authorize(ctx, AuthorizeRequest{ClientID: "app", Username: "alice"})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestAuthorize_UnknownClient(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ClientByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	got, _, err := svc.Authorize(context.Background(), AuthorizeRequest{ClientID: "ghost", Username: "alice", Password: "pw"})
	require.ErrorIs(t, err, ErrInvalidClient)
	require.Nil(t, got)
}

func TestAuthorize_CollisionRetried(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	sequenceTokens(svc, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	st.EXPECT().ClientByID(gomock.Any(), "app").Return(testClient(t), nil)
	st.EXPECT().UserByUsername(gomock.Any(), "alice").
		Return(&models.User{Username: "alice", PasswordHash: mustHash(t, "pw")}, nil)
	gomock.InOrder(
		st.EXPECT().SaveAuthorizationCode(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists),
		st.EXPECT().SaveAuthorizationCode(gomock.Any(), gomock.Any()).Return(nil),
	)

	_, code, err := svc.Authorize(context.Background(), AuthorizeRequest{ClientID: "app", Username: "alice", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", code)
}

func TestAuthorize_CollisionExhausted(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ClientByID(gomock.Any(), "app").Return(testClient(t), nil)
	st.EXPECT().UserByUsername(gomock.Any(), "alice").
		Return(&models.User{Username: "alice", PasswordHash: mustHash(t, "pw")}, nil)
	st.EXPECT().SaveAuthorizationCode(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists).Times(maxAttempts)

	_, _, err := svc.Authorize(context.Background(), AuthorizeRequest{ClientID: "app", Username: "alice", Password: "pw"})
	require.ErrorIs(t, err, ErrTokenCollision)
}

func TestToken_EmptyGrantType_BeforeClientAuth(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Хранилище не вызывается: порядок проверок начинается с grant_type.
	_, err := svc.Token(context.Background(), TokenRequest{ClientID: "app", ClientSecret: "bad"})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestToken_ClientAuthentication(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	st.EXPECT().ClientByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
	_, err := svc.Token(ctx, TokenRequest{GrantType: GrantTypeAuthorizationCode, ClientID: "ghost", ClientSecret: "x", Code: "c"})
	require.ErrorIs(t, err, ErrInvalidClient)

	st.EXPECT().ClientByID(gomock.Any(), "app").Return(testClient(t), nil)
	_, err = svc.Token(ctx, TokenRequest{GrantType: GrantTypeRefreshToken, ClientID: "app", ClientSecret: "wrong", RefreshToken: "r"})
	require.ErrorIs(t, err, ErrInvalidClient)
}

func TestToken_UnsupportedGrantType_AfterClientAuth(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ClientByID(gomock.Any(), "app").Return(testClient(t), nil)

	_, err := svc.Token(context.Background(), TokenRequest{GrantType: "password", ClientID: "app", ClientSecret: "s3cret"})
	require.ErrorIs(t, err, ErrUnsupportedGrantType)
}

func TestToken_MissingGrantParameter(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	st.EXPECT().ClientByID(gomock.Any(), "app").Return(testClient(t), nil).Times(2)

	_, err := svc.Token(ctx, TokenRequest{GrantType: GrantTypeAuthorizationCode, ClientID: "app", ClientSecret: "s3cret"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.Token(ctx, TokenRequest{GrantType: GrantTypeRefreshToken, ClientID: "app", ClientSecret: "s3cret"})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestToken_AuthorizationCode_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	sequenceTokens(svc, "access-0000000000000000000000000", "refresh-000000000000000000000000")

	st.EXPECT().ClientByID(gomock.Any(), "app").Return(testClient(t), nil)
	st.EXPECT().ExchangeAuthorizationCode(gomock.Any(), hashToken("the-code"), fixedNow, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ time.Time, next *models.TokenRecord) error {
			require.Equal(t, hashToken("access-0000000000000000000000000"), next.AccessTokenHash)
			require.Equal(t, hashToken("refresh-000000000000000000000000"), next.RefreshTokenHash)
			require.Equal(t, fixedNow.Add(time.Hour), next.AccessExpiresAt)
			next.Username = "alice"
			return nil
		})

	pair, err := svc.Token(context.Background(), TokenRequest{
		GrantType: GrantTypeAuthorizationCode, ClientID: "app", ClientSecret: "s3cret", Code: "the-code",
	})
	require.NoError(t, err)
	require.Equal(t, "access-0000000000000000000000000", pair.AccessToken)
	require.Equal(t, "refresh-000000000000000000000000", pair.RefreshToken)
	require.Equal(t, "alice", pair.Username)
	require.Equal(t, fixedNow.Add(time.Hour), pair.AccessExpiresAt)
	require.Equal(t, time.Hour, pair.ExpiresIn)
}

func TestToken_AuthorizationCode_InvalidGrant(t *testing.T) {
	t.Parallel()

	for _, storeErr := range []error{storage.ErrNotFound, storage.ErrExpired} {
		svc, st, ctrl := newSvc(t)

		st.EXPECT().ClientByID(gomock.Any(), "app").Return(testClient(t), nil)
		st.EXPECT().ExchangeAuthorizationCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(storeErr)

		_, err := svc.Token(context.Background(), TokenRequest{
			GrantType: GrantTypeAuthorizationCode, ClientID: "app", ClientSecret: "s3cret", Code: "used",
		})
		require.ErrorIs(t, err, ErrInvalidGrant)
		ctrl.Finish()
	}
}

func TestToken_AuthorizationCode_CollisionRetried(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ClientByID(gomock.Any(), "app").Return(testClient(t), nil)
	gomock.InOrder(
		st.EXPECT().ExchangeAuthorizationCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists),
		st.EXPECT().ExchangeAuthorizationCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ time.Time, next *models.TokenRecord) error {
				next.Username = "alice"
				return nil
			}),
	)

	pair, err := svc.Token(context.Background(), TokenRequest{
		GrantType: GrantTypeAuthorizationCode, ClientID: "app", ClientSecret: "s3cret", Code: "c",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", pair.Username)
}

func TestToken_StorageError_NotAnOAuthError(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ClientByID(gomock.Any(), "app").Return(testClient(t), nil)
	st.EXPECT().ExchangeAuthorizationCode(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := svc.Token(context.Background(), TokenRequest{
		GrantType: GrantTypeAuthorizationCode, ClientID: "app", ClientSecret: "s3cret", Code: "c",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidGrant)
	require.NotErrorIs(t, err, ErrInvalidClient)
}

func TestToken_Refresh_OK_EvictsOldAccess(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ac := mocks.NewMockAccessCache(ctrl)
	svc.SetAccessCache(ac)

	st.EXPECT().ClientByID(gomock.Any(), "app").Return(testClient(t), nil)
	st.EXPECT().RotateTokenPair(gomock.Any(), hashToken("old-refresh"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, next *models.TokenRecord) (string, error) {
			next.Username = "alice"
			return "old-access-hash", nil
		})
	ac.EXPECT().Delete(gomock.Any(), "old-access-hash").Return(nil)

	pair, err := svc.Token(context.Background(), TokenRequest{
		GrantType: GrantTypeRefreshToken, ClientID: "app", ClientSecret: "s3cret", RefreshToken: "old-refresh",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", pair.Username)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestToken_Refresh_AlreadyRotated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ClientByID(gomock.Any(), "app").Return(testClient(t), nil)
	st.EXPECT().RotateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return("", storage.ErrNotFound)

	_, err := svc.Token(context.Background(), TokenRequest{
		GrantType: GrantTypeRefreshToken, ClientID: "app", ClientSecret: "s3cret", RefreshToken: "stale",
	})
	require.ErrorIs(t, err, ErrInvalidGrant)
}
