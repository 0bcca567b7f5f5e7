package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/personnel-oauth/internal/models"
	"github.com/pribylovaa/personnel-oauth/internal/storage"
)

func TestRegisterUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	var saved *models.User
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		})

	u, err := svc.RegisterUser(context.Background(), Registration{
		Username:  " alice ",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Phone:     "+100",
		Password:  "Secret1!",
	})
	require.NoError(t, err)
	require.Equal(t, saved, u)
	require.Equal(t, "alice", u.Username)
	require.NotEqual(t, "Secret1!", u.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Secret1!")))
}

func TestRegisterUser_InvalidInput(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cases := []Registration{
		{Username: "", Password: "pw"},
		{Username: "alice", Password: ""},
		{Username: "alice", Password: strings.Repeat("x", 73)},
		{Username: "alice", Password: "pw", Email: "not-an-email"},
	}

	for _, r := range cases {
		_, err := svc.RegisterUser(ctx, r)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), Registration{Username: "alice", Password: "pw"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestProfile(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	st.EXPECT().UserByUsername(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
	_, err := svc.Profile(ctx, "ghost")
	require.ErrorIs(t, err, ErrNotFound)

	st.EXPECT().UserByUsername(gomock.Any(), "alice").Return(&models.User{Username: "alice"}, nil)
	u, err := svc.Profile(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
}

func TestRegisterClient(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	_, err := svc.RegisterClient(ctx, "app", "s3cret", "/relative")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.RegisterClient(ctx, "", "s3cret", "https://app.example.com/cb")
	require.ErrorIs(t, err, ErrInvalidArgument)

	st.EXPECT().SaveClient(gomock.Any(), gomock.Any()).Return(nil)
	c, err := svc.RegisterClient(ctx, "app", "s3cret", "https://app.example.com/cb")
	require.NoError(t, err)
	require.True(t, checkPassword(c.ClientSecretHash, "s3cret"))

	st.EXPECT().SaveClient(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
	_, err = svc.RegisterClient(ctx, "app", "s3cret", "https://app.example.com/cb")
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestDeleteClientAndList(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	st.EXPECT().DeleteClient(gomock.Any(), "ghost").Return(storage.ErrNotFound)
	require.ErrorIs(t, svc.DeleteClient(ctx, "ghost"), ErrNotFound)

	st.EXPECT().Clients(gomock.Any()).Return(nil, errors.New("db down"))
	_, err := svc.Clients(ctx)
	require.Error(t, err)

	st.EXPECT().Clients(gomock.Any()).Return([]models.Client{{ClientID: "a"}, {ClientID: "b"}}, nil)
	list, err := svc.Clients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
