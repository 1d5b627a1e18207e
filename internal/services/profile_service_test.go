package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/store"
)

func TestGetUserProfileNilWhenMissing(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{}, store.New(store.Seed{}))

	u, err := svc.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestGetUserProfileFallsBack(t *testing.T) {
	local := store.New(store.Seed{})
	require.NoError(t, local.UpsertProfile(ctx, &models.User{ID: "u1", Name: "Laurent"}))
	svc := NewProfileService(&fakeProfileRepo{err: errUnreachable("profiles")}, local)

	u, err := svc.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "Laurent", u.Name)
}

func TestGetUserProfileNilOnUnclassifiedError(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{err: errors.New("boom")}, store.New(store.Seed{}))

	u, err := svc.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestCreateUserProfileWritesBothStores(t *testing.T) {
	remote := &fakeProfileRepo{}
	local := store.New(store.Seed{})
	svc := NewProfileService(remote, local)

	require.NoError(t, svc.CreateUserProfile(ctx, &models.User{ID: "u1", Email: "a@b.c"}))

	require.NotNil(t, remote.profiles["u1"])
	u, err := local.GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, u)
}

func TestCreateUserProfilePropagatesRemoteFailure(t *testing.T) {
	svc := NewProfileService(&fakeProfileRepo{err: errUnreachable("profiles")}, store.New(store.Seed{}))
	err := svc.CreateUserProfile(ctx, &models.User{ID: "u1"})
	require.Error(t, err)
}
