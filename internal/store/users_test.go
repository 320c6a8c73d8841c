package store_test

import (
	"context"
	"testing"

	"github.com/ariefcatur/go-store-api.git/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

func TestCreateUserValidation(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, store.UserInput{Name: "Ana"})
	assert.ErrorIs(t, err, store.ErrInvalidArgument)
	_, err = s.CreateUser(ctx, store.UserInput{Email: "ana@x.com"})
	assert.ErrorIs(t, err, store.ErrInvalidArgument)
}

func TestEmailUniqueness(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	seedUser(t, s, "Ana", "ana@x.com")
	seedUser(t, s, "Bob", "bob@x.com")

	// duplicate on create
	_, err := s.CreateUser(ctx, store.UserInput{Name: "Ana2", Email: "ana@x.com"})
	require.ErrorIs(t, err, store.ErrConflict)
	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2, "failed create must not grow the collection")

	// duplicate on update (another user's email)
	_, err = s.UpdateUser(ctx, 2, store.UserPatch{Email: strptr("ana@x.com")})
	assert.ErrorIs(t, err, store.ErrConflict)

	// same user keeping their own email is fine
	_, err = s.UpdateUser(ctx, 1, store.UserPatch{Email: strptr("ana@x.com"), Name: strptr("Ana Maria")})
	assert.NoError(t, err)
}

func TestUpdateUserPartialPatch(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, store.UserInput{
		Name: "Ana", Email: "ana@x.com", Age: intptr(30), City: strptr("Lisboa"),
	})
	require.NoError(t, err)

	// only supplied fields change
	got, err := s.UpdateUser(ctx, u.ID, store.UserPatch{Name: strptr("Ana Maria")})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "ana@x.com", got.Email)
	require.NotNil(t, got.Age)
	assert.Equal(t, 30, *got.Age)
	require.NotNil(t, got.City)
	assert.Equal(t, "Lisboa", *got.City)
	assert.Equal(t, u.CreatedAt, got.CreatedAt)

	_, err = s.UpdateUser(ctx, 99, store.UserPatch{Name: strptr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteUserReturnsRemoved(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	u := seedUser(t, s, "Ana", "ana@x.com")
	removed, err := s.DeleteUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, removed.ID)
	assert.Equal(t, "ana@x.com", removed.Email)

	_, err = s.GetUser(ctx, u.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.DeleteUser(ctx, u.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
