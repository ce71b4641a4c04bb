package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitcart/splitcart/internal/storage"
)

func TestCreateList_AssignsJoinCode(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")

	list, err := f.lists.Create(f.ctx, "Groceries", alice.ID)
	require.NoError(t, err)

	assert.Len(t, list.Code, joinCodeLength)
	for _, c := range list.Code {
		assert.Contains(t, joinCodeAlphabet, string(c))
	}
	assert.Equal(t, alice.ID, list.CreatedBy)
	assert.NotZero(t, list.CreatedAt)
}

func TestCreateList_CodesDiffer(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		list, err := f.lists.Create(f.ctx, "List", alice.ID)
		require.NoError(t, err)
		assert.False(t, seen[list.Code], "join code %s repeated", list.Code)
		seen[list.Code] = true
	}
}

func TestJoinByCode(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	list, err := f.lists.Create(f.ctx, "Groceries", alice.ID)
	require.NoError(t, err)

	joined, err := f.lists.JoinByCode(f.ctx, list.Code, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, list.ID, joined.ID)

	// Joining twice must not duplicate membership.
	_, err = f.lists.JoinByCode(f.ctx, list.Code, bob.ID)
	require.NoError(t, err)

	members, err := f.store.ListMembers(f.ctx, list.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)

	lists, err := f.lists.ListsForUser(f.ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, list.ID, lists[0].ID)
}

func TestJoinByCode_UnknownCode(t *testing.T) {
	f := newFixture(t)
	bob := f.user(t, "bob")

	_, err := f.lists.JoinByCode(f.ctx, "zZzZzZ", bob.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestJoinByCode_IsCaseSensitive(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	list, err := f.lists.Create(f.ctx, "Groceries", alice.ID)
	require.NoError(t, err)

	flipped := flipCase(list.Code)
	if flipped == list.Code {
		t.Skip("generated code has no letters to flip")
	}

	_, err = f.lists.JoinByCode(f.ctx, flipped, bob.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func flipCase(s string) string {
	out := []rune(s)
	for i, r := range out {
		switch {
		case r >= 'a' && r <= 'z':
			out[i] = r - 'a' + 'A'
		case r >= 'A' && r <= 'Z':
			out[i] = r - 'A' + 'a'
		}
	}
	return string(out)
}
