package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBolt(t *testing.T) {
	ctx := context.Background()

	b, err := NewBolt(filepath.Join(t.TempDir(), "nested", "newsly.db"))
	require.NoError(t, err)
	defer func() { require.NoError(t, b.Close()) }()

	_, err = b.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Set(ctx, "k", `{"a":1}`))
	v, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, v)

	require.NoError(t, b.Remove(ctx, "k"))
	require.NoError(t, b.Remove(ctx, "k"))
	_, err = b.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set(ctx, "k", "v"))
	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, m.Remove(ctx, "k"))
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()
	f := NewFavorites(kv)

	a := Article{URL: "https://nyt.com/a", Title: "A"}
	b := Article{URL: "https://nyt.com/b", Title: "B"}

	t.Run("empty list for unknown user", func(t *testing.T) {
		list, err := f.List(ctx, "alice")
		require.NoError(t, err)
		assert.Empty(t, list)
		assert.NotNil(t, list)
	})

	t.Run("add is idempotent", func(t *testing.T) {
		require.NoError(t, f.Add(ctx, "alice", a))
		require.NoError(t, f.Add(ctx, "alice", Article{URL: a.URL, Title: "A edited"}))
		require.NoError(t, f.Add(ctx, "alice", b))

		list, err := f.List(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []Article{a, b}, list)

		raw, err := kv.Get(ctx, "favorites_alice")
		require.NoError(t, err)
		assert.Contains(t, raw, `"url":"https://nyt.com/a"`)
	})

	t.Run("users are isolated", func(t *testing.T) {
		list, err := f.List(ctx, "bob")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("remove missing url leaves list unchanged", func(t *testing.T) {
		require.NoError(t, f.Remove(ctx, "alice", "https://nyt.com/missing"))
		require.NoError(t, f.Remove(ctx, "nobody", "https://nyt.com/missing"))

		list, err := f.List(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []Article{a, b}, list)

		_, err = kv.Get(ctx, "favorites_nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, f.Remove(ctx, "alice", a.URL))

		list, err := f.List(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, []Article{b}, list)

		has, err := f.Has(ctx, "alice", a.URL)
		require.NoError(t, err)
		assert.False(t, has)

		has, err = f.Has(ctx, "alice", b.URL)
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("article without url", func(t *testing.T) {
		assert.ErrorIs(t, f.Add(ctx, "alice", Article{Title: "no url"}), ErrNoURL)
	})

	t.Run("corrupted list", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "favorites_eve", "{not json"))
		_, err := f.List(ctx, "eve")
		assert.Error(t, err)
		assert.Error(t, f.Add(ctx, "eve", a))
	})
}

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	acc := NewAccounts(NewMemory())

	_, err := acc.Get(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)

	alice := Account{
		User:         User{ID: "1", Username: "alice", Email: "alice@example.com"},
		PasswordHash: []byte("hash"),
	}
	require.NoError(t, acc.Create(ctx, alice))
	assert.ErrorIs(t, acc.Create(ctx, alice), ErrUserExists)

	got, err := acc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice, got)
}
