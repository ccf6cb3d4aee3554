package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, c)
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	store := NewFileStore(path)

	c := &Config{ConsumerKey: "ck", AccessToken: "tok"}
	require.NoError(t, store.Save(c))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, c, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `consumer_key = "ck"`)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestGetSetClear(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Set(KeyConsumerKey, "abc"))
	v, err := c.Get(KeyConsumerKey)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	require.NoError(t, c.Set(KeyConsumerKey, ""))
	assert.Empty(t, c.ConsumerKey)

	_, err = c.Get("username")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.ErrorIs(t, c.Set("username", "x"), ErrUnknownKey)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("consumer_key = \n"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	p, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.toml", filepath.Base(p))
	assert.Equal(t, "pocket-cli", filepath.Base(filepath.Dir(p)))
}
