package cookies

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJarSaveAndReadToken(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "cookies")
	jar := NewJar(path)

	require.NoError(t, jar.Save(context.Background(), "Cookie: csrftoken=abc123; sessionid=xyz"))

	token, err := jar.Token(context.Background(), "csrftoken")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	header, err := jar.CookieHeader(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "csrftoken=abc123; sessionid=xyz", header)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(jarFileMode), info.Mode().Perm())
}

func TestJarMissingCookieIsEmpty(t *testing.T) {
	t.Parallel()

	jar := NewJar(filepath.Join(t.TempDir(), "cookies"))

	token, err := jar.Token(context.Background(), "csrftoken")
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, jar.Save(context.Background(), "sessionid=xyz"))
	token, err = jar.Token(context.Background(), "csrftoken")
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestJarRejectsInvalidHeaders(t *testing.T) {
	t.Parallel()

	jar := NewJar(filepath.Join(t.TempDir(), "cookies"))
	testCases := []struct {
		name    string
		header  string
		wantErr string
	}{
		{name: "empty", header: "   ", wantErr: "cookie header is empty"},
		{name: "prefix only", header: "Cookie:", wantErr: "cookie header is empty"},
		{name: "no pair", header: "justtext", wantErr: "parse cookie header"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := jar.Save(context.Background(), tc.header)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestJarClearIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cookies")
	jar := NewJar(path)

	require.NoError(t, jar.Clear(context.Background()))
	require.NoError(t, jar.Save(context.Background(), "csrftoken=abc"))
	require.NoError(t, jar.Clear(context.Background()))

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestJarCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jar := NewJar(filepath.Join(t.TempDir(), "cookies"))
	assert.ErrorIs(t, jar.Save(ctx, "a=b"), context.Canceled)
	_, err := jar.Token(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, jar.Clear(ctx), context.Canceled)
}

func TestJarTokenIsPercentDecoded(t *testing.T) {
	t.Parallel()

	jar := NewJar(filepath.Join(t.TempDir(), "cookies"))
	require.NoError(t, jar.Save(context.Background(), "csrftoken=a%2Fb%3D"))

	token, err := jar.Token(context.Background(), "csrftoken")
	require.NoError(t, err)
	assert.Equal(t, "a/b=", token)
}
