package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv(TokenEnv, "")
	path := filepath.Join(t.TempDir(), "nope", "config.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://readwise.io/api/v3", cfg.BaseURL)
	assert.Equal(t, "new", cfg.Location)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "auto", cfg.Reader.Style)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, path, cfg.File())
}

func TestLoadFrom_LayersFileOverDefaults(t *testing.T) {
	t.Setenv(TokenEnv, "")
	path := writeFile(t, `
token = " abc "
location = "later"
page_size = 50

[reader]
style = "dark"
show_title = true

[log]
file = "/tmp/wr.log"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.Token)
	assert.Equal(t, "later", cfg.Location)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, 5, cfg.MaxPages)
	assert.Equal(t, "dark", cfg.Reader.Style)
	assert.True(t, cfg.Reader.ShowTitle)
	assert.Equal(t, "/tmp/wr.log", cfg.Log.File)

	opts := cfg.ClientOptions("ua")
	assert.Equal(t, "abc", opts.Token)
	assert.Equal(t, 50, opts.PageSize)
	assert.Equal(t, "ua", opts.UserAgent)
}

func TestLoadFrom_EnvTokenWins(t *testing.T) {
	t.Setenv(TokenEnv, "from-env")
	cfg, err := LoadFrom(writeFile(t, `token = "from-file"`))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Token)
}

func TestLoadFrom_ParseError(t *testing.T) {
	t.Setenv(TokenEnv, "")
	path := writeFile(t, "token = \"a\"\nlocation = \n")

	_, err := LoadFrom(path)
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, path, pe.Path)
	assert.Positive(t, pe.Line)
}

func TestLoadFrom_Validation(t *testing.T) {
	t.Setenv(TokenEnv, "")
	for _, body := range []string{
		`location = "trash"`,
		`page_size = -1`,
		`page_size = 5000`,
		`timeout_seconds = -3`,
	} {
		_, err := LoadFrom(writeFile(t, body))
		assert.ErrorIs(t, err, ErrValidationFailed, body)
	}
}

func TestSaveToken_RoundTrip(t *testing.T) {
	t.Setenv(TokenEnv, "")
	path := filepath.Join(t.TempDir(), "wisereader", "config.toml")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	cfg.Location = "archive"
	require.NoError(t, cfg.SaveToken("  secret "))
	assert.Equal(t, "secret", cfg.Token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	again, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", again.Token)
	assert.Equal(t, "archive", again.Location)

	assert.ErrorIs(t, cfg.SaveToken(" "), ErrValidationFailed)
}

func TestSave_KeepsEnvTokenOutOfFile(t *testing.T) {
	t.Setenv(TokenEnv, "")
	path := writeFile(t, `token = "file-token"`)

	t.Setenv(TokenEnv, "env-token")
	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	cfg.PageSize = 20
	require.NoError(t, cfg.Save())

	t.Setenv(TokenEnv, "")
	again, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "file-token", again.Token)
	assert.Equal(t, 20, again.PageSize)
}
