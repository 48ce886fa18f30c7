package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BACKEND", "")

	c, err := Get(filepath.Join(t.TempDir(), "nao-existe.json"))
	require.NoError(t, err)

	assert.Equal(t, "3000", c.ApiPort)
	assert.Equal(t, BACKEND_RELACIONAL, c.Backend)
	assert.Equal(t, "sqlite3", c.Database)
	assert.Equal(t, SESSION_STORE_MEMORY, c.Session.Store)
	assert.Equal(t, "oficios_sessao", c.Session.Cookie)
	assert.Equal(t, 86400, c.Session.MaxAge)
	assert.False(t, c.AutoLogin)
}

func TestGetReadsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"api_port":"8081","backend":"documento","mongo_database":"teste","auto_login":true,"session":{"store":"redis","max_age":60}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("PORT", "9090")
	t.Setenv("BACKEND", "")
	t.Setenv("REDIS_ADDR", "redis:6379")

	c, err := Get(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", c.ApiPort)
	assert.Equal(t, BACKEND_DOCUMENTO, c.Backend)
	assert.Equal(t, "teste", c.MongoDatabase)
	assert.True(t, c.AutoLogin)
	assert.Equal(t, SESSION_STORE_REDIS, c.Session.Store)
	assert.Equal(t, "redis:6379", c.Session.RedisAddr)
	assert.Equal(t, 60, c.Session.MaxAge)
}

func TestGetRejectsInvalidValues(t *testing.T) {
	t.Setenv("BACKEND", "")
	dir := t.TempDir()

	cases := map[string]string{
		"backend":  `{"backend":"planilha"}`,
		"session":  `{"session":{"store":"arquivo"}}`,
		"database": `{"database":"mysql"}`,
		"json":     `{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
			_, err := Get(path)
			assert.Error(t, err)
		})
	}
}
