package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeJSONFile(t, `{
		"app": {"token_sign_key": "k", "token_duration": "12h", "identity_provider": "firebase"},
		"firebase": {"project_id": "fleet"},
		"storage": {"backend": "firestore", "sessions": {"redis_address": "redis:6379", "redis_db": 1}},
		"server": {"http_address": ":9090", "request_timeout": "15s"},
		"adapter": {"base_url": "http://api", "request_timeout": 1000000000},
		"workers": {"report_dir": "/reports"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, IdentityFirebase, cfg.App.IdentityProvider)
	assert.Equal(t, "fleet", cfg.Firebase.ProjectID)
	assert.Equal(t, BackendFirestore, cfg.Storage.Backend)
	assert.Equal(t, "redis:6379", cfg.Storage.Sessions.RedisAddress)
	assert.Equal(t, 1, cfg.Storage.Sessions.RedisDB)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://api", cfg.Adapter.BaseURL)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/reports", cfg.Workers.ReportDir)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = parseJSON(writeJSONFile(t, `{"server": {"request_timeout": "soon"}}`))
	assert.Error(t, err)

	_, err = parseJSON(writeJSONFile(t, `not json`))
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
