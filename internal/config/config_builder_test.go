package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/logbook"
	return cfg
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "env-key"}, Storage: Storage{DB: DB{DSN: "postgres://env"}}},
		&StructuredConfig{App: App{TokenSignKey: "flag-key"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	// zero values do not clobber defaults
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "0 3 1 * *", cfg.Workers.ReportSchedule)
}

func TestBuild_WithJSONFromEarlierSource(t *testing.T) {
	path := writeJSONFile(t, `{"app": {"token_sign_key": "json-key"}, "storage": {"db": {"dsn": "postgres://json"}}}`)

	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://json", cfg.Storage.DB.DSN)
}

func TestBuild_WithFlagsError(t *testing.T) {
	_, err := newConfigBuilder().withDefaults().withFlags([]string{"-nope"}).build()
	assert.ErrorIs(t, err, ErrInvalidFlags)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown identity", mutate: func(c *StructuredConfig) { c.App.IdentityProvider = "ldap" }, wantErr: ErrInvalidAppConfigs},
		{name: "firebase identity without project", mutate: func(c *StructuredConfig) { c.App.IdentityProvider = IdentityFirebase }, wantErr: ErrInvalidAppConfigs},
		{name: "postgres without dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "firestore without project", mutate: func(c *StructuredConfig) { c.Storage.Backend = BackendFirestore }, wantErr: ErrInvalidStorageConfigs},
		{
			name: "firestore with project",
			mutate: func(c *StructuredConfig) {
				c.Storage.Backend = BackendFirestore
				c.Firebase.ProjectID = "fleet"
			},
		},
		{name: "unknown backend", mutate: func(c *StructuredConfig) { c.Storage.Backend = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	assert.NoError(t, (&ClientConfig{BaseURL: "http://x", RequestTimeout: time.Second}).validate())
	assert.ErrorIs(t, (&ClientConfig{RequestTimeout: time.Second}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&ClientConfig{BaseURL: "http://x"}).validate(), ErrInvalidAdapterConfigs)
}
