package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns a config that passes validation once defaults apply.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{TokenSignKey: "secret"},
		OAuth: OAuth{
			GoogleClientID:     "client-id",
			GoogleClientSecret: "client-secret",
			GoogleRedirectURL:  "http://localhost:8080/api/auth/google/callback",
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/notes"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation
// because no token sign key is present.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies that unset fields receive defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, "secret", cfg.App.StateSignKey)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultOAuthRequestTimeout, cfg.OAuth.RequestTimeout)
	assert.Equal(t, []string{DefaultCORSOrigin}, cfg.Server.CORSOrigins)
	assert.InDelta(t, DefaultRateLimitRPS, cfg.RateLimit.RPS, 0.0001)
	assert.Equal(t, DefaultRateLimitBurst, cfg.RateLimit.Burst)
	assert.Equal(t, DefaultRateLimitCleanupTick, cfg.RateLimit.CleanupInterval)
}

// TestBuild_LaterSourceOverrides verifies that non-zero fields of a later
// config win over earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, validConfig(), &StructuredConfig{
		App:    App{TokenIssuer: "override", TokenDuration: time.Minute},
		Server: Server{HTTPAddress: "127.0.0.1:9000"},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "override", cfg.App.TokenIssuer)
	assert.Equal(t, time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/notes", cfg.Storage.DB.DSN)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Second },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing client id",
			mutate:  func(cfg *StructuredConfig) { cfg.OAuth.GoogleClientID = "" },
			wantErr: ErrInvalidOAuthConfigs,
		},
		{
			name:    "missing redirect url",
			mutate:  func(cfg *StructuredConfig) { cfg.OAuth.GoogleRedirectURL = "" },
			wantErr: ErrInvalidOAuthConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative burst",
			mutate:  func(cfg *StructuredConfig) { cfg.RateLimit.Burst = -1 },
			wantErr: ErrInvalidRateLimitConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.applyDefaults()
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

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_SIGN_KEY": "env-secret"})

	b := newConfigBuilder(nil).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.TokenSignKey)
}

func TestWithEnv_RecordsError(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	b := newConfigBuilder(nil).withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_UsesBuilderArgs(t *testing.T) {
	b := newConfigBuilder([]string{"-d", "sqlite://notes.db"}).withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "sqlite://notes.db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_RecordsError(t *testing.T) {
	b := newConfigBuilder([]string{"-bogus"}).withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that withJSON is a no-op when no source
// carries a JSON file path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "2.0.0"
	payload.Storage.DB.DSN = "postgres://json/notes"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "2.0.0", b.configs[1].App.Version)
	assert.Equal(t, "postgres://json/notes", b.configs[1].Storage.DB.DSN)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "missing.json")})

	b.withJSON()

	assert.Error(t, b.err)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestBuilder_FullChain verifies that every source contributes and that
// flags override env and JSON overrides flags.
func TestBuilder_FullChain(t *testing.T) {
	t.Chdir(t.TempDir())

	payload := StructuredJSONConfig{}
	payload.Server.HTTPAddress = "0.0.0.0:9999"
	jsonPath := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":         "env-secret",
		"OAUTH_GOOGLE_CLIENT_ID":     "client-id",
		"OAUTH_GOOGLE_CLIENT_SECRET": "client-secret",
		"OAUTH_GOOGLE_REDIRECT_URL":  "http://localhost/api/auth/google/callback",
		"STORAGE_DB_DATABASE_URI":    "postgres://env/notes",
		"SERVER_ADDRESS":             "127.0.0.1:8080",
	})

	cfg, err := newConfigBuilder([]string{"-d", "postgres://flag/notes", "-c", jsonPath}).
		withDotEnv("").
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://flag/notes", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
}
