package config

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

const testSecret = "0123456789abcdef0123456789abcdef"

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

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Secret: testSecret},
		Storage: Storage{Dir: "/var/journal"},
		Server:  Server{HTTPAddress: "localhost:7000"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_DefaultsOnly verifies that defaults fill cipher, version,
// export path and timeout.
func TestBuild_DefaultsOnly(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultCipher, cfg.App.Cipher)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
	assert.Equal(t, DefaultExportPath, cfg.Storage.ExportPath)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

// TestBuild_LaterSourceWins verifies that later non-zero fields override
// earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0", Cipher: "chacha20-poly1305"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "chacha20-poly1305", cfg.App.Cipher)
	assert.Equal(t, testSecret, cfg.App.Secret)
	assert.Equal(t, "/var/journal", cfg.Storage.Dir)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr []error
	}{
		{
			name:   "valid",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing storage dir",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Dir = "" },
			wantErr: []error{ErrInvalidStorageConfigs},
		},
		{
			name:    "short secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Secret = "short" },
			wantErr: []error{ErrInvalidSecretLength, crypto.ErrInvalidKeyLength, crypto.ErrCrypto},
		},
		{
			name:    "long secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Secret = testSecret + "x" },
			wantErr: []error{ErrInvalidSecretLength},
		},
		{
			name: "32 runes but more than 32 bytes",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Secret = strings.Repeat("é", 32) },
			wantErr: []error{ErrInvalidSecretLength},
		},
		{
			name:    "empty secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Secret = "" },
			wantErr: []error{ErrInvalidSecretLength},
		},
		{
			name:    "unknown cipher",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Cipher = "rot13" },
			wantErr: []error{ErrInvalidAppConfigs, crypto.ErrUnsupportedAlgorithm},
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: []error{ErrInvalidServerConfigs},
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: []error{ErrInvalidServerConfigs},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Cipher = DefaultCipher
			tt.mutate(cfg)

			err := cfg.validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestRedacted(t *testing.T) {
	cfg := validConfig()

	redacted := cfg.Redacted()
	assert.NotContains(t, redacted.App.Secret, testSecret)
	assert.Equal(t, testSecret, cfg.App.Secret)
	assert.Equal(t, cfg.Storage, redacted.Storage)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("STORAGE_DIR", "/env/dir")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "/env/dir", b.configs[0].Storage.Dir)
}

// TestWithEnv_NoErrorOnEmptyEnv verifies that withEnv does not set b.err
// when no relevant env vars are present.
func TestWithEnv_NoErrorOnEmptyEnv(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	b.args = nil
	assert.Same(t, b, b.withFlags())
}

func TestWithFlags_ReadsArgs(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-storage", "/flag/dir", "-a", "localhost:9000"}
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/flag/dir", b.configs[0].Storage.Dir)
	assert.Equal(t, "localhost:9000", b.configs[0].Server.HTTPAddress)
}

func TestWithFlags_SetsError_OnBadArgs(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-no-such-flag"}
	b.withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Storage.Dir = "/json/dir"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "/json/dir", b.configs[1].Storage.Dir)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	second := StructuredJSONConfig{}
	second.App.Version = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// TestGetStructuredConfig_FullChain runs the whole chain with env, flags and
// a JSON file and checks precedence end to end.
func TestGetStructuredConfig_FullChain(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.App.Version = "from-json"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("APP_SECRET", testSecret)
	t.Setenv("APP_VERSION", "from-env")
	t.Setenv("STORAGE_DIR", "/env/dir")
	t.Setenv("CONFIG", path)

	b := newConfigBuilder()
	b.args = []string{"-a", "127.0.0.1:7001", "-storage", "/flag/dir"}

	cfg, err := b.withDefaults().withEnv().withFlags().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.App.Version)
	assert.Equal(t, "/flag/dir", cfg.Storage.Dir)
	assert.Equal(t, "127.0.0.1:7001", cfg.Server.HTTPAddress)
	assert.Equal(t, testSecret, cfg.App.Secret)
	assert.Equal(t, DefaultCipher, cfg.App.Cipher)
	assert.Equal(t, path, cfg.JSONFilePath)
}
