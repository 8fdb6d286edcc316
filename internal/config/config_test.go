package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"database_url": "postgres://localhost/study",
		"gemini_api_key": "test-key",
		"catalog_path": "catalog.json"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/study", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "catalog.json", cfg.CatalogPath)
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{not json`), 0644)
	require.NoError(t, err)

	_, err = Load(tmpFile)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestMergeEnv_FileWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "7070")

	cfg := &Config{DatabaseURL: "postgres://file/db"}
	cfg.MergeEnv()

	assert.Equal(t, "postgres://file/db", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.GeminiAPIKey)
	assert.Equal(t, 7070, cfg.Port)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("UPLOAD_DIR", "/tmp/uploads")

	cfg := FromEnv()
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "env-key", cfg.GeminiAPIKey)
	assert.Equal(t, "/tmp/uploads", cfg.UploadDir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Port: 8080, DatabaseURL: "postgres://x", GeminiAPIKey: "k"}, false},
		{"missing database", Config{Port: 8080, GeminiAPIKey: "k"}, true},
		{"missing api key", Config{Port: 8080, DatabaseURL: "postgres://x"}, true},
		{"port out of range", Config{Port: 70000, DatabaseURL: "postgres://x", GeminiAPIKey: "k"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
