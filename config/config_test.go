package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_KeyFileShape(t *testing.T) {
	file := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"cryptoAPI":"abc","trongrid":"def","production":true}`), 0o600))

	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v, file)
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.CryptoAPIKey)
	assert.Equal(t, "def", cfg.TronGridKey)
	assert.True(t, cfg.Production)
	assert.Equal(t, ":3000", cfg.Listen)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GATEWAY_CRYPTOAPI", "from-env")
	t.Setenv("GATEWAY_TIMEOUT", "5s")

	v := viper.New()
	SetDefaults(v)
	cfg, err := Load(v, "")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.CryptoAPIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.False(t, cfg.Production)
}

func TestLoad_MissingKey(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	_, err := Load(v, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cryptoapi")
}

func TestLoad_MissingFile(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	_, err := Load(v, filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
