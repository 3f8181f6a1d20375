package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. GATEWAY_CRYPTOAPI
const EnvPrefix = "GATEWAY"

// Config keys
const (
	KeyProduction = "production"
	KeyCryptoAPI  = "cryptoapi"
	KeyTronGrid   = "trongrid"
	KeyListen     = "listen"
	KeyTimeout    = "timeout"
	KeyXRPServer  = "xrp_server"
	KeyLogLevel   = "log_level"
	KeyLogPretty  = "log_pretty"
)

// Config holds everything the gateway reads once at startup
type Config struct {
	// Production selects mainnet tables and endpoints
	Production bool `mapstructure:"production"`

	// Provider credentials
	CryptoAPIKey string `mapstructure:"cryptoapi"`
	TronGridKey  string `mapstructure:"trongrid"`

	Listen string `mapstructure:"listen"`

	// Timeout is the deadline applied to every provider call
	Timeout time.Duration `mapstructure:"timeout"`

	// XRPServer overrides the rippled endpoint picked from Production
	XRPServer string `mapstructure:"xrp_server"`

	LogLevel  string `mapstructure:"log_level"`
	LogPretty bool   `mapstructure:"log_pretty"`
}

// Default returns a Config populated with default values
func Default() Config {
	return Config{
		Production: false,
		Listen:     ":3000",
		Timeout:    30 * time.Second,
		LogLevel:   "info",
	}
}

// SetDefaults registers the defaults and env binding on v
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyProduction, d.Production)
	v.SetDefault(KeyCryptoAPI, d.CryptoAPIKey)
	v.SetDefault(KeyTronGrid, d.TronGridKey)
	v.SetDefault(KeyListen, d.Listen)
	v.SetDefault(KeyTimeout, d.Timeout)
	v.SetDefault(KeyXRPServer, d.XRPServer)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogPretty, d.LogPretty)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads an optional config file (the key.json shape works as-is) and
// resolves the final Config from v.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the gateway cannot start with
func (c Config) Validate() error {
	if c.CryptoAPIKey == "" {
		return fmt.Errorf("missing %s key (set %s_CRYPTOAPI or cryptoAPI in the config file)", KeyCryptoAPI, EnvPrefix)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Listen == "" {
		return fmt.Errorf("listen address is empty")
	}
	return nil
}
