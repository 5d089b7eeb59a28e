package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

var k = koanf.New(".")

var validate = validator.New()

// Config is the resolved CLI configuration.
type Config struct {
	// Key signs preview tokens. Previews from one run are only valid while
	// the key stays the same.
	Key string `validate:"required,min=16"`

	Serve ServeConfig
	Lint  LintConfig
	Log   LogConfig
}

type ServeConfig struct {
	Addr      string `validate:"required,hostname_port"`
	Prefix    string `validate:"required,startswith=/"`
	Sensitive bool
}

type LintConfig struct {
	Stylesheets []string `validate:"dive,required"`
}

type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn error"`
	Format string `validate:"oneof=console json"`
}

// defaultKey is only good for local previews.
const defaultKey = "hxui-development-preview-key"

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".hxui.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("HXUI_", ".", func(s string) string {
		// HXUI_SERVE_ADDR -> serve.addr
		// HXUI_LOG_LEVEL -> log.level
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "HXUI_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs and validates Config from koanf state.
func buildConfig() (Config, error) {
	config := Config{
		Key: getStringWithFallback("key", "key", defaultKey),
		Serve: ServeConfig{
			Addr:      getStringWithFallback("addr", "serve.addr", "127.0.0.1:7331"),
			Prefix:    getStringWithFallback("prefix", "serve.prefix", "/_ui"),
			Sensitive: getBoolWithFallback("sensitive", "serve.sensitive", false),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getStringWithFallback("log-level", "log.level", "info")),
			Format: getStringWithFallback("log-format", "log.format", "console"),
		},
	}

	if sheets := k.Strings("stylesheet"); len(sheets) > 0 {
		config.Lint.Stylesheets = sheets
	} else if sheets := k.Strings("lint.stylesheets"); len(sheets) > 0 {
		config.Lint.Stylesheets = sheets
	}

	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
