package config

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// ConfigOption is one configuration key with its default and meaning.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "http_addr", Default: ":8080", Comment: "HTTP listen address for `landing serve`"},

		{Key: "log.level", Default: "info", Comment: "Log level: debug, info, warn, error"},
		{Key: "log.format", Default: "console", Comment: "Log encoding: console or json"},

		{Key: "site.pretty", Default: true, Comment: "Indent the generated HTML"},
		{Key: "site.compress", Default: true, Comment: "Precompress the page with brotli"},
		{Key: "site.tailwind_cdn", Default: "https://cdn.tailwindcss.com", Comment: "Tailwind script URL; empty disables it"},
		{Key: "site.wasm", Default: false, Comment: "Load the wasm client to make the mobile menu interactive"},
		{Key: "site.assets_dir", Default: "", Comment: "Directory holding app.wasm and wasm_exec.js, served under /assets/"},

		{Key: "build.out_dir", Default: "dist", Comment: "Output directory for `landing build`"},
	}
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("landing")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "landing"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "landing"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing file is fine unless the user named one.
		if explicit || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	// Environment variables: LANDING_* (highest among these sources)
	v.SetEnvPrefix("landing")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return nil
}

// CheckConfigValidity reports every invalid value at once.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error

	if addr := strings.TrimSpace(v.GetString("http_addr")); addr == "" {
		errs = append(errs, errors.New("http_addr is required"))
	} else if _, _, err := net.SplitHostPort(addr); err != nil {
		errs = append(errs, fmt.Errorf("http_addr %q is not host:port", addr))
	}

	if _, err := zapcore.ParseLevel(v.GetString("log.level")); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q is not a valid level", v.GetString("log.level")))
	}
	switch v.GetString("log.format") {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", v.GetString("log.format")))
	}

	if v.GetBool("site.wasm") && strings.TrimSpace(v.GetString("site.assets_dir")) == "" {
		errs = append(errs, errors.New("site.assets_dir is required when site.wasm is enabled"))
	}

	if strings.TrimSpace(v.GetString("build.out_dir")) == "" {
		errs = append(errs, errors.New("build.out_dir is required"))
	}

	return errors.Join(errs...)
}

// DefaultConfigPath resolves the standard landing.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "landing", "landing.toml")
}
