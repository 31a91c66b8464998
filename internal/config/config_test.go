package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestCheckConfigValidityValid(t *testing.T) {
	v := viper.New()
	applyDefaults(v)

	if err := CheckConfigValidity(v); err != nil {
		t.Fatalf("expected defaults to be valid, got %v", err)
	}
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("http_addr", "8080")
	v.Set("log.level", "loud")
	v.Set("log.format", "xml")
	v.Set("site.wasm", true)
	v.Set("site.assets_dir", "")
	v.Set("build.out_dir", " ")

	err := CheckConfigValidity(v)
	if err == nil {
		t.Fatalf("expected error for invalid config")
	}

	msg := err.Error()
	expected := []string{
		`http_addr "8080" is not host:port`,
		`log.level "loud" is not a valid level`,
		`log.format must be console or json, got "xml"`,
		"site.assets_dir is required when site.wasm is enabled",
		"build.out_dir is required",
	}
	for _, want := range expected {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected error to contain %q, got %q", want, msg)
		}
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "landing.toml")
	require.NoError(t, os.WriteFile(path, []byte("http_addr = \":9000\"\n\n[site]\npretty = false\n"), 0o644))
	t.Setenv("LANDING_SITE_COMPRESS", "false")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, Load(context.Background(), v))

	require.Equal(t, ":9000", v.GetString("http_addr"))
	require.False(t, v.GetBool("site.pretty"))
	require.False(t, v.GetBool("site.compress"))
	require.Equal(t, "dist", v.GetString("build.out_dir"))
}

func TestLoadWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	v := viper.New()
	require.NoError(t, Load(context.Background(), v))
	require.Equal(t, ":8080", v.GetString("http_addr"))
}

func TestLoadMissingExplicitFile(t *testing.T) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "absent.toml"))

	err := Load(context.Background(), v)
	require.ErrorContains(t, err, "reading config")
}

func TestRenderDefaultTOML(t *testing.T) {
	out := RenderDefaultTOML()

	require.Contains(t, out, "http_addr = \":8080\"\n")
	require.Contains(t, out, "[log]\n")
	require.Contains(t, out, "[site]\n")
	require.Contains(t, out, "pretty = true\n")
	require.Contains(t, out, "[build]\n")
	require.Less(t, strings.Index(out, "[log]"), strings.Index(out, "[site]"))

	// The generated file must load back to the same defaults.
	path := filepath.Join(t.TempDir(), "landing.toml")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o644))
	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	for _, o := range GetConfigOptions() {
		require.Equal(t, o.Default, v.Get(o.Key), o.Key)
	}
}
