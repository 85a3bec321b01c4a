package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Report: ReportConfig{Head: 5, SpotGuard: 1201, SpotMinute: 16},
		Color:  "auto",
	}
}

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "warn", conf.Log.Level)
	assert.Equal(t, 5, conf.Report.Head)
	assert.Equal(t, uint32(1201), conf.Report.SpotGuard)
	assert.Equal(t, 16, conf.Report.SpotMinute)
	assert.Equal(t, "auto", conf.Color)
	assert.Empty(t, conf.Path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GUARDLOG_LOG_LEVEL", "debug")
	t.Setenv("GUARDLOG_REPORT_HEAD", "3")
	t.Setenv("GUARDLOG_REPORT_SPOT_GUARD", "99")

	conf, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "debug", conf.Log.Level)
	assert.Equal(t, 3, conf.Report.Head)
	assert.Equal(t, uint32(99), conf.Report.SpotGuard)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guardlog.yaml")
	content := "log:\n  level: error\nreport:\n  spot_guard: 10\n  spot_minute: 24\ncolor: never\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	conf, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "error", conf.Log.Level)
	assert.Equal(t, uint32(10), conf.Report.SpotGuard)
	assert.Equal(t, 24, conf.Report.SpotMinute)
	assert.Equal(t, 5, conf.Report.Head, "unset keys keep their defaults")
	assert.Equal(t, "never", conf.Color)
	assert.Equal(t, path, conf.Path)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guardlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  head: 9\n"), 0644))
	t.Setenv("GUARDLOG_REPORT_HEAD", "2")

	conf, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, conf.Report.Head)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_InvalidValueRejected(t *testing.T) {
	t.Setenv("GUARDLOG_REPORT_SPOT_MINUTE", "75")

	_, err := Load(viper.New(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report config")
}

func TestValidator_ValidConfig(t *testing.T) {
	assert.NoError(t, NewValidator(validConfig()).Validate())
}

func TestValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Log.Level = "verbose"
	assert.Error(t, NewValidator(c).Validate())
}

func TestValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Log.Level = ""
	assert.Error(t, NewValidator(c).Validate())
}

func TestValidator_NegativeHead(t *testing.T) {
	c := validConfig()
	c.Report.Head = -1
	assert.Error(t, NewValidator(c).Validate())
}

func TestValidator_SpotMinuteOutOfRange(t *testing.T) {
	c := validConfig()
	c.Report.SpotMinute = 60
	assert.Error(t, NewValidator(c).Validate())
}

func TestValidator_InvalidColor(t *testing.T) {
	c := validConfig()
	c.Color = "sometimes"
	assert.Error(t, NewValidator(c).Validate())
}
