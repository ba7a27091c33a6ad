package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/compact"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/logging"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/pins"
)

func TestDefaultsValidate(t *testing.T) {
	opts := Defaults()
	require.NoError(t, opts.Validate())

	assert.Equal(t, pins.MaxPins, opts.MaxPins)
	assert.Equal(t, compact.DefaultRules(), opts.Rules())
	assert.Equal(t, logging.InfoLevel, opts.Level())
}

func TestParseOverridesDefaults(t *testing.T) {
	opts, err := Parse([]byte(`
workers: 8
log_level: debug
passthrough_classes:
  - K2Node_Knot
  - /Script/MyPlugin.K2Node_Relay
max_inline_outputs: 1
`))
	require.NoError(t, err)

	assert.Equal(t, 8, opts.Workers)
	assert.Equal(t, logging.DebugLevel, opts.Level())
	assert.Equal(t, []string{"K2Node_Knot", "/Script/MyPlugin.K2Node_Relay"}, opts.PassthroughClasses)
	assert.Equal(t, 1, opts.Rules().MaxInlineOutputs)

	// Untouched keys keep their defaults.
	assert.Equal(t, pins.MaxPins, opts.MaxPins)
	assert.Equal(t, []string{"K2Node_Self"}, opts.SelfClasses)
}

func TestParseLevelSpellings(t *testing.T) {
	for _, level := range []string{"DEBUG", "Info", "warning", " error "} {
		t.Run(level, func(t *testing.T) {
			_, err := Parse([]byte("log_level: '" + level + "'"))
			assert.NoError(t, err)
		})
	}
}

func TestValidateRangesWithoutParse(t *testing.T) {
	opts := Defaults()
	opts.Workers = MaxWorkers + 1
	opts.MaxInlineOutputs = -1

	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Options.Workers")
	assert.Contains(t, err.Error(), "Options.MaxInlineOutputs")
}

func TestParseEmpty(t *testing.T) {
	opts, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), opts)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"unknown key", "max_pin: 10", "max_pin"},
		{"bad yaml", "workers: [", "failed to parse config"},
		{"pins above limit", "max_pins: 501", "MaxPins"},
		{"zero workers", "workers: 0", "Workers"},
		{"too many workers", "workers: 1000", "Workers"},
		{"negative version", "format_version: -1", "FormatVersion"},
		{"unknown level", "log_level: chatty", "LogLevel"},
		{"bad class", "self_classes: ['K2Node Self']", "not a valid class name"},
		{"duplicate class", "self_classes: [K2Node_Self, K2Node_Self]", "duplicate"},
		{"overlapping rules", "self_classes: [K2Node_Knot]", "K2Node_Knot"},
		{"inline limit", "max_inline_outputs: 17", "MaxInlineOutputs"},
		{"empty level", "log_level: ''", "required field is empty"},
		{"every bad range reported", "workers: 0\nmax_pins: 0", "2 errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analyzer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o600))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, opts.WorkerCount())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestPinOptions(t *testing.T) {
	opts := Defaults()
	opts.MaxPins = 64
	names := asset.Names{"None", "then"}

	po := opts.PinOptions(0, names, nil)
	assert.Equal(t, pins.VersionLargeWorldCoordinates, po.Version)
	assert.Equal(t, 64, po.MaxPins)
	assert.NotNil(t, po.Names)

	po = opts.PinOptions(1001, nil, nil)
	assert.Equal(t, asset.Version(1001), po.Version)
}

func TestWorkerCountClamps(t *testing.T) {
	opts := Options{Workers: 0}
	assert.Equal(t, 1, opts.WorkerCount())
	opts.Workers = 10_000
	assert.Equal(t, MaxWorkers, opts.WorkerCount())
}

func TestLevelFallback(t *testing.T) {
	opts := Options{LogLevel: "nonsense"}
	assert.Equal(t, logging.InfoLevel, opts.Level())
}
