// Package config loads the analyzer's tunables from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/asset"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/compact"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/logging"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/pins"
	"github.com/bradenleague/UE-Agent-Asset-Toolkit-sub000/pkg/validation"
)

// MaxWorkers bounds the batch worker count a config may ask for.
const MaxWorkers = 256

// MaxInlineOutputsLimit bounds max_inline_outputs.
const MaxInlineOutputsLimit = 16

// logLevels are the log_level values logging.ParseLevel accepts.
var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Options holds every analyzer setting. Class names are checked through
// struct tags; ranges and cross-field rules are checked in Validate.
type Options struct {
	// MaxPins lowers the per-node pin count limit. It cannot raise it.
	MaxPins int `yaml:"max_pins"`
	// FormatVersion is the object version assumed for pin data when the
	// caller does not supply one per asset.
	FormatVersion int32 `yaml:"format_version"`

	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`

	PassthroughClasses []string `yaml:"passthrough_classes" validate:"dive,classname"`
	SelfClasses        []string `yaml:"self_classes" validate:"dive,classname"`
	VariableGetClasses []string `yaml:"variable_get_classes" validate:"dive,classname"`
	MaxInlineOutputs   int      `yaml:"max_inline_outputs"`
}

// Defaults returns the settings used when no file is given.
func Defaults() Options {
	rules := compact.DefaultRules()
	return Options{
		MaxPins:            pins.MaxPins,
		FormatVersion:      int32(pins.VersionLargeWorldCoordinates),
		Workers:            4,
		LogLevel:           "info",
		PassthroughClasses: rules.Passthrough,
		SelfClasses:        rules.Self,
		VariableGetClasses: rules.VariableGet,
		MaxInlineOutputs:   rules.MaxInlineOutputs,
	}
}

// Load reads and validates a YAML config file. Keys missing from the file
// keep their default value.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	opts, err := Parse(data)
	if err != nil {
		return Options{}, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

// Parse decodes YAML over Defaults and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Options, error) {
	opts := Defaults()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks field ranges and cross-field consistency.
func (o *Options) Validate() error {
	if err := validation.Struct(o); err != nil {
		return err
	}

	cv := validation.NewConfigValidator("Options")
	cv.RangeInt("MaxPins", o.MaxPins, 1, pins.MaxPins).
		NonNegative("FormatVersion", int(o.FormatVersion)).
		RangeInt("Workers", o.Workers, 1, MaxWorkers).
		RangeInt("MaxInlineOutputs", o.MaxInlineOutputs, 0, MaxInlineOutputsLimit).
		Required("LogLevel", o.LogLevel)
	cv.When(o.LogLevel != "", func(cv *validation.ConfigValidator) {
		cv.OneOf("LogLevel", strings.ToLower(strings.TrimSpace(o.LogLevel)), logLevels)
	})
	cv.Custom("PassthroughClasses", func() error { return validation.ValidateClassList(o.PassthroughClasses) })
	cv.Custom("SelfClasses", func() error { return validation.ValidateClassList(o.SelfClasses) })
	cv.Custom("VariableGetClasses", func() error { return validation.ValidateClassList(o.VariableGetClasses) })
	cv.Disjoint("PassthroughClasses", o.PassthroughClasses, "SelfClasses", o.SelfClasses)
	cv.Disjoint("PassthroughClasses", o.PassthroughClasses, "VariableGetClasses", o.VariableGetClasses)
	cv.Disjoint("SelfClasses", o.SelfClasses, "VariableGetClasses", o.VariableGetClasses)
	return cv.Validate()
}

// Level returns the parsed log level, INFO if it does not parse.
func (o *Options) Level() logging.Level {
	level, err := logging.ParseLevel(o.LogLevel)
	if err != nil {
		return logging.InfoLevel
	}
	return level
}

// Rules converts the class lists to compaction rules.
func (o *Options) Rules() compact.Rules {
	return compact.Rules{
		Passthrough:      o.PassthroughClasses,
		Self:             o.SelfClasses,
		VariableGet:      o.VariableGetClasses,
		MaxInlineOutputs: validation.ClampInt(o.MaxInlineOutputs, 0, MaxInlineOutputsLimit),
	}
}

// PinOptions builds decoder options for one asset. A zero version falls
// back to FormatVersion.
func (o *Options) PinOptions(version asset.Version, names asset.NameTable, resolver asset.Resolver) pins.Options {
	return pins.Options{
		Version:  validation.DefaultOr(version, asset.Version(o.FormatVersion)),
		Names:    names,
		Resolver: resolver,
		MaxPins:  o.MaxPins,
	}
}

// WorkerCount returns Workers clamped to [1, MaxWorkers].
func (o *Options) WorkerCount() int {
	return validation.ClampInt(validation.DefaultOrInt(o.Workers, 1), 1, MaxWorkers)
}
