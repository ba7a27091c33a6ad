package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigValidator_Required(t *testing.T) {
	if err := NewConfigValidator("Options").Required("LogLevel", "").Validate(); err == nil {
		t.Error("Expected error for empty required field")
	}
	if err := NewConfigValidator("Options").Required("LogLevel", "info").Validate(); err != nil {
		t.Errorf("Expected no error for non-empty required field, got %v", err)
	}
}

func TestConfigValidator_IntBounds(t *testing.T) {
	tests := []struct {
		name      string
		apply     func(*ConfigValidator)
		expectErr bool
	}{
		{"RangeInt inside", func(cv *ConfigValidator) { cv.RangeInt("MaxInlineOutputs", 2, 0, 16) }, false},
		{"RangeInt lower edge", func(cv *ConfigValidator) { cv.RangeInt("Workers", 1, 1, 256) }, false},
		{"RangeInt upper edge", func(cv *ConfigValidator) { cv.RangeInt("MaxPins", 500, 1, 500) }, false},
		{"RangeInt below", func(cv *ConfigValidator) { cv.RangeInt("Workers", 0, 1, 256) }, true},
		{"RangeInt above", func(cv *ConfigValidator) { cv.RangeInt("MaxInlineOutputs", 17, 0, 16) }, true},
		{"NonNegative negative", func(cv *ConfigValidator) { cv.NonNegative("FormatVersion", -1) }, true},
		{"NonNegative zero", func(cv *ConfigValidator) { cv.NonNegative("FormatVersion", 0) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewConfigValidator("Options")
			tt.apply(cv)
			err := cv.Validate()
			if (err != nil) != tt.expectErr {
				t.Errorf("Validate() = %v, expectErr %v", err, tt.expectErr)
			}
		})
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	allowed := []string{"debug", "info"}

	if err := NewConfigValidator("Options").OneOf("LogLevel", "info", allowed).Validate(); err != nil {
		t.Errorf("Expected no error for allowed value, got %v", err)
	}
	err := NewConfigValidator("Options").OneOf("LogLevel", "trace", allowed).Validate()
	if err == nil || !strings.Contains(err.Error(), "trace") {
		t.Errorf("Expected error naming the disallowed value, got %v", err)
	}
}

func TestConfigValidator_Disjoint(t *testing.T) {
	cv := NewConfigValidator("Options")
	cv.Disjoint("SelfClasses", []string{"K2Node_Self"}, "VariableGetClasses", []string{"K2Node_VariableGet"})
	if err := cv.Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	cv.Disjoint("PassthroughClasses", []string{"K2Node_Knot"}, "SelfClasses", []string{"K2Node_Knot", "K2Node_Self"})
	err := cv.Validate()
	if err == nil {
		t.Fatal("Expected error for shared class")
	}
	if !strings.Contains(err.Error(), "K2Node_Knot") || strings.Contains(err.Error(), "errors") {
		t.Errorf("Expected a single error naming the shared class: %v", err)
	}
}

func TestConfigValidator_CustomAndWhen(t *testing.T) {
	errBad := errors.New("bad class")

	cv := NewConfigValidator("Options")
	cv.Custom("SelfClasses", func() error { return errBad })
	cv.When(false, func(cv *ConfigValidator) { cv.RangeInt("Workers", 0, 1, 256) })

	err := cv.Validate()
	if !errors.Is(err, errBad) {
		t.Errorf("Validate() = %v, want wrapped errBad", err)
	}
	if strings.Contains(err.Error(), "Workers") {
		t.Errorf("When(false) should not add errors: %v", err)
	}

	cv.When(true, func(cv *ConfigValidator) { cv.RangeInt("Workers", 0, 1, 256) })
	if err := cv.Validate(); err == nil || !strings.Contains(err.Error(), "Workers") {
		t.Errorf("When(true) should apply its checks: %v", err)
	}
}

func TestConfigValidator_ValidateCombined(t *testing.T) {
	if err := NewConfigValidator("Options").Validate(); err != nil {
		t.Errorf("Validate() with no errors = %v", err)
	}

	cv := NewConfigValidator("Options")
	cv.RangeInt("Workers", 0, 1, 256).RangeInt("MaxPins", 900, 1, 500)

	err := cv.Validate()
	if err == nil {
		t.Fatal("Expected combined error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "2 errors") || !strings.Contains(msg, "MaxPins") {
		t.Errorf("Combined error missing detail: %s", msg)
	}
}

func TestDefaults(t *testing.T) {
	if got := DefaultOr("", "info"); got != "info" {
		t.Errorf("DefaultOr(\"\") = %q", got)
	}
	if got := DefaultOr("debug", "info"); got != "debug" {
		t.Errorf("DefaultOr(debug) = %q", got)
	}
	if got := DefaultOrInt(-3, 4); got != 4 {
		t.Errorf("DefaultOrInt(-3) = %d", got)
	}
	if got := DefaultOrInt(8, 4); got != 8 {
		t.Errorf("DefaultOrInt(8) = %d", got)
	}
	if got := ClampInt(900, 1, 500); got != 500 {
		t.Errorf("ClampInt(900) = %d", got)
	}
	if got := ClampInt(-1, 0, 500); got != 0 {
		t.Errorf("ClampInt(-1) = %d", got)
	}
}
