package config_test

import (
	"testing"

	"github.com/ascensive/stevedore/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "debug level", level: "debug", format: "text"},
		{name: "DEBUG case insensitive", level: "DEBUG", format: "text"},
		{name: "info level", level: "info", format: "text"},
		{name: "warn level", level: "warn", format: "text"},
		{name: "error level", level: "error", format: "text"},
		{name: "json format", level: "info", format: "json"},
		{name: "console format", level: "info", format: "console"},
		{name: "invalid level", level: "invalid", format: "text", wantErr: true},
		{name: "empty level", level: "", format: "text", wantErr: true},
		{name: "invalid format", level: "info", format: "xml", wantErr: true},
		{name: "empty format", level: "info", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &config.Logger{
				Level:  tt.level,
				Format: tt.format,
			}

			result, err := logger.Configure()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Configure() error = %v, wantErr %v", err, tt.wantErr)
			}

			if !tt.wantErr && result == nil {
				t.Error("Configure() returned nil logger for valid input")
			}
		})
	}
}

func TestLogger_Configure_LevelBehavior(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error"}

	for _, level := range levels {
		t.Run("Level: "+level, func(t *testing.T) {
			logger := &config.Logger{
				Level:  level,
				Format: "text",
			}

			result, err := logger.Configure()
			if err != nil {
				t.Fatalf("Configure() unexpected error = %v", err)
			}

			result.Debug("debug message")
			result.Info("info message")
			result.Warn("warn message")
			result.Error("error message")
		})
	}
}

func TestLogger_Flags(t *testing.T) {
	logger := &config.Logger{}
	flags := logger.Flags()

	if len(flags) != 2 {
		t.Errorf("Flags() returned %d flags, want 2", len(flags))
	}

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		switch f := flag.(type) {
		case interface{ Names() []string }:
			names := f.Names()
			if len(names) > 0 {
				flagNames[names[0]] = true
			}
		}
	}

	if !flagNames["log-level"] {
		t.Error("Missing log-level flag")
	}
	if !flagNames["log-format"] {
		t.Error("Missing log-format flag")
	}
}
