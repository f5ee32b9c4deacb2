package config_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/crier/pkg/cli/config"
	"github.com/m-mizutani/crier/pkg/domain/types"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{
			name:    "Valid level: debug",
			level:   "debug",
			wantErr: false,
		},
		{
			name:    "Valid level: DEBUG (case insensitive)",
			level:   "DEBUG",
			wantErr: false,
		},
		{
			name:    "Valid level: info",
			level:   "info",
			wantErr: false,
		},
		{
			name:    "Valid level: WARN",
			level:   "WARN",
			wantErr: false,
		},
		{
			name:    "Valid level: error",
			level:   "error",
			wantErr: false,
		},
		{
			name:    "Invalid level: invalid",
			level:   "invalid",
			wantErr: true,
		},
		{
			name:    "Invalid level: empty string",
			level:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &config.Logger{
				Level:  tt.level,
				Format: "console",
				Writer: &bytes.Buffer{},
			}

			result, err := logger.Configure()
			if (err != nil) != tt.wantErr {
				t.Errorf("Configure() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && result == nil {
				t.Error("Configure() returned nil logger for valid input")
			}
		})
	}
}

func TestLogger_Configure_Format(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "console", format: "console"},
		{name: "json", format: "json"},
		{name: "JSON (case insensitive)", format: "JSON"},
		{name: "unknown", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := &config.Logger{
				Level:  "info",
				Format: tt.format,
				Writer: &buf,
			}

			result, err := logger.Configure()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Configure() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			result.Info("test log message")
			if !strings.Contains(buf.String(), "test log message") {
				t.Errorf("log output does not contain the message: %q", buf.String())
			}
		})
	}
}

func TestLogger_Configure_MasksSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{
		Level:  "debug",
		Format: "json",
		Writer: &buf,
	}

	result, err := logger.Configure()
	if err != nil {
		t.Fatalf("Configure() unexpected error = %v", err)
	}

	result.Info("configured",
		"token", types.GitHubToken("ghp_0123456789abcdef"),
		"github", config.GitHub{Token: "ghp_fedcba9876543210", URL: "https://ghe.example.com"},
	)

	out := buf.String()
	if strings.Contains(out, "ghp_0123456789abcdef") || strings.Contains(out, "ghp_fedcba9876543210") {
		t.Errorf("token leaked into logs: %s", out)
	}
	if !strings.Contains(out, "https://ghe.example.com") {
		t.Errorf("non-secret field was dropped: %s", out)
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
		flagNames[flag.Names()[0]] = true
	}

	if !flagNames["log-level"] {
		t.Error("Missing log-level flag")
	}
	if !flagNames["log-format"] {
		t.Error("Missing log-format flag")
	}
}
