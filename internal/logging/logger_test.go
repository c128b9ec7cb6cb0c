package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Console(t *testing.T) {
	logger, err := NewLogger(Config{Level: "debug", Format: FormatConsole})
	if err != nil {
		t.Fatalf("Failed to create console logger: %v", err)
	}
	if logger == nil {
		t.Fatal("Expected non-nil logger")
	}

	// Should not panic
	logger.Debug("test debug message")
	logger.Info("test info message")
}

func TestNewLogger_JSON(t *testing.T) {
	logger, err := NewLogger(Config{Level: "info", Format: FormatJSON})
	if err != nil {
		t.Fatalf("Failed to create JSON logger: %v", err)
	}
	if logger == nil {
		t.Fatal("Expected non-nil logger")
	}

	// Should not panic
	logger.Info("test info message")
	logger.Error("test error message")
}

func TestNewLogger_EmptyFormatDefaultsToConsole(t *testing.T) {
	logger, err := NewLogger(Config{Level: "info"})
	if err != nil {
		t.Fatalf("Failed to create logger with empty format: %v", err)
	}
	if logger == nil {
		t.Fatal("Expected non-nil logger")
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(Config{Level: "invalid", Format: FormatConsole}); err == nil {
		t.Fatal("Expected error for invalid log level")
	}
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	if _, err := NewLogger(Config{Level: "info", Format: "xml"}); err == nil {
		t.Fatal("Expected error for unknown log format")
	}
}

func TestNewLogger_AllLevels(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error"}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			logger, err := NewLogger(Config{Level: level, Format: FormatJSON})
			if err != nil {
				t.Fatalf("Failed to create logger with level %s: %v", level, err)
			}
			if logger == nil {
				t.Fatalf("Expected non-nil logger for level %s", level)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("Expected default level 'info', got %s", cfg.Level)
	}
	if cfg.Format != FormatConsole {
		t.Errorf("Expected console format, got %s", cfg.Format)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
		hasError bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"DEBUG", zapcore.DebugLevel, false}, // Should handle uppercase
		{"invalid", zapcore.DebugLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)

			if tt.hasError {
				if err == nil {
					t.Errorf("Expected error for input %s", tt.input)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for input %s: %v", tt.input, err)
				}
				if level != tt.expected {
					t.Errorf("Expected level %v, got %v", tt.expected, level)
				}
			}
		})
	}
}

func TestEncoding(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{FormatJSON, "json"},
		{FormatConsole, "console"},
		{"", "console"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := encoding(tt.format); got != tt.expected {
				t.Errorf("Expected encoding %s for %q, got %s", tt.expected, tt.format, got)
			}
		})
	}
}

func TestLogger_WithFields(t *testing.T) {
	logger, err := NewLogger(DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	// Should not panic when adding fields
	logger.With(
		zap.String("hotel_id", "h-1"),
		zap.Int("rooms", 2),
	).Info("test message with fields")
}
