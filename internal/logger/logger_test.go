package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"INFO", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := New(tt.level)
			if log.GetLevel() != tt.want {
				t.Errorf("New(%q) level = %v, want %v", tt.level, log.GetLevel(), tt.want)
			}
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("test message")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected output to contain the message, got: %s", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	ctx := WithContext(context.Background(), log)
	ctxLog := FromContext(ctx)
	ctxLog.Info().Msg("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Error("logger retrieved from context did not write to the attached writer")
	}
}

func TestFromContext_Default(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() == zerolog.Disabled {
		t.Error("default logger should be enabled")
	}
}
