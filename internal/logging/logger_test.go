package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		input string
		want  zapcore.Level
	}{
		{input: "debug", want: zapcore.DebugLevel},
		{input: " WARN ", want: zapcore.WarnLevel},
		{input: "warning", want: zapcore.WarnLevel},
		{input: "error", want: zapcore.ErrorLevel},
		{input: "info", want: zapcore.InfoLevel},
		{input: "", want: zapcore.InfoLevel},
		{input: "bogus", want: zapcore.InfoLevel},
	}

	for _, testCase := range cases {
		if got := parseLevel(testCase.input); got != testCase.want {
			t.Fatalf("parseLevel(%q) = %s, want %s", testCase.input, got, testCase.want)
		}
	}
}

func TestNewLoggerBuilds(t *testing.T) {
	logger, err := NewLogger("debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}
}
