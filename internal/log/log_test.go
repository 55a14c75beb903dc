package log

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestGetZapLoggerFallback returns a usable logger before Init
func TestGetZapLoggerFallback(t *testing.T) {
	baseLogger, log = nil, nil

	if GetZapLogger() == nil {
		t.Fatal("expected fallback logger")
	}
	if GetSugaredLogger() == nil {
		t.Fatal("expected fallback sugared logger")
	}
	Debugw("fallback", "ok", true)
}

// TestInit builds both loggers
func TestInit(t *testing.T) {
	for _, debug := range []bool{false, true} {
		if err := Init(debug); err != nil {
			t.Fatalf("Init(%v): %v", debug, err)
		}
		if GetZapLogger() == nil {
			t.Fatalf("Init(%v): nil logger", debug)
		}
	}
	Sync()
}

// TestWarnf routes warnings through the package logger
func TestWarnf(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	baseLogger = zap.New(core)
	log = baseLogger.Sugar()
	defer func() { baseLogger, log = nil, nil }()

	Debugf("below level %d", 1)
	Warnf("ice thickness exceeds %.2f ft", 0.5)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "ice thickness exceeds 0.50 ft" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
}
