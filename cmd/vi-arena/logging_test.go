package main

import (
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func useTempLogDir(t *testing.T) {
	t.Helper()
	prev := logDir
	logDir = filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() {
		logDir = prev
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
		log.Logger = zerolog.Nop()
		stdlog.SetOutput(os.Stderr)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	useTempLogDir(t)

	logFile := setupLogging(false, "")
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if zerolog.GlobalLevel() != zerolog.Disabled {
		t.Errorf("Expected logging disabled, got level %v", zerolog.GlobalLevel())
	}
	if stdlog.Writer() != io.Discard {
		t.Errorf("Expected standard log output to be io.Discard, got %v", stdlog.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no log directory without debug")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	useTempLogDir(t)

	logFile := setupLogging(true, "info")
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(logDir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatal("Expected log file to be created")
	}

	log.Info().Msg("Test log message")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("Expected info level, got %v", zerolog.GlobalLevel())
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	useTempLogDir(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)

	largeFile, err := os.Create(logPath)
	if err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}
	if err := largeFile.Truncate(maxLogSize + 1); err != nil {
		t.Fatalf("Failed to grow log file: %v", err)
	}
	largeFile.Close()

	logFile := setupLogging(true, "")
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	useTempLogDir(t)

	logFile := setupLogging(true, "debug")
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	output := stdlog.Writer()
	if output == os.Stdout || output == os.Stderr {
		t.Error("Standard log output should not be a terminal stream")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":      zerolog.DebugLevel,
		"warn":  zerolog.WarnLevel,
		"ERROR": zerolog.ErrorLevel,
		"bogus": zerolog.DebugLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}
