package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitLoggerVerboseWritesFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "podash.log")
	if err := InitLogger(true, logFile); err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}
	defer InitLogger(false, "")

	Log("fetched %d tasks", 3)
	CloseLogger()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "fetched 3 tasks") {
		t.Errorf("Expected log line in file, got: %s", data)
	}
}

func TestInitLoggerQuiet(t *testing.T) {
	if err := InitLogger(false, ""); err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}
	Log("nothing to see")
	if !strings.HasPrefix(filepath.Base(DefaultLogFile()), "podash_") {
		t.Errorf("unexpected default log file %s", DefaultLogFile())
	}
}
