package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// inLogSandbox runs from an empty directory and restores the standard logger afterwards
func inLogSandbox(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func readLog(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	return string(data)
}

func TestLoggingDiscardedWithoutDebug(t *testing.T) {
	inLogSandbox(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Error("Expected no log file without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Errorf("Expected no %s directory, got err=%v", logDir, err)
	}
}

func TestLoggingWritesStartupBanner(t *testing.T) {
	inLogSandbox(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file with debug")
	}
	log.Printf("supernova: mass=%.2f", 31.5)
	f.Close()

	text := readLog(t)
	if !strings.Contains(text, "=== gravity-sandbox started (pid ") {
		t.Errorf("Expected startup banner, got %q", text)
	}
	if !strings.Contains(text, "supernova: mass=31.50") {
		t.Errorf("Expected simulation line after banner, got %q", text)
	}
}

func TestLoggingAppendsAcrossSessions(t *testing.T) {
	inLogSandbox(t)

	for range 2 {
		f := setupLogging(true)
		if f == nil {
			t.Fatal("Expected log file with debug")
		}
		f.Close()
	}

	if n := strings.Count(readLog(t), "gravity-sandbox started"); n != 2 {
		t.Errorf("Expected 2 banners, got %d", n)
	}
}

func TestLoggingRotatesOversizedFile(t *testing.T) {
	inLogSandbox(t)

	stamp := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	prev := logClock
	logClock = func() time.Time { return stamp }
	t.Cleanup(func() { logClock = prev })

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", logDir, err)
	}
	if err := os.WriteFile(filepath.Join(logDir, logFileName), make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to seed oversized log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file with debug")
	}
	f.Close()

	rotated := filepath.Join(logDir, "gravity-sandbox-20240309-140507.log")
	info, err := os.Stat(rotated)
	if err != nil {
		t.Fatalf("Expected rotated log %s: %v", rotated, err)
	}
	if info.Size() != maxLogSize+1 {
		t.Errorf("Expected rotated size %d, got %d", maxLogSize+1, info.Size())
	}

	text := readLog(t)
	if strings.Count(text, "gravity-sandbox started") != 1 || len(text) > 200 {
		t.Errorf("Expected fresh log holding only the banner, got %d bytes", len(text))
	}
}

func TestLoggingKeepsSmallFile(t *testing.T) {
	inLogSandbox(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", logDir, err)
	}
	if err := os.WriteFile(filepath.Join(logDir, logFileName), []byte("earlier run\n"), 0644); err != nil {
		t.Fatalf("Failed to seed log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file with debug")
	}
	f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", logDir, err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected no rotation, got %d files", len(entries))
	}
	if text := readLog(t); !strings.HasPrefix(text, "earlier run\n") {
		t.Errorf("Expected previous content kept, got %q", text)
	}
}
