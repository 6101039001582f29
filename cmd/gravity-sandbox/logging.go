package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "gravity-sandbox.log"
	maxLogSize  = 10 * 1024 * 1024

	rotateStampLayout = "20060102-150405"
)

// logClock stamps rotated log names
var logClock = time.Now

// rotatedLogName returns the archive name for a log rotated at t
func rotatedLogName(t time.Time) string {
	return fmt.Sprintf("gravity-sandbox-%s.log", t.Format(rotateStampLayout))
}

// setupLogging routes the standard logger to logs/ when debug is set, io.Discard otherwise
// The terminal owns stdout and stderr while the simulation runs
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, rotatedLogName(logClock()))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("=== gravity-sandbox started (pid %d) ===", os.Getpid())
	return f
}
