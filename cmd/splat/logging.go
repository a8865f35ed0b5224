package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	logDir      = "logs"
	logFileName = "splat.log"
	maxLogSize  = 10 * 1024 * 1024
)

// logClock stamps rotated file names
var logClock = time.Now

// setupLogging routes the standard logger to logs/splat.log when debug is set
// and discards it otherwise; the terminal belongs to the game
// Returns the open file for the caller to close, nil when discarding
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
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotateErr = os.Rename(logPath, rotatedLogPath(logClock()))
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	// Run id separates sessions appended to the same file
	runID := uuid.NewString()
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.SetPrefix("[" + runID[:8] + "] ")
	log.Printf("logging started, run %s pid %d", runID, os.Getpid())
	if rotateErr != nil {
		log.Printf("log rotation failed, appending to %s: %v", logPath, rotateErr)
	}
	return f
}

func rotatedLogPath(t time.Time) string {
	return filepath.Join(logDir, fmt.Sprintf("splat-%s.log", t.Format("20060102-150405")))
}
