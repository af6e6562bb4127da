package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/thorny/internal/sim"
)

const (
	logDir      = "logs"
	logFileName = "thorny.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging discards log output unless debug is set, in which case it
// appends to logs/thorny.log. A log over maxLogSize is moved aside first.
// The caller closes the returned file.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "log dir: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("thorny_%s.log", time.Now().Format("20060102_150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "rotate log: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// transferLogger records token movement at debug level.
type transferLogger struct{}

func (transferLogger) OnStep(s *sim.Simulation, r sim.Record) {
	if r.Transferred {
		log.Printf("frame %d: token %d -> %d (overlaps=%d cooldown=%d)", r.Frame, r.From, r.Active, r.Overlaps, r.Cooldown)
	}
	if r.Cleared {
		log.Printf("frame %d: cooldown cleared, token stays on %d", r.Frame, r.Active)
	}
}
