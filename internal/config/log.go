package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Log rotation defaults.
const (
	LogMaxSizeMB  = 5
	LogMaxBackups = 3
	LogMaxAgeDays = 14
)

// NewLogWriter returns a rotating writer for ~/.procwatch/logs/procwatch.log.
func NewLogWriter() (io.WriteCloser, error) {
	if err := EnsureGlobalLogsDir(); err != nil {
		return nil, fmt.Errorf("failed to ensure logs dir: %w", err)
	}
	dir, err := GlobalLogsDir()
	if err != nil {
		return nil, err
	}
	return &lj.Logger{
		Filename:   filepath.Join(dir, LogFileName),
		MaxSize:    LogMaxSizeMB,
		MaxBackups: LogMaxBackups,
		MaxAge:     LogMaxAgeDays,
	}, nil
}

// SetupFileLogging sends the standard logger to stderr and the rotating log
// file. The returned closer flushes the file; it is a no-op if the file could
// not be opened, in which case logging stays on stderr only.
func SetupFileLogging() io.Closer {
	w, err := NewLogWriter()
	if err != nil {
		log.Printf("File logging disabled: %v", err)
		return io.NopCloser(nil)
	}
	log.SetOutput(io.MultiWriter(os.Stderr, w))
	return w
}
