package log

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper around zap.SugaredLogger
type Logger struct {
	*zap.SugaredLogger
	path string
}

// NewLogger creates a new Logger writing to stderr and to a timestamped
// session file under dir. An empty dir logs to stderr only.
func NewLogger(dir string, development, debug bool) (*Logger, error) {
	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	var path string
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("log: create %s: %w", dir, err)
		}
		path = filepath.Join(dir, SessionFileName(time.Now()))
		config.OutputPaths = append(config.OutputPaths, path)
		config.ErrorOutputPaths = append(config.ErrorOutputPaths, path)
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	sugar := zapLogger.Sugar().With("session", uuid.NewString())
	return &Logger{SugaredLogger: sugar, path: path}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// SessionFileName names the log file for a session started at t.
func SessionFileName(t time.Time) string {
	return fmt.Sprintf("Debug_Log_%s.txt", t.Format("2006-01-02_15-04-05"))
}

// Named returns a category logger sharing the same outputs.
func (l *Logger) Named(category string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.Named(category), path: l.path}
}

// Path is the session log file, empty when logging to stderr only.
func (l *Logger) Path() string {
	return l.path
}

// Separator writes a visual break between phases of a session.
func (l *Logger) Separator() {
	l.Debug("----------------------------------------")
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.SugaredLogger.Sync()
}
