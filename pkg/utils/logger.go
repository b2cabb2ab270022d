package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the process-wide logger. It discards everything until
// InitLogger enables verbose mode, so the terminal UI is never written over.
var Logger = zap.NewNop().Sugar()

// Log prints debug messages to the log file if verbose mode is enabled
func Log(text string, args ...interface{}) {
	Logger.Debugf(text, args...)
}

// DefaultLogFile returns the dated log file under the system temp dir
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("podash_%s.log", time.Now().Format("2006-01-02")))
}

// InitLogger initializes the logging system
func InitLogger(verbose bool, logFile string) error {
	if !verbose {
		Logger = zap.NewNop().Sugar()
		return nil
	}
	if logFile == "" {
		logFile = DefaultLogFile()
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
		}),
		zap.DebugLevel,
	)
	Logger = zap.New(core, zap.AddCaller()).Sugar()

	Log("Verbose logging enabled, writing to %s", logFile)
	return nil
}

// CloseLogger flushes buffered log entries
func CloseLogger() {
	_ = Logger.Sync()
}
