package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger  = zap.NewNop()
	sugar   = logger.Sugar()
	logFile *os.File
)

// setupLogging writes to stdout and to a per-run file under logs/. Debug
// messages are only kept when debug is set.
func setupLogging(debug bool) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	console := zap.NewDevelopmentEncoderConfig()
	console.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	console.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(console), zapcore.Lock(os.Stdout), level),
	}

	logDir := filepath.Join(baseDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Printf("could not create log directory: %v\n", err)
	} else {
		ts := time.Now().Format("20060102-150405")
		f, err := os.Create(filepath.Join(logDir, fmt.Sprintf("sounddraw-%s.log", ts)))
		if err == nil {
			logFile = f
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(f), level))
		}
	}

	logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	sugar = logger.Sugar()
}

func logError(format string, v ...any) { sugar.Errorf(format, v...) }
func logWarn(format string, v ...any)  { sugar.Warnf(format, v...) }
func logInfo(format string, v ...any)  { sugar.Infof(format, v...) }
func logDebug(format string, v ...any) { sugar.Debugf(format, v...) }

// syncLogging flushes and closes the log file. Sync errors on stdout are
// ignored, terminals reject fsync.
func syncLogging() error {
	_ = logger.Sync()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
