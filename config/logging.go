package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogWriter carries application and SQL logs. It is stdout only until
// InitLogging attaches the log file.
var LogWriter io.Writer = os.Stdout

// LogFilePath is where the API appends its combined log.
func LogFilePath() string {
	return filepath.Join("logs", "community-api.log")
}

// InitLogging opens the log file and points the standard logger at a
// stdout+file multiwriter. An unopenable file degrades to stdout only.
func InitLogging() (*os.File, io.Writer) {
	logPath := filepath.Dir(LogFilePath())
	if err := os.MkdirAll(logPath, os.ModePerm); err != nil {
		log.Printf("Warning: Failed to create logs directory: %v", err)
	}

	logFile, err := os.OpenFile(LogFilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Warning: Failed to open log file: %v", err)
		LogWriter = os.Stdout
		log.SetOutput(LogWriter)
		return nil, LogWriter
	}

	LogWriter = io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(LogWriter)
	return logFile, LogWriter
}
