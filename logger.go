package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/gommon/log"
)

// Global file pointer
var logFile *os.File

func deleteEmptyFiles(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		// If there's an error accessing a path, log and skip it.
		if err != nil {
			log.Warnf("Error accessing %s: %v", path, err)
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if info.Size() == 0 {
			log.Debugf("Deleting empty file: %s", path)
			if removeErr := os.Remove(path); removeErr != nil {
				log.Warnf("Failed to delete %s: %v", path, removeErr)
			}
		}
		return nil
	})
}

// initLogger configures the global gommon logger shared by every package
// and by echo. With a log directory, output also goes to a timestamped file.
func initLogger(cfg *Config) (*log.Logger, error) {
	level, err := parseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	log.SetLevel(level)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %w", err)
		}

		deleteEmptyFiles(cfg.LogDir)

		timestamp := time.Now().Format("2006-01-02_15-04-05_MST")
		filename := filepath.Join(cfg.LogDir, fmt.Sprintf("output_%s.log", timestamp))

		logFile, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", filename, err)
		}

		log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	}

	// echo gets its own prefix but writes to the same place
	echoLogger := log.New("echo")
	echoLogger.SetLevel(level)
	echoLogger.SetOutput(log.Output())

	return echoLogger, nil
}

func shutdownLogger() {
	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
		logFile = nil
	}
}
