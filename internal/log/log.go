package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Loggers discard output until Initialize is called.
var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
	DebugLog   = log.New(io.Discard, "", 0)
)

var debugEnabled = os.Getenv("DEBUG") == "true" || os.Getenv("DEBUG") == "1"

// FileName is where Initialize writes logs
var FileName = filepath.Join(os.TempDir(), "chores.log")

var logFile *os.File

// Initialize sets up the loggers. The TUI owns the terminal, so logs go to
// FileName; stderr is only used when the file cannot be opened.
// defer Close() after calling this function.
func Initialize() {
	var out io.Writer
	f, err := os.OpenFile(FileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using stderr for logging: %v\n", err)
		out = os.Stderr
	} else {
		logFile = f
		out = f
	}

	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(out, "INFO: ", flags)
	WarningLog = log.New(out, "WARNING: ", flags)
	ErrorLog = log.New(out, "ERROR: ", flags)
	if debugEnabled {
		DebugLog = log.New(out, "DEBUG: ", flags)
	} else {
		DebugLog = log.New(io.Discard, "", 0)
	}
}

// Close flushes and closes the log file, if any
func Close() {
	if logFile == nil {
		return
	}
	_ = logFile.Close()
	logFile = nil
}

// IsDebugEnabled returns true if debug logging is enabled.
func IsDebugEnabled() bool {
	return debugEnabled
}
