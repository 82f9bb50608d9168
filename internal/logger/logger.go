package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/acarl005/stripansi"
	clog "github.com/charmbracelet/log"
)

// Log is the process wide logger, disabled until Start finds DEMOPLAY_LOG.
var Log = Logger{}

const envLogFile = "DEMOPLAY_LOG"

type Logger struct {
	mu        sync.RWMutex
	isEnabled bool
	file      *os.File
	logger    *clog.Logger
}

// Start enables logging into the file named by DEMOPLAY_LOG.
// The terminal belongs to the demo, so nothing is ever logged to stdout or stderr.
func (l *Logger) Start() error {
	logfilename, exists := os.LookupEnv(envLogFile)
	if !exists || logfilename == "" {
		return nil
	}

	file, err := os.OpenFile(logfilename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", logfilename, err)
	}

	l.mu.Lock()
	l.file = file
	l.mu.Unlock()
	l.StartWriter(file)
	return nil
}

// StartWriter enables logging into w.
func (l *Logger) StartWriter(w io.Writer) {
	logger := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05.000",
		Level:           clog.DebugLevel,
	})
	logger.SetFormatter(clog.LogfmtFormatter)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = logger
	l.isEnabled = true
}

func (l *Logger) Debug(msg string, keyvals ...any) { l.log(clog.DebugLevel, msg, keyvals) }
func (l *Logger) Info(msg string, keyvals ...any)  { l.log(clog.InfoLevel, msg, keyvals) }
func (l *Logger) Warn(msg string, keyvals ...any)  { l.log(clog.WarnLevel, msg, keyvals) }
func (l *Logger) Error(msg string, keyvals ...any) { l.log(clog.ErrorLevel, msg, keyvals) }

func (l *Logger) log(level clog.Level, msg string, keyvals []any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.isEnabled {
		return
	}
	l.logger.Log(level, stripansi.Strip(msg), sanitize(keyvals)...)
}

// sanitize strips terminal escapes from string values, typed commands carry colours.
func sanitize(keyvals []any) []any {
	out := make([]any, len(keyvals))
	for i, v := range keyvals {
		switch v := v.(type) {
		case string:
			out[i] = stripansi.Strip(v)
		case error:
			out[i] = stripansi.Strip(v.Error())
		case time.Duration:
			out[i] = v.String()
		default:
			out[i] = v
		}
	}
	return out
}

// Stop disables the logger and closes its file.
func (l *Logger) Stop() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.isEnabled {
		return nil
	}
	l.isEnabled = false
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
