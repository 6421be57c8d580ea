package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	defaultLogDir      = "logs"
	defaultLogFilename = "radialmenu.log"
)

var (
	logDir      = defaultLogDir
	logFilename = defaultLogFilename

	sinkOnce sync.Once
	logFile  *os.File
	sink     io.Writer = os.Stdout

	appLog      = newLevelledLogger()
	internalLog = newLevelledLogger()
)

type levelledLogger struct {
	once   sync.Once
	level  *slog.LevelVar
	logger *slog.Logger
}

func newLevelledLogger() *levelledLogger {
	return &levelledLogger{level: &slog.LevelVar{}}
}

func (l *levelledLogger) get() *slog.Logger {
	l.once.Do(func() {
		openSink()
		l.logger = slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: l.level}))
	})
	return l.logger
}

// SetLogFilename must be called before the first log line is written.
func SetLogFilename(filename string) {
	if filename != "" {
		logFilename = filename
	}
}

// SetLogDir must be called before the first log line is written.
func SetLogDir(dir string) {
	if dir != "" {
		logDir = dir
	}
}

// openSink tees logs to stdout and a file. A log file that cannot be opened leaves stdout only.
func openSink() {
	sinkOnce.Do(func() {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return
		}

		f, err := os.OpenFile(filepath.Join(logDir, logFilename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return
		}

		logFile = f
		sink = io.MultiWriter(os.Stdout, logFile)
	})
}

func GetLogger() *slog.Logger {
	return appLog.get()
}

func GetInternalLogger() *slog.Logger {
	return internalLog.get()
}

func SetLogLevel(level slog.Level) {
	appLog.level.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLog.level.Set(level)
}

// ParseLogLevel maps a level name to a slog.Level, falling back to Info.
func ParseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(raw string) {
	SetLogLevel(ParseLogLevel(raw))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
