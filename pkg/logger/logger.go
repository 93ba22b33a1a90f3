package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Параметры ротации файла логов
const (
	maxSizeMB  = 100
	maxBackups = 5
	maxAgeDays = 30
)

// Logger printf-логгер поверх logrus
// Пишет одновременно в stdout и в ротируемый файл
type Logger struct {
	entry  *logrus.Logger
	output io.Closer
}

// New создает логгер
// file - путь к файлу логов (пустая строка - только stdout)
// level - debug, info, warn, error
func New(file, level string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("logger: invalid level %q: %w", level, err)
	}

	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	result := &Logger{entry: l}

	if file == "" {
		l.SetOutput(os.Stdout)
		return result, nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("logger: create log dir: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	l.SetOutput(io.MultiWriter(os.Stdout, rotator))
	result.output = rotator

	return result, nil
}

// NewWithWriter создает логгер, пишущий в произвольный writer (используется в тестах)
func NewWithWriter(w io.Writer, level logrus.Level) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	return &Logger{entry: l}
}

// Debug пишет сообщение уровня debug
func (l *Logger) Debug(format string, v ...interface{}) {
	l.entry.Debugf(format, v...)
}

// Info пишет сообщение уровня info
func (l *Logger) Info(format string, v ...interface{}) {
	l.entry.Infof(format, v...)
}

// Warn пишет сообщение уровня warn
func (l *Logger) Warn(format string, v ...interface{}) {
	l.entry.Warnf(format, v...)
}

// Error пишет сообщение уровня error
func (l *Logger) Error(format string, v ...interface{}) {
	l.entry.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.entry.Fatalf(format, v...)
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	if l.output == nil {
		return nil
	}
	return l.output.Close()
}
