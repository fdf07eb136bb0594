package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

type Settings struct {
	Path       string
	Name       string
	Ext        string
	TimeFormat string
}

type logLevel int

const (
	DEBUG logLevel = iota
	INFO
	WARNING
	ERROR
	FATAL
)

const (
	flags              = log.LstdFlags
	defaultCallerDepth = 2
)

var (
	levelFlags = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}
	logFile    *os.File
	logger     = log.New(os.Stdout, "", flags)
	mu         sync.Mutex
)

// Setup 让日志同时写入标准输出和 settings 指定的文件
func Setup(settings *Settings) error {
	dir := settings.Path
	name := fmt.Sprintf("%s-%s.%s",
		settings.Name,
		time.Now().Format(settings.TimeFormat),
		settings.Ext)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log dir %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	logger = log.New(io.MultiWriter(os.Stdout, f), "", flags)
	return nil
}

// SetOutput 替换日志的输出目标，测试中用来丢弃日志
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", flags)
}

func output(level logLevel, msg string) {
	mu.Lock()
	defer mu.Unlock()
	_, file, line, ok := runtime.Caller(defaultCallerDepth)
	if ok {
		logger.SetPrefix(fmt.Sprintf("[%s][%s:%d] ", levelFlags[level], filepath.Base(file), line))
	} else {
		logger.SetPrefix(fmt.Sprintf("[%s] ", levelFlags[level]))
	}
	logger.Println(msg)
}

func Debug(v ...any) {
	output(DEBUG, fmt.Sprint(v...))
}

func Debugf(format string, v ...any) {
	output(DEBUG, fmt.Sprintf(format, v...))
}

func Info(v ...any) {
	output(INFO, fmt.Sprint(v...))
}

func Infof(format string, v ...any) {
	output(INFO, fmt.Sprintf(format, v...))
}

func Warn(v ...any) {
	output(WARNING, fmt.Sprint(v...))
}

func Warnf(format string, v ...any) {
	output(WARNING, fmt.Sprintf(format, v...))
}

func Error(v ...any) {
	output(ERROR, fmt.Sprint(v...))
}

func Errorf(format string, v ...any) {
	output(ERROR, fmt.Sprintf(format, v...))
}

func Fatal(v ...any) {
	output(FATAL, fmt.Sprint(v...))
	os.Exit(1)
}
