package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Logger holds one log.Logger per level and the active threshold.
type Logger struct {
	debugLogger *log.Logger
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	output      io.Writer
	level       LogLevel
	mutex       sync.Mutex
}

// LogLevel defines the logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel maps a level name to a LogLevel. Unknown names are INFO.
func ParseLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// GlobalLogger is usable before InitLogger runs; it then writes INFO and up to stdout.
var GlobalLogger = New(os.Stdout, "INFO")
var once sync.Once

// New builds a standalone logger. Tests use it to capture output.
func New(output io.Writer, level string) *Logger {
	if output == nil {
		output = os.Stdout
	}
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &Logger{
		debugLogger: log.New(output, color.BlueString("DEBUG: "), flags),
		infoLogger:  log.New(output, color.GreenString("INFO: "), flags),
		warnLogger:  log.New(output, color.YellowString("WARN: "), flags),
		errorLogger: log.New(output, color.RedString("ERROR: "), flags),
		output:      output,
		level:       ParseLevel(level),
	}
}

// InitLogger replaces the global logger with the specified output and log level.
// Only the first call has an effect.
func InitLogger(output io.Writer, level string) {
	once.Do(func() {
		GlobalLogger = New(output, level)
	})
}

// Level returns the active threshold.
func (l *Logger) Level() LogLevel {
	return l.level
}

// calldepth 3 points Lshortfile at the caller of the exported method
func (l *Logger) write(level LogLevel, target *log.Logger, msg string) {
	if l.level > level {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	_ = target.Output(3, msg)
}

// Println logs a message at the INFO level
func (l *Logger) Println(v ...interface{}) {
	l.write(INFO, l.infoLogger, fmt.Sprintln(v...))
}

// Printf logs a formatted message at the INFO level
func (l *Logger) Printf(format string, v ...interface{}) {
	l.write(INFO, l.infoLogger, fmt.Sprintf(format, v...))
}

// Warn logs a message at the WARN level
func (l *Logger) Warn(v ...interface{}) {
	l.write(WARN, l.warnLogger, fmt.Sprintln(v...))
}

// Warnf logs a formatted message at the WARN level
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.write(WARN, l.warnLogger, fmt.Sprintf(format, v...))
}

// Error logs a message at the ERROR level
func (l *Logger) Error(v ...interface{}) {
	l.write(ERROR, l.errorLogger, fmt.Sprintln(v...))
}

// Errorf logs a formatted message at the ERROR level
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.write(ERROR, l.errorLogger, fmt.Sprintf(format, v...))
}

// Debug logs a message at the DEBUG level
func (l *Logger) Debug(v ...interface{}) {
	l.write(DEBUG, l.debugLogger, fmt.Sprintln(v...))
}

// Debugf logs a formatted message at the DEBUG level
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.write(DEBUG, l.debugLogger, fmt.Sprintf(format, v...))
}

// Fatalf logs at the ERROR level regardless of threshold and exits.
func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.mutex.Lock()
	_ = l.errorLogger.Output(2, fmt.Sprintf(format, v...))
	l.mutex.Unlock()
	os.Exit(1)
}
