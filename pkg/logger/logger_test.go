package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"sewaaset-prediction/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]logger.LogLevel{
		"debug":   logger.DEBUG,
		"INFO":    logger.INFO,
		" warn ":  logger.WARN,
		"warning": logger.WARN,
		"Error":   logger.ERROR,
		"":        logger.INFO,
		"verbose": logger.INFO,
	} {
		t.Run("it parses "+in, func(t *testing.T) {
			if got := logger.ParseLevel(in); got != want {
				t.Errorf("got %s, want %s", got, want)
			}
		})
	}
}

func TestLoggerThreshold(t *testing.T) {
	t.Run("messages below the threshold are dropped", func(t *testing.T) {
		buf := new(bytes.Buffer)
		l := logger.New(buf, "WARN")

		l.Debugf("debug %d", 1)
		l.Printf("info %d", 2)
		l.Warnf("warn %d", 3)
		l.Errorf("error %d", 4)

		out := buf.String()
		for _, dropped := range []string{"debug 1", "info 2"} {
			if strings.Contains(out, dropped) {
				t.Errorf("%q should be dropped:\n%s", dropped, out)
			}
		}
		for _, kept := range []string{"warn 3", "error 4"} {
			if !strings.Contains(out, kept) {
				t.Errorf("%q should be written:\n%s", kept, out)
			}
		}
	})

	t.Run("lines carry the caller's file", func(t *testing.T) {
		buf := new(bytes.Buffer)
		l := logger.New(buf, "DEBUG")
		l.Debug("hello")
		if !strings.Contains(buf.String(), "logger_test.go") {
			t.Errorf("caller file missing: %s", buf.String())
		}
	})
}
