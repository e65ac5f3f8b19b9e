package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goto/salt/log"

	"github.com/goto/chronoset/config"
)

type defaultLogger struct {
	writer io.Writer
	level  config.LogLevel
}

// NewClientLogger returns a printf style logger writing to stdout, used for command output.
func NewClientLogger() log.Logger {
	return NewClientLoggerWithWriter(os.Stdout, config.LogLevelInfo)
}

func NewClientLoggerWithWriter(writer io.Writer, level config.LogLevel) log.Logger {
	return &defaultLogger{
		writer: writer,
		level:  level,
	}
}

// NewServiceLogger returns a structured logger for services, honouring the configured level.
func NewServiceLogger(conf config.LogConfig, writer io.Writer) log.Logger {
	return log.NewLogrus(
		log.LogrusWithLevel(conf.Level.String()),
		log.LogrusWithWriter(writer),
	)
}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	if l.level != config.LogLevelDebug {
		return
	}
	l.write(color.New(color.FgHiBlack).Sprint(msg), args...)
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	l.write(msg, args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	l.write(color.YellowString(msg), args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	l.write(color.RedString(msg), args...)
}

func (l *defaultLogger) Fatal(msg string, args ...interface{}) {
	l.Error(msg, args...)
	os.Exit(1)
}

func (l *defaultLogger) Level() string {
	return l.level.String()
}

func (l *defaultLogger) Writer() io.Writer {
	return l.writer
}

func (l *defaultLogger) write(msg string, args ...interface{}) {
	if len(args) == 0 {
		fmt.Fprintln(l.writer, msg)
		return
	}
	fmt.Fprintf(l.writer, msg+"\n", args...)
}
