package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Logger accepts a message followed by alternating key and value args.
//	log.Debug("p4 where error", "data", data)
type Logger interface {
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

type DefaultLogger struct {
	wr    io.Writer
	mu    sync.Mutex
	debug bool
}

// NewDefaultLogger writes Info lines to wr. Debug lines are only written when debug is set.
func NewDefaultLogger(wr io.Writer, debug bool) Logger {
	s := &DefaultLogger{}
	s.wr = wr
	s.debug = debug
	return s
}

func (s *DefaultLogger) Info(msg string, args ...interface{}) {
	s.log("INFO", msg, args...)
}

func (s *DefaultLogger) Debug(msg string, args ...interface{}) {
	if !s.debug {
		return
	}
	s.log("DEBUG", msg, args...)
}

func (s *DefaultLogger) log(kind string, msg string, args ...interface{}) {
	line := kind + " " + msg
	kvs, err := formatArgs(args)
	if err != nil {
		line = fmt.Sprintf("ERROR logger invalid args passed. Msg: %v Args: %v Err: %v", msg, args, err)
	} else if kvs != "" {
		line += " " + kvs
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// logging must not fail the caller
	io.WriteString(s.wr, line+"\n")
}

func formatArgs(args []interface{}) (string, error) {
	if len(args)%2 != 0 {
		return "", errors.New("len of args not even")
	}
	var res []string
	for i := 0; i < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			return "", errors.New("key arg passed in not a string")
		}
		res = append(res, fmt.Sprintf("%v=%q", k, fmt.Sprint(args[i+1])))
	}
	return strings.Join(res, " "), nil
}

type noopLogger struct{}

// NewNoopLogger returns a logger that drops everything.
func NewNoopLogger() Logger {
	return noopLogger{}
}

func (noopLogger) Info(msg string, args ...interface{}) {}
func (noopLogger) Debug(msg string, args ...interface{}) {}
