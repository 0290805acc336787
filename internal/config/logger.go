package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/qdm12/log"
)

type Logger struct {
	Caller *bool
	Level  *log.Level
}

func (l *Logger) setDefaults() {
	l.Caller = gosettings.DefaultPointer(l.Caller, false)
	l.Level = gosettings.DefaultPointer(l.Level, log.LevelInfo)
}

func (l Logger) Validate() (err error) {
	return nil
}

func (l Logger) String() string {
	return l.toLinesNode().String()
}

func (l Logger) toLinesNode() *gotree.Node {
	node := gotree.New("Logger")
	node.Appendf("Caller: %s", gosettings.BoolToYesNo(l.Caller))
	node.Appendf("Level: %s", *l.Level)
	return node
}

func (l Logger) ToOptions() (options []log.Option) {
	options = append(options, log.SetLevel(*l.Level))
	if *l.Caller {
		options = append(options, log.SetCallerFile(true))
	}
	return options
}

func (l *Logger) read(reader *reader.Reader) (err error) {
	l.Caller, err = reader.BoolPtr("LOG_CALLER")
	if err != nil {
		return err
	}

	return l.readLevel(reader)
}

func (l *Logger) readLevel(reader *reader.Reader) (err error) {
	s := reader.String("LOG_LEVEL")
	if s == "" {
		return nil
	}

	level, err := parseLogLevel(s)
	if err != nil {
		return fmt.Errorf("environment variable LOG_LEVEL: %w", err)
	}
	l.Level = &level

	return nil
}

var ErrLogLevelUnknown = errors.New("log level is unknown")

func parseLogLevel(s string) (level log.Level, err error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return level, fmt.Errorf(
			"%w: %q is not valid and can be one of debug, info, warning or error",
			ErrLogLevelUnknown, s)
	}
}
