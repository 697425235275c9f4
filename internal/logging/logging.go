package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minefield/internal/config"
)

// Setup configures log for the given config: debug level and colored
// output in development, info level otherwise, plus a rotated JSON log
// file when log_file is set.
func Setup(log *logrus.Logger, config *config.Config) error {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{ForceColors: config.Development()})

	if config.LogFile == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   config.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)

	return nil
}

// Share makes dst log like src: same level, formatter, output and hooks.
// Package loggers such as minefield.Log are set up this way.
func Share(src, dst *logrus.Logger) {
	dst.SetLevel(src.GetLevel())
	dst.SetFormatter(src.Formatter)
	dst.SetOutput(src.Out)

	hooks := make(logrus.LevelHooks, len(src.Hooks))
	for level, levelHooks := range src.Hooks {
		hooks[level] = append([]logrus.Hook(nil), levelHooks...)
	}
	dst.ReplaceHooks(hooks)
}
