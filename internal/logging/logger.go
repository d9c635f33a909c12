package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/trainerhub/pkg"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

var sentryLevels = []log.Level{log.PanicLevel, log.FatalLevel, log.ErrorLevel}

func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}
	log.SetLevel(GetLevel(params.LogLevel))

	if params.SentryEnabled {
		setupSentry(params)
	}

	out, desc := outputFor(params.LogFileName, params.LogToStdout)
	log.SetOutput(out)
	log.Infof("logging to %s, level %s", desc, log.GetLevel())
}

func setupSentry(params LoggerSetupParams) {
	if err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	}); err != nil {
		log.Errorf("sentry init: %s", err)
		return
	}
	log.AddHook(NewSentryHook(sentryLevels))
	log.Debugln("sentry hook installed")
}

// outputFor returns the log writer and a short description of it.
func outputFor(fileName string, alsoStdout bool) (io.Writer, string) {
	if fileName == "" {
		return os.Stdout, "stdout"
	}
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}

	rotated := &lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    50, // megabytes
		MaxBackups: 20,
		MaxAge:     60, // days
		Compress:   true,
	}
	if !alsoStdout {
		return rotated, fileName
	}
	return pkg.NewCombinedWriter(os.Stdout, rotated), fileName + " and stdout"
}

// GetLevel parses a level name case-insensitively, falling back to info.
func GetLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
