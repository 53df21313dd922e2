package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

const serviceName = "zasahy-monitor"

// serviceHook проставляет имя сервиса в каждую запись.
type serviceHook struct{}

func (serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (serviceHook) Fire(entry *logrus.Entry) error {
	if _, ok := entry.Data["service"]; !ok {
		entry.Data["service"] = serviceName
	}
	return nil
}

// New создает логгер. format "text" включает читаемый вывод для локальной разработки,
// любое другое значение дает JSON.
func New(logLevel, format string) *logrus.Logger {
	return newWithOutput(logLevel, format, os.Stdout)
}

func newWithOutput(logLevel, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	}
	log.SetOutput(out)
	log.AddHook(serviceHook{})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
