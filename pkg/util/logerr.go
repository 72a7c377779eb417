package util

import (
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// LogErr logs the error through logger with the message and arguments if the
// error is not nil. It returns true if the error is not nil.
// Examples:
// LogErr(log, err)
// LogErr(log, err, "unable to load %s", path)
func LogErr(logger logrus.FieldLogger, err error, msgAndArgs ...interface{}) bool {
	if err == nil {
		return false
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	switch {
	case len(msgAndArgs) == 0:
		logger.WithError(err).Error(err.Error())
	case len(msgAndArgs) == 1:
		logger.WithError(err).Error(msgAndArgs[0].(string))
	default:
		logger.WithError(err).Errorf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	return true
}

// WarnFirstLogger reports repeated failures: the first burst of messages is
// logged at warn level, anything beyond the limiter's allowance is escalated
// to error level and counted.
type WarnFirstLogger struct {
	logger      logrus.FieldLogger
	warnLimiter *rate.Limiter
	escalated   int64
}

func NewWarnFirstLogger(threshold int, window time.Duration, logger logrus.FieldLogger) *WarnFirstLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &WarnFirstLogger{
		logger:      logger,
		warnLimiter: rate.NewLimiter(rate.Every(window), threshold),
	}
}

// WarnOrError logs the message and returns true when it was escalated.
func (w *WarnFirstLogger) WarnOrError(err error, msg string, args ...interface{}) bool {
	entry := w.logger
	if err != nil {
		entry = entry.WithError(err)
	}

	if w.warnLimiter.Allow() {
		entry.Warnf(msg, args...)
		return false
	}

	atomic.AddInt64(&w.escalated, 1)
	entry.Errorf(msg, args...)
	return true
}

// Escalated returns how many messages were logged at error level.
func (w *WarnFirstLogger) Escalated() int64 {
	return atomic.LoadInt64(&w.escalated)
}
