package logging

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// New builds the application logger. Timestamps are always on so log lines
// from the request middleware line up with the database logs.
func New() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}

func LogError(logger *logrus.Logger, msg string, err error) {
	logger.Errorf("%s: %v", msg, err)
}

func LogFatal(logger *logrus.Logger, msg string, err error) {
	logger.Fatalf("%s: %v", msg, err)
}

func LogWarn(logger *logrus.Logger, msg string) {
	logger.Warn(msg)
}

func LogInfo(logger *logrus.Logger, msg string) {
	logger.Info(msg)
}

// RequestLogger logs one line per request with method, path, status and
// latency.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}
