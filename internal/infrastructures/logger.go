package infrastructures

import (
	"github.com/sirupsen/logrus"
)

// InitLogger configures the process-wide logrus instance the rest of the
// application logs through.
func InitLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)
}
