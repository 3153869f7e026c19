package config

import (
	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

// GetLogrusInstance retorna el logger compartido de la aplicación
func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}
