package fiberlog

import "github.com/sirupsen/logrus"

// Config настраивает middleware логирования запросов api.
type Config struct {
	// Logger - целевой логгер; nil означает глобальный логгер logrus
	Logger *logrus.Logger
	// Tags - поля, попадающие в каждую запись лога
	Tags []string
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}
