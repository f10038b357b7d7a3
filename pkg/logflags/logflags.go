package logflags

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/sirupsen/logrus"
)

var index = false
var query = false
var cache = false

func makeLogger(flag bool, fields logrus.Fields) *logrus.Entry {
	logger := logrus.New().WithFields(fields)
	logger.Logger.Level = logrus.DebugLevel
	if !flag {
		logger.Logger.Level = logrus.PanicLevel
	}
	return logger
}

// Index returns true if dictionary index construction should log.
func Index() bool {
	return index
}

// IndexLogger returns a logger for dictionary index construction.
func IndexLogger() *logrus.Entry {
	return makeLogger(index, logrus.Fields{"layer": "index"})
}

// Query returns true if the query engine should log.
func Query() bool {
	return query
}

// QueryLogger returns a logger for the query engine.
func QueryLogger() *logrus.Entry {
	return makeLogger(query, logrus.Fields{"layer": "query"})
}

// Cache returns true if the result cache should log.
func Cache() bool {
	return cache
}

// CacheLogger returns a logger for the result cache.
func CacheLogger() *logrus.Entry {
	return makeLogger(cache, logrus.Fields{"layer": "cache"})
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")

// Setup sets logging flags based on the contents of logstr.
func Setup(logFlag bool, logstr string) error {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if !logFlag {
		log.SetOutput(io.Discard)
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	if logstr == "" {
		logstr = "query"
	}
	for _, logcmd := range strings.Split(logstr, ",") {
		switch logcmd {
		case "index":
			index = true
		case "query":
			query = true
		case "cache":
			cache = true
		}
	}
	return nil
}
