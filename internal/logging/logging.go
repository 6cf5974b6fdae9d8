package logging

import (
	"io/ioutil"
	"log"
	"os"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	debugLog *log.Logger
	infoLog  *log.Logger
	warnLog  *log.Logger
	errorLog *log.Logger
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debugLog = log.New(ioutil.Discard, "D ", flags)
	infoLog = log.New(ioutil.Discard, "I ", flags)
	warnLog = log.New(ioutil.Discard, "W ", flags)
	errorLog = log.New(ioutil.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// SetLevel enables all loggers at or above the given level
// and silences the others.
func SetLevel(l Level) {
	set := func(logger *log.Logger, min Level) {
		if l <= min {
			logger.SetOutput(os.Stderr)
		} else {
			logger.SetOutput(ioutil.Discard)
		}
	}

	set(debugLog, LevelDebug)
	set(infoLog, LevelInfo)
	set(warnLog, LevelWarning)
	set(errorLog, LevelError)
}

func Debug(msg string, v ...interface{}) {
	debugLog.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	infoLog.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warnLog.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	errorLog.Printf(msg, v...)
}
