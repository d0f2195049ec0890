package logger

import (
	"os"
)

const debugEnvVariable = "RESXGEN_DEBUG"

type Adapter struct {
	unresolved Unresolved
	skipped    Skipped
	generated  Generated
	log        Log
}

func (l *Adapter) Unresolved(label, owner, property, tag string) {
	if l == nil || l.unresolved == nil {
		return
	}

	l.unresolved(label, owner, property, tag)
}

func (l *Adapter) Skipped(URL string, reason string) {
	if l == nil || l.skipped == nil {
		return
	}

	l.skipped(URL, reason)
}

func (l *Adapter) Generated(URL string, callSites, fallbacks int) {
	if l == nil || l.generated == nil {
		return
	}

	l.generated(URL, callSites, fallbacks)
}

func (l *Adapter) Log(message string, args ...interface{}) {
	if l == nil || l.log == nil {
		return
	}

	l.log(message, args...)
}

func NewLogger(logger Logger) *Adapter {
	if logger == nil {
		return &Adapter{}
	}

	return &Adapter{
		unresolved: logger.Unresolved(),
		skipped:    logger.Skipped(),
		generated:  logger.Generated(),
		log:        logger.Log(),
	}
}

//Debug returns adapter printing to stdout
func Debug() *Adapter {
	return NewLogger(&defaultLogger{})
}

func Default() *Adapter {
	if os.Getenv(debugEnvVariable) == "" {
		return NewLogger(nil)
	}
	return Debug()
}
