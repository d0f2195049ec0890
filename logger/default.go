package logger

import (
	"fmt"
)

type defaultLogger struct {
}

func (d *defaultLogger) Unresolved() Unresolved {
	return func(label, owner, property, tag string) {
		fmt.Printf("[LOGGER] %v: unresolved %v.%v of type %q, falling back to ApplyResources \n", label, owner, property, tag)
	}
}

func (d *defaultLogger) Skipped() Skipped {
	return func(URL string, reason string) {
		fmt.Printf("[LOGGER] skipped %v: %v \n", URL, reason)
	}
}

func (d *defaultLogger) Generated() Generated {
	return func(URL string, callSites, fallbacks int) {
		fmt.Printf("[LOGGER] generated %v, call sites: %v, fallbacks: %v \n", URL, callSites, fallbacks)
	}
}

func (d *defaultLogger) Log() Log {
	return func(message string, args ...interface{}) {
		fmt.Printf("[LOGGER] "+message+" \n", args...)
	}
}
