package emitter

import "github.com/viant/resxgen/logger"

type Option func(e *Emitter)

//WithLogger sets generation logger
func WithLogger(logger *logger.Adapter) Option {
	return func(e *Emitter) {
		e.logger = logger
	}
}

//WithCounter sets conversion counter
func WithCounter(counter *logger.CounterAdapter) Option {
	return func(e *Emitter) {
		e.counter = counter
	}
}
