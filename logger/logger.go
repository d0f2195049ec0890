package logger

type Log func(message string, args ...interface{})
type Unresolved func(label, owner, property, tag string)
type Skipped func(URL string, reason string)
type Generated func(URL string, callSites, fallbacks int)

type Logger interface {
	Unresolved() Unresolved
	Skipped() Skipped
	Generated() Generated
	Log() Log
}
