package ircmsg

// Logger is the diagnostics sink injected into Parse. Its method set is a
// subset of log15.Logger, which satisfies this interface directly — callers
// that don't care can pass log15.Root() or a log15.Logger wired to
// log15.DiscardHandler().
type Logger interface {
	Warn(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
}

// discardLogger is used when Parse is called with a nil Logger.
type discardLogger struct{}

func (discardLogger) Warn(string, ...interface{})  {}
func (discardLogger) Info(string, ...interface{})  {}
func (discardLogger) Debug(string, ...interface{}) {}
