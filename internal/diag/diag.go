package diag

import "log"

// Sink receives soft warnings: diagnostics for recoverable conditions
// that never interrupt the operation reporting them. Implementations
// must not panic.
type Sink interface {
	// Warnf reports one warning in Printf style.
	Warnf(format string, args ...any)
}

// Chain is a composite sink that forwards each warning to several
// sinks in order.
type Chain struct {
	Sinks []Sink
}

// Warnf forwards the warning to every sink in the chain, in order.
func (c *Chain) Warnf(format string, args ...any) {
	for _, s := range c.Sinks {
		s.Warnf(format, args...)
	}
}

// NoOp is a sink that discards every warning.
var NoOp Sink = noOpSink{}

type noOpSink struct{}

func (noOpSink) Warnf(string, ...any) {}

// Logger returns a sink that writes warnings to l, or to the standard
// logger when l is nil.
func Logger(l *log.Logger) Sink {
	if l == nil {
		l = log.Default()
	}
	return loggerSink{l: l}
}

type loggerSink struct {
	l *log.Logger
}

func (s loggerSink) Warnf(format string, args ...any) {
	s.l.Printf(format, args...)
}

// Counter is a sink that counts warnings and keeps the format string
// of the most recent one. Useful in tests and as a cheap telemetry
// hook. Not safe for concurrent use.
type Counter struct {
	N    int
	Last string
}

func (c *Counter) Warnf(format string, args ...any) {
	c.N++
	c.Last = format
}

// Reset clears the count and the recorded message.
func (c *Counter) Reset() {
	c.N = 0
	c.Last = ""
}
