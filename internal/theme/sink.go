package theme

// Sink receives a resolved token map and pushes it into the active
// styling environment. Apply must be idempotent and must fully replace
// previously applied values so no stale tokens survive a preset switch.
type Sink interface {
	Apply(tokens map[string]string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(tokens map[string]string)

func (f SinkFunc) Apply(tokens map[string]string) { f(tokens) }

// NopSink discards every application, for headless use.
type NopSink struct{}

func (NopSink) Apply(map[string]string) {}
