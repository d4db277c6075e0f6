package crack

// Reporter receives progress notifications during a scan. The engine calls
// Start once before the first candidate, Attempt after every candidate
// tested, and Done exactly once with the terminal outcome. Implementations
// render; the engine never writes to the console itself.
type Reporter interface {
	Start(total int)
	Attempt(n int)
	Done(Outcome)
}

// NopReporter is a Reporter that discards every notification. It is used
// when the caller passes a nil Reporter.
type NopReporter struct{}

// Start implements Reporter.
func (NopReporter) Start(int) {}

// Attempt implements Reporter.
func (NopReporter) Attempt(int) {}

// Done implements Reporter.
func (NopReporter) Done(Outcome) {}
