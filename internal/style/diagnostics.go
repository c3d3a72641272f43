package style

// DiagnosticKind classifies a style diagnostic.
type DiagnosticKind int

const (
	// DiagUnknownClass marks a utility class no category resolves.
	DiagUnknownClass DiagnosticKind = iota
)

// Diagnostic is a per-class problem found while generating a stylesheet.
type Diagnostic struct {
	ClassName string
	Kind      DiagnosticKind
	Message   string
}

// Report is the result of stylesheet generation.
type Report struct {
	CSS             string
	Diagnostics     []Diagnostic
	ResolvedCount   int
	UnresolvedCount int
}
