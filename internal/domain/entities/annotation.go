package entities

// Annotation is a single backward-incompatible change reported by buf.
//
// An annotation is located when it carries a path, a start line and a start
// column. A path without a position is file-scoped (e.g. a deleted file), and
// an annotation without a path is unlocated.
type Annotation struct {
	Path        string `json:"path,omitempty"`
	StartLine   int    `json:"start_line,omitempty"`
	StartColumn int    `json:"start_column,omitempty"`
	EndLine     int    `json:"end_line,omitempty"`
	EndColumn   int    `json:"end_column,omitempty"`
	Type        string `json:"type"`
	Message     string `json:"message"`
}

// Located reports whether the annotation points at a position inside a file.
func (a Annotation) Located() bool {
	return a.Path != "" && a.StartLine > 0 && a.StartColumn > 0
}

// SameFinding reports whether two annotations describe the same
// incompatibility. Positions are ignored because they shift between snapshots.
func (a Annotation) SameFinding(other Annotation) bool {
	return a.Path == other.Path && a.Type == other.Type && a.Message == other.Message
}

// AnalysisResult is the outcome of one buf invocation.
type AnalysisResult struct {
	// Annotations in the order buf emitted them.
	Annotations []Annotation
	// Raw is the textual output of the invocation, kept for diagnostics.
	Raw string
	// Diagnostics is what buf printed besides the annotation records.
	Diagnostics string
}

// BreakingInput describes one "buf breaking" invocation.
type BreakingInput struct {
	Input   string
	Against string
	// Env holds "KEY=value" pairs added to the invocation environment only.
	Env []string
}
