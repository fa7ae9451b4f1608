package lexicon

import "fmt"

// LoadError reports a resource file that could not be read. The loader
// still returns an empty, usable container alongside it.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("lexicon: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// MalformedLine describes a line that was skipped during parsing.
type MalformedLine struct {
	Line   int
	Text   string
	Reason string
}

func (m MalformedLine) String() string {
	return fmt.Sprintf("line %d: %s", m.Line, m.Reason)
}

// Report summarizes one parsed resource.
type Report struct {
	Entries    int
	Duplicates int
	Skipped    []MalformedLine
}
