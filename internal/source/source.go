// Package source defines the coordinate space shared by every table of
// the semantic model: file identifiers, half-open offset spans and the
// locations combining the two. Everything here is a small value type,
// safe to copy and compare.
package source

// FileID identifies a source file within a compilation unit.
// Zero is the invalid id.
type FileID uint32

// NoFile is the invalid file id.
const NoFile FileID = 0

// IsValid reports whether the id refers to an actual file.
func (id FileID) IsValid() bool { return id != NoFile }

// Span is a half-open byte interval [Start, End) within a single file.
type Span struct {
	Start uint32
	End   uint32
}

// Contains reports whether other lies fully within s.
// Equal bounds count as contained.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// IsSmaller reports whether s covers strictly fewer positions than
// other. It is a tie-break relation, not containment: two disjoint
// spans still compare by width.
func (s Span) IsSmaller(other Span) bool {
	return s.End-s.Start < other.End-other.Start
}

// Location is a span within a concrete file.
type Location struct {
	File FileID
	Span Span
}

// New builds a location from a file id and span bounds.
func New(file FileID, start, end uint32) Location {
	return Location{File: file, Span: Span{Start: start, End: end}}
}

// Contains reports whether other lies fully within l: same file,
// contained span.
func (l Location) Contains(other Location) bool {
	return l.File == other.File && l.Span.Contains(other.Span)
}
