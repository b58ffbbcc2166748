package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedNFC
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags

	lines []lineSpan
}

// lineSpan is a byte range of one line without its terminator.
type lineSpan struct{ start, end int }

// LineCount returns the number of lines as the scanner counts them.
func (f *File) LineCount() int {
	if f.lines == nil {
		f.lines = lineSpans(f.Content)
	}
	return len(f.lines)
}

// GetLine returns the 1-based line of the file, or "" when out of range.
// Lines are split with the scanner's rules, so a lone CR ends a line.
func (f *File) GetLine(lineNum int) string {
	if lineNum <= 0 || lineNum > f.LineCount() {
		return ""
	}
	ls := f.lines[lineNum-1]
	return string(f.Content[ls.start:ls.end])
}

// Text returns the file content as a string.
func (f *File) Text() string { return string(f.Content) }

// Position is a human-readable location as reported by a Scanner.
type Position struct {
	Line   int // 1-based
	Column int // 0 before the first character of a line
}
