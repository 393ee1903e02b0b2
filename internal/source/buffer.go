package source

import "os"

// Buffer is the byte buffer a file is loaded into before lexing. Line and
// column indexing stay stable for the buffer's whole lifetime; the caret
// printer re-reads lines from disk instead (see Line), so the
// buffer does not need to outlive the lexer.
type Buffer struct {
	Filename string
	Bytes    []byte
}

// Load reads filename into a Buffer.
func Load(filename string) (*Buffer, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return &Buffer{Filename: filename, Bytes: content}, nil
}
