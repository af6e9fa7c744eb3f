package session

import "github.com/wordpace/wordpace/internal/wordcount"

// WordSource yields the current word count of the text being written
type WordSource interface {
	Name() string
	Count() (int, error)
}

// FileSource counts the words of a file on every call
type FileSource struct {
	path string
}

// NewFileSource returns a source reading path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path
func (f *FileSource) Name() string { return f.path }

// Count re-reads the file
func (f *FileSource) Count() (int, error) {
	return wordcount.CountFile(f.path)
}
