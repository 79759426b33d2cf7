package document

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"
	"unicode"
)

var ErrReading = errors.New("document is reading")

type ReadStatus = int32

const (
	Unread ReadStatus = iota
	Reading
	ReadCompleted
)

// ParserReader is the source side of document parsing: a random access
// reader with a known size and metadata describing where the bytes came
// from.
type ParserReader interface {
	io.Reader
	io.ReaderAt
	Size() int64
	Meta() map[string]string
}

// Content carries source metadata shared by the document sources.
type Content struct {
	meta map[string]string
}

func (c *Content) Meta() map[string]string {
	return c.meta
}

func (c *Content) SetMeta(key, value string) {
	if c.meta == nil {
		c.meta = make(map[string]string)
	}
	c.meta[key] = value
}

// FileInfo is an os.FileInfo for sources that are not backed by the local
// filesystem.
type FileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
}

func (f *FileInfo) Name() string       { return f.name }
func (f *FileInfo) Size() int64        { return f.size }
func (f *FileInfo) Mode() os.FileMode  { return f.mode }
func (f *FileInfo) ModTime() time.Time { return f.modTime }
func (f *FileInfo) IsDir() bool        { return false }
func (f *FileInfo) Sys() any           { return nil }

var markdownEscaper = strings.NewReplacer(
	"|", "\\|",
	"*", "\\*",
	"_", "\\_",
	"`", "\\`",
	"#", "\\#",
)

// EscapeMarkdown escapes characters that would otherwise be interpreted as
// markdown markup.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// StripUnprintable removes unprintable runes from a string.
func StripUnprintable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' {
			return r
		}
		return -1
	}, s)
}
