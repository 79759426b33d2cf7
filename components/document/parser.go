package document

import (
	"bytes"
	"context"
	"io"
)

type Parser interface {
	Parse(context.Context, *bytes.Reader, io.Writer) error
}

// ReadAll drains a ParserReader into a bytes.Reader suitable for parsing.
func ReadAll(src ParserReader) (*bytes.Reader, error) {
	buf := new(bytes.Buffer)
	if size := src.Size(); size > 0 {
		buf.Grow(int(size))
	}
	if _, err := io.Copy(buf, src); err != nil {
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}
