package docx

import (
	"bytes"
	"context"
	"io"

	"github.com/fumiama/go-docx"

	"github.com/aviary-ai/aviary/components/document"
)

// Parser is a parser which parse docx to plain text
type Parser struct{}

var _ document.Parser = (*Parser)(nil)

func New() *Parser {
	return new(Parser)
}

// Parse try to parse a docx content from a bytes.Reader and write to an io.Writer
func (p *Parser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	doc, err := docx.Parse(reader, reader.Size())
	if err != nil {
		return err
	}

	for idx, it := range doc.Document.Body.Items {
		var content string
		switch t := it.(type) {
		case *docx.Paragraph:
			content = t.String()
		case *docx.Table:
			content = t.String()
		}
		if idx > 0 {
			writer.Write([]byte{'\n', '\n'})
		}
		writer.Write([]byte(content))
	}
	return nil
}
