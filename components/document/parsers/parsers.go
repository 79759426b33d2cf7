package parsers

import (
	"bytes"
	"context"
	"io"

	"github.com/gabriel-vasile/mimetype"

	"github.com/aviary-ai/aviary/components/document"
	"github.com/aviary-ai/aviary/components/document/parsers/docx"
	"github.com/aviary-ai/aviary/components/document/parsers/html"
	"github.com/aviary-ai/aviary/components/document/parsers/pdf"
	"github.com/aviary-ai/aviary/components/document/parsers/xlsx"
)

var (
	NewPDF  = pdf.New
	NewDocx = docx.New
	NewHTML = html.New
	NewXlsx = xlsx.New
)

// PlainText passes the source bytes through unchanged. It is the fallback
// when no dedicated parser matches the detected content type.
type PlainText struct{}

var _ document.Parser = (*PlainText)(nil)

func (p *PlainText) Parse(_ context.Context, reader *bytes.Reader, writer io.Writer) error {
	_, err := io.Copy(writer, reader)
	return err
}

// Detect sniffs the content type of the reader and returns the matching
// parser. Unknown types fall back to plain text.
func Detect(reader *bytes.Reader) (document.Parser, error) {
	mtype, err := mimetype.DetectReader(reader)
	if err != nil {
		return nil, err
	}
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	switch {
	case mtype.Is("application/pdf"):
		return pdf.New(), nil
	case mtype.Is("application/vnd.openxmlformats-officedocument.wordprocessingml.document"):
		return docx.New(), nil
	case mtype.Is("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"):
		return xlsx.New(), nil
	case mtype.Is("text/html"):
		return html.New(), nil
	default:
		return new(PlainText), nil
	}
}
