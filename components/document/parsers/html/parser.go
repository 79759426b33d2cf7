package html

import (
	"bytes"
	"context"
	"io"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"

	"github.com/aviary-ai/aviary/components/document"
)

// Parser is a parser which parse html content to markdown. Script, style and
// chrome elements are stripped before conversion.
type Parser struct {
	opts []converter.ConvertOptionFunc
}

var _ document.Parser = (*Parser)(nil)

func New(opts ...converter.ConvertOptionFunc) *Parser {
	return &Parser{
		opts: opts,
	}
}

// Parse try to parse a html content from a bytes.Reader into a markdown content then write to an io.Writer
func (h *Parser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return err
	}
	for _, tag := range []string{"script", "style", "nav", "header", "footer"} {
		doc.Find(tag).Remove()
	}
	raw, err := doc.Html()
	if err != nil {
		return err
	}
	markdown, err := htmltomarkdown.ConvertString(raw, h.opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(writer, strings.TrimSpace(markdown))
	return err
}
