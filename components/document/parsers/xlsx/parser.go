package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aviary-ai/aviary/components/document"
)

// Parser is a parser which renders xlsx sheets as markdown tables
type Parser struct {
	password string
}

var _ document.Parser = (*Parser)(nil)

type Option func(*Parser)

func WithPassword(passwd string) Option {
	return func(p *Parser) {
		p.password = passwd
	}
}

func New(opts ...Option) *Parser {
	ret := new(Parser)
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Parse try to parse a xlsx content from a bytes.Reader and write to an io.Writer
func (p *Parser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	opts := make([]excelize.Options, 0, 1)
	if p.password != "" {
		opts = append(opts, excelize.Options{Password: p.password})
	}
	doc, err := excelize.OpenReader(reader, opts...)
	if err != nil {
		return err
	}
	defer doc.Close()
	for sheetIdx, sheet := range doc.GetSheetList() {
		rows, err := doc.GetRows(sheet)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			continue
		}
		if sheetIdx > 0 {
			writer.Write([]byte{'\n'})
		}
		fmt.Fprintf(writer, "# %s\n\n", sheet)
		for rowIdx, row := range rows {
			cells := make([]string, 0, len(row))
			for _, cellValue := range row {
				cells = append(cells, strings.TrimSpace(document.EscapeMarkdown(document.StripUnprintable(cellValue))))
			}
			fmt.Fprintf(writer, "| %s |\n", strings.Join(cells, " | "))
			if rowIdx == 0 {
				// header separator row
				seps := make([]string, len(row))
				for i := range seps {
					seps[i] = "---"
				}
				fmt.Fprintf(writer, "| %s |\n", strings.Join(seps, " | "))
			}
		}
	}
	return nil
}
