package parsers

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aviary-ai/aviary/components/document/parsers/html"
	"github.com/aviary-ai/aviary/components/document/parsers/pdf"
)

func TestDetectHTML(t *testing.T) {
	reader := bytes.NewReader([]byte("<!DOCTYPE html><html><body><h1>Delay codes</h1><p>Code 31 is baggage.</p></body></html>"))
	parser, err := Detect(reader)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := parser.(*html.Parser); !ok {
		t.Fatalf("expecting html parser, got %T", parser)
	}
	buf := new(bytes.Buffer)
	if err := parser.Parse(context.Background(), reader, buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Delay codes") {
		t.Errorf("expecting heading in output, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "<h1>") {
		t.Error("expecting markup to be converted")
	}
}

func TestDetectPDF(t *testing.T) {
	// a pdf header is enough for sniffing, parsing is not attempted here
	reader := bytes.NewReader([]byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"))
	parser, err := Detect(reader)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := parser.(*pdf.Parser); !ok {
		t.Fatalf("expecting pdf parser, got %T", parser)
	}
}

func TestDetectPlainTextFallback(t *testing.T) {
	reader := bytes.NewReader([]byte("just a plain note about gate B4"))
	parser, err := Detect(reader)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := parser.(*PlainText); !ok {
		t.Fatalf("expecting PlainText parser, got %T", parser)
	}
	buf := new(bytes.Buffer)
	if err := parser.Parse(context.Background(), reader, buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "just a plain note about gate B4" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
