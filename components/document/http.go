package document

import (
	"bytes"
	"io"
	"net/http"

	"go.uber.org/atomic"
)

// Http is a document fetched over HTTP. The body is fetched lazily on first
// read and buffered, so the source can be re-read by a parser afterwards.
type Http struct {
	status  *atomic.Int32
	client  *http.Client
	httpReq *http.Request
	buffer  *bytes.Buffer
	reader  *bytes.Reader
	Content
}

var _ ParserReader = (*Http)(nil)

type HttpConfig struct {
	client  *http.Client
	link    string
	method  string
	payload io.Reader
}

type HttpOption func(*HttpConfig)

func WithHttpMethod(method string) HttpOption {
	return func(h *HttpConfig) {
		h.method = method
	}
}

func WithHttpURL(link string) HttpOption {
	return func(h *HttpConfig) {
		h.link = link
	}
}

func WithPayload(payload io.Reader) HttpOption {
	return func(h *HttpConfig) {
		h.payload = payload
	}
}

func WithHttpClient(client *http.Client) HttpOption {
	return func(h *HttpConfig) {
		h.client = client
	}
}

func NewHttp(opts ...HttpOption) (*Http, error) {
	var cfg HttpConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.method == "" {
		cfg.method = http.MethodGet
	}
	if cfg.client == nil {
		cfg.client = http.DefaultClient
	}
	httpReq, err := http.NewRequest(cfg.method, cfg.link, cfg.payload)
	if err != nil {
		return nil, err
	}
	return &Http{
		status:  atomic.NewInt32(Unread),
		client:  cfg.client,
		httpReq: httpReq,
		buffer:  new(bytes.Buffer),
		Content: Content{
			meta: map[string]string{
				"source": "http",
				"url":    cfg.link,
				"method": cfg.method,
			},
		},
	}, nil
}

func (h *Http) ReadStatus() ReadStatus {
	return h.status.Load()
}

// ReadAll fetches the document body into the internal buffer. Repeated calls
// are no-ops once the fetch completed.
func (h *Http) ReadAll() error {
	if !h.status.CompareAndSwap(Unread, Reading) {
		if h.ReadStatus() == ReadCompleted {
			return nil
		}
		return ErrReading
	}
	httpResp, err := h.client.Do(h.httpReq)
	if err != nil {
		h.status.Store(Unread)
		return err
	}
	defer httpResp.Body.Close()
	if _, err = io.Copy(h.buffer, httpResp.Body); err != nil {
		h.buffer.Reset()
		h.status.Store(Unread)
		return err
	}
	h.reader = bytes.NewReader(h.buffer.Bytes())
	h.status.Store(ReadCompleted)
	return nil
}

func (h *Http) Read(p []byte) (int, error) {
	if err := h.ReadAll(); err != nil {
		return 0, err
	}
	return h.reader.Read(p)
}

func (h *Http) ReadAt(p []byte, off int64) (int, error) {
	if err := h.ReadAll(); err != nil {
		return 0, err
	}
	return h.reader.ReadAt(p, off)
}

func (h *Http) Size() int64 {
	if err := h.ReadAll(); err != nil {
		return 0
	}
	return int64(h.buffer.Len())
}
