package opsdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aviary-ai/aviary/agents"
	"github.com/aviary-ai/aviary/schema"
)

// TokenFunc supplies a bearer token for the data service. It is called per
// request so short lived credentials can be refreshed by the caller.
type TokenFunc func(ctx context.Context) (string, error)

// Client talks to an assistants style data service: an assistant is
// provisioned once, then each question runs as a thread with a polled run.
type Client struct {
	baseURL      string
	token        TokenFunc
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithToken(fn TokenFunc) ClientOption {
	return func(c *Client) {
		c.token = fn
	}
}

func WithHttpClient(clt *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = clt
	}
}

func WithPollInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		c.pollInterval = d
	}
}

func WithPollTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.pollTimeout = d
	}
}

func NewClient(opts ...ClientOption) (*Client, error) {
	ret := new(Client)
	for _, opt := range opts {
		opt(ret)
	}
	if ret.baseURL == "" {
		return nil, agents.NewConfigError("opsdata client", "missing base URL")
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	if ret.pollInterval == 0 {
		ret.pollInterval = 500 * time.Millisecond
	}
	if ret.pollTimeout == 0 {
		ret.pollTimeout = 2 * time.Minute
	}
	return ret, nil
}

type assistantPayload struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Model        string `json:"model,omitempty"`
}

type threadPayload struct {
	ID string `json:"id"`
}

type messagePayload struct {
	ID      string `json:"id,omitempty"`
	Role    string `json:"role"`
	Content []struct {
		Type string `json:"type"`
		Text struct {
			Value       string `json:"value"`
			Annotations []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"annotations,omitempty"`
		} `json:"text"`
	} `json:"content,omitempty"`
}

type runPayload struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	LastError   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"last_error,omitempty"`
	AssistantID string `json:"assistant_id,omitempty"`
}

type listPayload[T any] struct {
	Data []T `json:"data"`
}

// CreateAssistant provisions a remote assistant and returns its identifier.
func (c *Client) CreateAssistant(ctx context.Context, name, instructions, model string) (string, error) {
	var out assistantPayload
	if err := c.do(ctx, http.MethodPost, "/assistants", assistantPayload{
		Name:         name,
		Instructions: instructions,
		Model:        model,
	}, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// Ask runs one question against an existing assistant: create a thread,
// post the question, start a run, poll it to a terminal state, then read the
// assistant's reply. The thread is deleted afterwards.
func (c *Client) Ask(ctx context.Context, assistantID, question string) (string, []schema.Citation, error) {
	var thread threadPayload
	if err := c.do(ctx, http.MethodPost, "/threads", struct{}{}, &thread); err != nil {
		return "", nil, err
	}
	defer c.deleteThread(thread.ID)

	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/threads/%s/messages", thread.ID), map[string]string{
		"role":    "user",
		"content": question,
	}, nil); err != nil {
		return "", nil, err
	}

	var run runPayload
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/threads/%s/runs", thread.ID), map[string]string{
		"assistant_id": assistantID,
	}, &run); err != nil {
		return "", nil, err
	}

	if err := c.waitForRun(ctx, thread.ID, run.ID); err != nil {
		return "", nil, err
	}

	var messages listPayload[messagePayload]
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/threads/%s/messages?order=asc", thread.ID), nil, &messages); err != nil {
		return "", nil, err
	}
	var (
		content   string
		citations []schema.Citation
	)
	for _, msg := range messages.Data {
		if msg.Role != "assistant" {
			continue
		}
		for _, part := range msg.Content {
			if part.Type != "text" {
				continue
			}
			if content != "" {
				content += "\n"
			}
			content += part.Text.Value
			for _, ann := range part.Text.Annotations {
				citations = append(citations, schema.Citation{
					Source: ann.Text,
				})
			}
		}
	}
	if content == "" {
		return "", nil, fmt.Errorf("%w: run finished without an assistant reply", agents.ErrUpstreamUnavailable)
	}
	return content, citations, nil
}

// waitForRun polls a run until it reaches a terminal status.
func (c *Client) waitForRun(ctx context.Context, threadID, runID string) error {
	deadline := time.Now().Add(c.pollTimeout)
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()
	for {
		var run runPayload
		if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/threads/%s/runs/%s", threadID, runID), nil, &run); err != nil {
			return err
		}
		switch run.Status {
		case "completed":
			return nil
		case "failed", "cancelled", "expired":
			reason := run.Status
			if run.LastError != nil {
				reason = fmt.Sprintf("%s: %s", run.Status, run.LastError.Message)
			}
			return fmt.Errorf("%w: run %s", agents.ErrUpstreamUnavailable, reason)
		case "requires_action":
			return fmt.Errorf("%w: run requires an unsupported action", agents.ErrUpstreamUnavailable)
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("%w: run did not finish within %s", agents.ErrUpstreamUnavailable, c.pollTimeout)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) deleteThread(threadID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c.do(ctx, http.MethodDelete, fmt.Sprintf("/threads/%s", threadID), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		bs, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(bs)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("ActivityId", uuid.NewString())
	if c.token != nil {
		token, err := c.token(ctx)
		if err != nil {
			return fmt.Errorf("%w: acquire token: %v", agents.ErrUpstreamUnavailable, err)
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", agents.ErrUpstreamUnavailable, err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode >= http.StatusBadRequest {
		bs, _ := io.ReadAll(io.LimitReader(httpResp.Body, 4096))
		return fmt.Errorf("%w: %s %s returned %d: %s", agents.ErrUpstreamUnavailable, method, path, httpResp.StatusCode, bs)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(httpResp.Body).Decode(out)
}
