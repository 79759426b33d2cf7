package agents

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnavailable means the remote service backing a capability
	// could not be reached or did not answer in time.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	// ErrQueryTranslationFailed means the request could not be mapped to a
	// valid query against the backing data service.
	ErrQueryTranslationFailed = errors.New("query translation failed")
	// ErrToolExecutionFailed means an underlying function call errored.
	ErrToolExecutionFailed = errors.New("tool execution failed")
	// ErrNoApplicableTool means no registered function matches the request.
	ErrNoApplicableTool = errors.New("no applicable tool")
)

// ConfigError is a fatal construction time error: a capability or
// coordinator was built from an invalid configuration. It aborts startup and
// is never converted into a failed response.
type ConfigError struct {
	Component string
	Reason    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: invalid configuration: %s", e.Component, e.Reason)
}

func NewConfigError(component, reason string) *ConfigError {
	return &ConfigError{Component: component, Reason: reason}
}
