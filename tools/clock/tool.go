package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/aviary-ai/aviary/schema"
	"github.com/aviary-ai/aviary/tools"
)

const timeLayout = "2006-01-02 15:04:05"

// Input Tool for reporting the current time. Use this tool whenever a
// request needs to know what time it is.
type Input struct {
	schema.Base
	// Timezone IANA timezone name to report the time in. Defaults to UTC.
	Timezone string `json:"timezone,omitempty" jsonschema:"title=timezone,description=IANA timezone name to report the time in. Defaults to UTC."`
}

func NewInput(timezone string) *Input {
	return &Input{
		Timezone: timezone,
	}
}

// Output Schema for the output of the ClockTool
type Output struct {
	schema.Base
	// Time Current time formatted as '2006-01-02 15:04:05'
	Time string `json:"time" jsonschema:"title=time,description=Current time."`
	// Timezone the timezone the time is reported in
	Timezone string `json:"timezone" jsonschema:"title=timezone,description=The timezone the time is reported in."`
}

type Tool struct {
	tools.Config
	now func() time.Time
}

var _ tools.Tool[Input, Output] = (*Tool)(nil)

func New(opts ...tools.Option) *Tool {
	ret := &Tool{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("ClockTool")
	}
	return ret
}

// SetNow overrides the clock source, for tests.
func (t *Tool) SetNow(fn func() time.Time) {
	t.now = fn
}

// Executes the ClockTool with the given parameters.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	loc := time.UTC
	if input.Timezone != "" {
		var err error
		if loc, err = time.LoadLocation(input.Timezone); err != nil {
			return nil, fmt.Errorf("unknown timezone %q: %w", input.Timezone, err)
		}
	}
	now := t.now().In(loc)
	return &Output{
		Time:     now.Format(timeLayout),
		Timezone: loc.String(),
	}, nil
}

func (t *Tool) RunAnonymous(ctx context.Context, input any) (any, error) {
	in, ok := input.(*Input)
	if !ok {
		return nil, fmt.Errorf("invalid input schema")
	}
	return t.Run(ctx, in)
}
