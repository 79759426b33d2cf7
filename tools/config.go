package tools

import "context"

// Config class for tools within the framework
type Config struct {
	// title the default title of the tool
	title string
	// description the default description of the tool
	description string
	// startHook fires before the tool runs
	startHook func(context.Context, AnonymousTool, any)
	// endHook fires after the tool returns successfully
	endHook func(context.Context, AnonymousTool, any, any)
	// errorHook fires when the tool returns an error
	errorHook func(context.Context, AnonymousTool, any, error)
}

func (c *Config) SetTitle(v string) {
	c.title = v
}

func (c Config) Title() string {
	return c.title
}

func (c *Config) SetDescription(v string) {
	c.description = v
}

func (c Config) Description() string {
	return c.description
}

func (c *Config) SetStartHook(fn func(context.Context, AnonymousTool, any)) {
	c.startHook = fn
}

func (c Config) StartHook() func(context.Context, AnonymousTool, any) {
	return c.startHook
}

func (c *Config) SetEndHook(fn func(context.Context, AnonymousTool, any, any)) {
	c.endHook = fn
}

func (c Config) EndHook() func(context.Context, AnonymousTool, any, any) {
	return c.endHook
}

func (c *Config) SetErrorHook(fn func(context.Context, AnonymousTool, any, error)) {
	c.errorHook = fn
}

func (c Config) ErrorHook() func(context.Context, AnonymousTool, any, error) {
	return c.errorHook
}
