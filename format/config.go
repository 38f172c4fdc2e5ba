package format

import (
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DefaultLineWidth is used whenever stdout is not a terminal.
const DefaultLineWidth = 65

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // target line length in fixed width positions
	Context   *uax11.Context // context for measuring display width, may be nil
}

func (config *Config) normalized() *Config {
	c := Config{LineWidth: DefaultLineWidth, Context: uax11.LatinContext}
	if config != nil {
		if config.LineWidth > 0 {
			c.LineWidth = config.LineWidth
		}
		if config.Context != nil {
			c.Context = config.Context
		}
	}
	return &c
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
// Config.Context is derived from the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{
		LineWidth: DefaultLineWidth,
		Context:   uax11.ContextFromEnvironment(),
	}
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			config.LineWidth = lineWidthFor(w)
		}
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// lineWidthFor leaves a margin on wide terminals and never goes below 10.
func lineWidthFor(w int) int {
	if w > 65 {
		return w - 10
	} else if w > 30 {
		return w - 5
	} else if w > 10 {
		return w
	}
	return 10
}
